package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// List devuelve todas las empresas (code, name).
func (r *CompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	list := []entity.Company{}
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetWithIndustries devuelve las filas del LEFT JOIN contra el link table
// e industrias. Una fila por industria; Industry es NULL si no hay ninguna.
func (r *CompanyRepo) GetWithIndustries(ctx context.Context, code string) ([]entity.CompanyIndustryRow, error) {
	query := `
		SELECT c.code, c.name, c.description, i.industry
		FROM companies AS c
		LEFT JOIN industries_companies AS ic
		  ON c.code = ic.company_code
		LEFT JOIN industries AS i
		  ON i.code = ic.industry_code
		WHERE c.code = $1`
	rows, err := r.pool.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	defer rows.Close()

	var list []entity.CompanyIndustryRow
	for rows.Next() {
		var row entity.CompanyIndustryRow
		if err := rows.Scan(&row.Code, &row.Name, &row.Description, &row.Industry); err != nil {
			return nil, fmt.Errorf("scan company row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Create inserta una nueva empresa y devuelve la fila almacenada.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("company code %q already exists: %w", company.Code, err)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &c, nil
}

// Update actualiza name/description de la empresa. Devuelve nil si no existe.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET name = $2, description = $3
		WHERE code = $1
		RETURNING code, name, description`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// Delete elimina una empresa por code. false si no afectó filas.
func (r *CompanyRepo) Delete(ctx context.Context, code string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
