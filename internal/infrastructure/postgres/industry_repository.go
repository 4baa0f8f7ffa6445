package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	pool *pgxpool.Pool
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(pool *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{pool: pool}
}

// List devuelve todas las industrias (code, industry).
func (r *IndustryRepo) List(ctx context.Context) ([]entity.Industry, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, industry FROM industries`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	list := []entity.Industry{}
	for rows.Next() {
		var i entity.Industry
		if err := rows.Scan(&i.Code, &i.Industry); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// Create inserta una nueva industria y devuelve la fila almacenada.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error) {
	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry`
	var i entity.Industry
	err := r.pool.QueryRow(ctx, query, industry.Code, industry.Industry).
		Scan(&i.Code, &i.Industry)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("industry code %q already exists: %w", industry.Code, err)
		}
		return nil, fmt.Errorf("insert industry: %w", err)
	}
	return &i, nil
}

// Link inserta la asociación industria ↔ empresa sin validar las referencias;
// una FK colgante la rechaza el almacén (23503).
func (r *IndustryRepo) Link(ctx context.Context, link *entity.IndustryCompanyLink) (*entity.IndustryCompanyLink, error) {
	query := `
		INSERT INTO industries_companies (industry_code, company_code)
		VALUES ($1, $2)
		RETURNING industry_code, company_code`
	var l entity.IndustryCompanyLink
	err := r.pool.QueryRow(ctx, query, link.IndustryCode, link.CompanyCode).
		Scan(&l.IndustryCode, &l.CompanyCode)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("link references a missing industry or company: %w", err)
		}
		return nil, fmt.Errorf("insert industry link: %w", err)
	}
	return &l, nil
}
