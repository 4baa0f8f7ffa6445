package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// List devuelve todas las facturas (id, comp_code).
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	list := []entity.Invoice{}
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetWithCompany devuelve la factura unida a su empresa propietaria, nil si no existe.
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	query := `
		SELECT invoices.id, invoices.comp_code, invoices.amt, invoices.paid,
		       invoices.add_date, invoices.paid_date,
		       companies.code, companies.name, companies.description
		FROM invoices
		JOIN companies ON invoices.comp_code = companies.code
		WHERE invoices.id = $1`
	var iwc entity.InvoiceWithCompany
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&iwc.ID, &iwc.CompCode, &iwc.Amt, &iwc.Paid, &iwc.AddDate, &iwc.PaidDate,
		&iwc.Company.Code, &iwc.Company.Name, &iwc.Company.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &iwc, nil
}

// ListIDsByCompany devuelve los ids de factura de una empresa.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserta con los defaults del almacén y devuelve la fila completa.
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, compCode, amt).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("invoice references a missing company %q: %w", compCode, err)
		}
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &inv, nil
}

// UpdateAmount actualiza solo amt, dejando paid/paid_date intactos.
func (r *InvoiceRepo) UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = $2
		WHERE id = $1
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	return r.scanUpdated(ctx, query, id, amt)
}

// UpdatePayment actualiza amt junto con paid y paid_date.
func (r *InvoiceRepo) UpdatePayment(ctx context.Context, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) (*entity.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	return r.scanUpdated(ctx, query, id, amt, paid, paidDate)
}

func (r *InvoiceRepo) scanUpdated(ctx context.Context, query string, args ...any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &inv, nil
}

// Delete elimina una factura por id. false si no afectó filas.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
