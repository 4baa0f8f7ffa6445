package repository

import (
	"context"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve todas las facturas (id, comp_code).
	List(ctx context.Context) ([]entity.Invoice, error)
	// GetWithCompany devuelve la factura unida a su empresa, nil si no existe.
	GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error)
	// ListIDsByCompany devuelve los ids de factura de una empresa.
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)
	// Create inserta con los defaults del almacén (paid=false, add_date=now)
	// y devuelve la fila completa.
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	// UpdateAmount actualiza solo amt, sin tocar paid/paid_date.
	// Devuelve nil si no hay fila con ese id.
	UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error)
	// UpdatePayment actualiza amt junto con el estado de pago.
	// paidDate debe ser nil cuando paid es false.
	UpdatePayment(ctx context.Context, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) (*entity.Invoice, error)
	// Delete elimina por id. Devuelve false si no afectó filas.
	Delete(ctx context.Context, id int64) (bool, error)
}
