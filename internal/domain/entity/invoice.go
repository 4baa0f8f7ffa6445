package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura adeudada por una empresa.
// PaidDate es no-nil exactamente cuando Paid es true, y refleja la fecha
// de la última transición al estado pagado.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// InvoiceWithCompany factura unida a su empresa propietaria (GET por id).
type InvoiceWithCompany struct {
	Invoice
	Company Company
}
