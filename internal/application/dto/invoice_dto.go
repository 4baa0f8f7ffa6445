package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest entrada para actualizar una factura.
// Paid es un puntero porque la condición es de tres vías: ausente (no tocar
// paid/paid_date), presente-true (marcar pagada y sellar la fecha) y
// presente-false (despagar y limpiar la fecha). Un bool plano perdería el
// caso ausente.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid *bool           `json:"paid"`
}

// InvoiceItem elemento de listado (id, comp_code).
type InvoiceItem struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse listado de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceItem `json:"invoices"`
}

// InvoiceResponse factura envuelta bajo la clave invoice.
type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

// Invoice cuerpo de una factura en create/update.
type Invoice struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetailResponse factura con su empresa anidada (get por id).
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}

// InvoiceDetail factura unida a su empresa propietaria.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  Company         `json:"company"`
}
