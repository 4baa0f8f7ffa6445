package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica reglas de negocio para facturas, incluido el
// protocolo condicional de actualización del estado de pago.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	now  func() time.Time
}

// NewInvoiceUseCase construye el caso de uso con el puerto de persistencia.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

// List devuelve todas las facturas (id, comp_code).
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceItem, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceItem{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get devuelve una factura con su empresa anidada. NotFound si no existe.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	iwc, err := uc.repo.GetWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if iwc == nil {
		return nil, domain.NotFoundf("there is no invoice with id '%d'", id)
	}
	return &dto.InvoiceDetailResponse{Invoice: composeInvoiceDetail(iwc)}, nil
}

// Create crea una factura con los defaults del almacén:
// paid=false, add_date=hoy, paid_date=NULL.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	stored, err := uc.repo.Create(ctx, in.CompCode, in.Amt)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: invoiceToDTO(stored)}, nil
}

// Update aplica el protocolo condicional de pago:
//   - Paid ausente: solo se actualiza amt; paid y paid_date quedan intactos.
//   - Paid presente y true: paid=true y paid_date se sella a hoy, aunque la
//     factura ya estuviera pagada con otra fecha.
//   - Paid presente y false: paid=false y paid_date se limpia a NULL.
//
// NotFound si no hay fila con ese id.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var (
		stored *entity.Invoice
		err    error
	)
	if in.Paid == nil {
		stored, err = uc.repo.UpdateAmount(ctx, id, in.Amt)
	} else {
		var paidDate *time.Time
		if *in.Paid {
			today := uc.now()
			paidDate = &today
		}
		stored, err = uc.repo.UpdatePayment(ctx, id, in.Amt, *in.Paid, paidDate)
	}
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.NotFoundf("there is no invoice with id '%d'", id)
	}
	return &dto.InvoiceResponse{Invoice: invoiceToDTO(stored)}, nil
}

// Delete elimina una factura por id. NotFound si no afectó filas.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.NotFoundf("there is no invoice with id '%d'", id)
	}
	return &dto.StatusResponse{Status: "deleted"}, nil
}
