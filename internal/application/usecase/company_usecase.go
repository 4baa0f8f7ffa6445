package usecase

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
// El get por code compone dos consultas independientes: el join con
// industrias y los ids de factura.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices}
}

// List devuelve todas las empresas (code, name).
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyItem{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get devuelve una empresa con sus industrias e ids de factura.
// Devuelve domain NotFound si no hay fila con ese code.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	rows, err := uc.companies.GetWithIndustries(ctx, code)
	if err != nil {
		return nil, err
	}
	// Segunda consulta, no unida a la primera en el almacén.
	invoiceIDs, err := uc.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NotFoundf("there is no company with code '%s'", code)
	}
	detail := composeCompanyDetail(rows, invoiceIDs)
	return &dto.CompanyDetailResponse{Company: detail}, nil
}

// Create crea una empresa derivando el code del nombre (slug).
// No pre-verifica unicidad: un duplicado lo rechaza el almacén.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Code:        slug.Make(in.Name),
		Name:        in.Name,
		Description: in.Description,
	}
	stored, err := uc.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: companyToDTO(stored)}, nil
}

// Update actualiza name/description. El code es inmutable; el intento de
// mutarlo se rechaza antes de llegar aquí. NotFound si no hay fila.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	stored, err := uc.companies.Update(ctx, &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.NotFoundf("there is no company with code '%s'", code)
	}
	return &dto.CompanyResponse{Company: companyToDTO(stored)}, nil
}

// Delete elimina una empresa por code. NotFound si no afectó filas.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.MessageResponse, error) {
	deleted, err := uc.companies.Delete(ctx, code)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.NotFoundf("there is no company with code '%s'", code)
	}
	return &dto.MessageResponse{Message: "Company deleted"}, nil
}

func companyToDTO(c *entity.Company) dto.Company {
	return dto.Company{Code: c.Code, Name: c.Name, Description: c.Description}
}
