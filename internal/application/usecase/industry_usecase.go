package usecase

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// IndustryUseCase aplica reglas de negocio para industrias.
type IndustryUseCase struct {
	repo repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso con el puerto de persistencia.
func NewIndustryUseCase(repo repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{repo: repo}
}

// List devuelve todas las industrias (code, industry).
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryItem, 0, len(list))
	for _, i := range list {
		items = append(items, dto.IndustryItem{Code: i.Code, Industry: i.Industry})
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Create crea una industria derivando el code del display name (slug).
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	stored, err := uc.repo.Create(ctx, &entity.Industry{
		Code:     slug.Make(in.Industry),
		Industry: in.Industry,
	})
	if err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Industry: dto.IndustryItem{Code: stored.Code, Industry: stored.Industry}}, nil
}

// Link asocia una industria a una empresa. No se verifica la existencia de
// ninguna de las dos referencias; una FK colgante la rechaza el almacén.
func (uc *IndustryUseCase) Link(ctx context.Context, in dto.LinkIndustryRequest) (*dto.IndustryLinkResponse, error) {
	stored, err := uc.repo.Link(ctx, &entity.IndustryCompanyLink{
		IndustryCode: in.IndustryCode,
		CompanyCode:  in.CompanyCode,
	})
	if err != nil {
		return nil, err
	}
	return &dto.IndustryLinkResponse{Link: dto.IndustryLink{
		IndustryCode: stored.IndustryCode,
		CompanyCode:  stored.CompanyCode,
	}}, nil
}
