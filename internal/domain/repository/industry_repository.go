package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry.
type IndustryRepository interface {
	List(ctx context.Context) ([]entity.Industry, error)
	Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error)
	// Link inserta la asociación industria ↔ empresa. No valida las
	// referencias: una FK colgante es un fallo del almacén.
	Link(ctx context.Context, link *entity.IndustryCompanyLink) (*entity.IndustryCompanyLink, error)
}
