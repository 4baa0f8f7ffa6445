package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve todas las empresas (code, name) en el orden del almacén.
	List(ctx context.Context) ([]entity.Company, error)
	// GetWithIndustries devuelve las filas del LEFT JOIN contra industrias.
	// Slice vacío si la empresa no existe (el caller decide NotFound).
	GetWithIndustries(ctx context.Context, code string) ([]entity.CompanyIndustryRow, error)
	// Create inserta y devuelve la fila almacenada.
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Update actualiza name/description. Devuelve nil si no hay fila con ese code.
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	// Delete elimina por code. Devuelve false si no afectó filas.
	Delete(ctx context.Context, code string) (bool, error)
}
