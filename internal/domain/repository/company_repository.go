package repository

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	// GetByCode devuelve (nil, nil) si la empresa no existe.
	GetByCode(code string) (*entity.Company, error)
	// List devuelve todas las empresas ordenadas por nombre.
	List() ([]*entity.Company, error)
	// Update devuelve domain.ErrNotFound si el código no existe.
	Update(company *entity.Company) error
	// Delete devuelve domain.ErrNotFound si el código no existe.
	Delete(code string) error
}
