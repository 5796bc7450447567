package repository

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// IndustryRepository define el puerto de persistencia para Industry y su
// relación muchos-a-muchos con Company.
type IndustryRepository interface {
	Create(industry *entity.Industry) error
	// List devuelve todas las industrias con los códigos de empresas asociadas.
	List() ([]*entity.IndustryCompanies, error)
	// CodesByCompany devuelve los códigos de industria asociados a una empresa.
	CodesByCompany(compCode string) ([]string, error)
	// Associate crea la fila de unión industria-empresa.
	// Devuelve domain.ErrDuplicate si la asociación ya existe.
	Associate(indCode, compCode string) error
}
