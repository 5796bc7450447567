package repository

import "github.com/jhoicas/Facturas-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Los adaptadores aceptan pool o transacción (ver postgres.Querier), de modo
// que el motor de ciclo de vida pueda ejecutar leer-calcular-escribir dentro
// de una sola transacción.
type InvoiceRepository interface {
	// Create persiste la factura con estado inicial impago. La base asigna
	// id y add_date; ambos quedan reflejados en el entity recibido.
	Create(invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(id int64) (*entity.Invoice, error)
	// GetForUpdate es GetByID bloqueando la fila (SELECT ... FOR UPDATE).
	// Dentro de una tx serializa actualizaciones concurrentes al mismo id.
	GetForUpdate(id int64) (*entity.Invoice, error)
	// List devuelve todas las facturas (id + empresa) ordenadas por id.
	List() ([]*entity.InvoiceSummary, error)
	// IDsByCompany devuelve los ids de factura de una empresa, ordenados.
	IDsByCompany(compCode string) ([]int64, error)
	// ExistsByCompany informa si la empresa tiene al menos una factura.
	ExistsByCompany(compCode string) (bool, error)
	// Update escribe amt, paid y paid_date. Devuelve domain.ErrNotFound si
	// el id no existe (p. ej. borrado concurrente).
	Update(invoice *entity.Invoice) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(id int64) error
}
