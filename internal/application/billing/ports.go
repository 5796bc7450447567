package billing

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// TxRunner ejecuta una función con un InvoiceRepository atado a una sola
// transacción. El motor de ciclo de vida lo usa para que la secuencia
// leer-calcular-escribir de la actualización de pago sea atómica.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renderiza la representación en PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
