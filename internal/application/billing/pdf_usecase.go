package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// PDFUseCase genera la representación en PDF de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo, generator: generator}
}

// DownloadInvoicePDF carga factura y empresa y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companyRepo.GetByCode(inv.CompCode)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	filename = fmt.Sprintf("factura-%d.pdf", inv.ID)
	return pdfBytes, filename, nil
}
