// Package billing contiene el motor de ciclo de vida de facturas: creación,
// consulta, borrado y la actualización de pago que deriva paid_date.
package billing

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	dombilling "github.com/jhoicas/Facturas-api/internal/domain/billing"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// InvoiceUseCase es el motor de ciclo de vida de facturas. No posee estado:
// es una transformación pura entre dos llamadas al almacén.
type InvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
}

// NewInvoiceUseCase construye el motor con sus puertos.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, companyRepo: companyRepo}
}

// Create crea una factura en estado impago (paid=false, paid_date=null).
// comp_code debe referenciar una empresa existente; el almacén no lo valida
// por sí solo, así que se consulta antes de insertar. Devuelve
// domain.ErrInvalidInput si falta comp_code o la empresa no existe.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.CompCode) == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByCode(in.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidInput
	}

	invoice := &entity.Invoice{
		CompCode: in.CompCode,
		Amt:      in.Amt,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return dto.FromInvoice(invoice), nil
}

// GetByID obtiene una factura con su empresa embebida.
// Devuelve domain.ErrNotFound si el id no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceDetailResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByCode(invoice.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// Solo posible ante corrupción de datos: la FK impide huérfanas.
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceDetailResponse{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate.Format("2006-01-02"),
		PaidDate: dto.FormatDate(invoice.PaidDate),
		Company: dto.CompanyResponse{
			Code:        company.Code,
			Name:        company.Name,
			Description: company.Description,
		},
	}, nil
}

// List lista todas las facturas (id + empresa).
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummaryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.InvoiceSummaryResponse{ID: s.ID, CompCode: s.CompCode})
	}
	return &dto.InvoiceListResponse{Items: items}, nil
}

// ApplyPaymentUpdate aplica la actualización de monto y estado de pago:
//
//  1. Lee el estado actual (con lock de fila) — domain.ErrNotFound si no existe.
//  2. Deriva paid_date con la regla de transición de dominio.
//  3. Escribe amt, paid y paid_date.
//
// Los tres pasos corren dentro de una sola transacción vía TxRunner, de modo
// que una actualización concurrente nunca calcula paid_date a partir de un
// estado obsoleto y un borrado concurrente resulta en domain.ErrNotFound.
func (uc *InvoiceUseCase) ApplyPaymentUpdate(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	var updated *entity.Invoice
	err := uc.txRunner.RunInvoice(ctx, func(repo repository.InvoiceRepository) error {
		current, err := repo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		current.Amt = in.Amt
		current.Paid = in.Paid
		current.PaidDate = dombilling.ResolvePaidDate(current.PaidDate, in.Paid, time.Now())
		if err := repo.Update(current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromInvoice(updated), nil
}

// Delete elimina una factura. Devuelve domain.ErrNotFound si el id no existe
// (el borrado de un id inexistente nunca es un éxito silencioso).
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.invoiceRepo.Delete(id)
}
