package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// dateLayout formato ISO de fecha (sin hora) usado en el API.
const dateLayout = "2006-01-02"

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" validate:"required"`
	Amt      decimal.Decimal `json:"amt" validate:"required"`
}

// UpdateInvoiceRequest entrada para actualizar una factura. amt reemplaza el
// monto incondicionalmente; paid dispara la regla de transición de paid_date.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid bool            `json:"paid"`
}

// InvoiceResponse salida completa de una factura. paid_date es null mientras
// la factura está impaga.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse factura con su empresa embebida.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceSummaryResponse proyección id + empresa para listados.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse lista de facturas.
type InvoiceListResponse struct {
	Items []InvoiceSummaryResponse `json:"items"`
}

// FromInvoice mapea el entity a la respuesta del API.
func FromInvoice(inv *entity.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: FormatDate(inv.PaidDate),
	}
}

// FormatDate serializa una fecha opcional como ISO YYYY-MM-DD (o nil).
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
