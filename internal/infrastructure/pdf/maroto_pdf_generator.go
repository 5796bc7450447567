// Package pdf implementa la representación en PDF de una factura usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Empresa + código  │  Factura N°    │
//	│  ─────────────────────────────────────────  │
//	│  Fecha de emisión / Estado de pago          │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL                                      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/Facturas-api/internal/application/billing"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoPDFGenerator implementa billing.InvoicePDFGenerator.
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Factura %d", invoice.ID), true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(datesRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre y código de la empresa (izq), número de factura (der).
func headerRow(invoice *entity.Invoice, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+company.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("FACTURA N° %d", invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
		),
	)
}

// datesRow: fecha de emisión y estado de pago.
func datesRow(invoice *entity.Invoice) core.Row {
	estado := "PENDIENTE DE PAGO"
	if invoice.Paid && invoice.PaidDate != nil {
		estado = "PAGADA el " + invoice.PaidDate.Format("02/01/2006")
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Emitida: "+invoice.AddDate.Format("02/01/2006"), props.Text{
				Size: 9, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(estado, props.Text{
				Size: 9, Top: 2, Align: align.Right, Style: fontstyle.Bold,
			}),
		),
	)
}

// totalRow: monto total de la factura.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3,
			}),
		),
		col.New(4).Add(
			text.New("$ "+invoice.Amt.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 3, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
