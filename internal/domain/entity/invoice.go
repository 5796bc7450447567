package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
//
// Invariante de pago: PaidDate es no-nulo exactamente mientras Paid es true y
// refleja la fecha de la última transición de impago a pagado (no la fecha de
// creación). Toda mutación pasa por el motor de ciclo de vida en
// application/billing; nunca se escribe PaidDate directamente desde un handler.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // nil mientras Paid es false
}

// InvoiceSummary es la proyección ligera para listados (id + empresa).
type InvoiceSummary struct {
	ID       int64
	CompCode string
}
