// Package billing contiene la regla de negocio del ciclo de pago de una
// factura: la derivación de paid_date en función del estado actual y el
// estado solicitado. Es lógica pura, sin dependencias de infraestructura.
package billing

import "time"

// ResolvePaidDate deriva la fecha de pago a persistir cuando se actualiza una
// factura. La regla se evalúa en este orden:
//
//  1. Sin fecha previa y paid=true  -> se fija `now` (transición impago -> pagado).
//  2. paid=false                    -> la fecha se limpia, hubiera o no valor previo.
//  3. En cualquier otro caso        -> se conserva la fecha previa sin cambios.
//
// Así, marcar como pagada una factura ya pagada es idempotente (conserva la
// fecha original), y revertir el pago garantiza que un pago posterior fije una
// fecha fresca en lugar de resucitar la anterior.
func ResolvePaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case current == nil && paid:
		d := now
		return &d
	case !paid:
		return nil
	default:
		return current
	}
}
