package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura con estado inicial impago. La base asigna id y
// add_date; ambos se devuelven en el entity recibido.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, paid, add_date`
	err := r.q.QueryRow(context.Background(), query,
		invoice.CompCode, invoice.Amt,
	).Scan(&invoice.ID, &invoice.Paid, &invoice.AddDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Empresa inexistente (backstop del chequeo del caso de uso).
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.PaidDate = nil
	return nil
}

// GetByID obtiene una factura por id. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la factura bloqueando la fila. Dentro de una tx, un
// segundo actualizador queda en espera hasta el commit del primero.
func (r *InvoiceRepo) GetForUpdate(id int64) (*entity.Invoice, error) {
	return r.get(id, true)
}

func (r *InvoiceRepo) get(id int64, forUpdate bool) (*entity.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las facturas (proyección id + empresa) ordenadas por id.
func (r *InvoiceRepo) List() ([]*entity.InvoiceSummary, error) {
	query := `
		SELECT id, comp_code
		FROM invoices ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceSummary
	for rows.Next() {
		var s entity.InvoiceSummary
		if err := rows.Scan(&s.ID, &s.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// IDsByCompany devuelve los ids de factura de una empresa, ordenados.
func (r *InvoiceRepo) IDsByCompany(compCode string) ([]int64, error) {
	query := `
		SELECT id FROM invoices
		WHERE comp_code = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, compCode)
	if err != nil {
		return nil, fmt.Errorf("invoices by company: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ExistsByCompany informa si la empresa tiene al menos una factura (O(1) vía índice).
func (r *InvoiceRepo) ExistsByCompany(compCode string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM invoices WHERE comp_code = $1)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, compCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("check invoices by company: %w", err)
	}
	return exists, nil
}

// Update escribe amt, paid y paid_date. comp_code y add_date son inmutables.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
