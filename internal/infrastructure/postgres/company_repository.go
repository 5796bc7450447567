package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByCode obtiene una empresa por código. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(code string) (*entity.Company, error) {
	query := `
		SELECT code, name, COALESCE(description, '')
		FROM companies WHERE code = $1`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, code).Scan(
		&c.Code, &c.Name, &c.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List devuelve todas las empresas ordenadas por nombre.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `
		SELECT code, name, COALESCE(description, '')
		FROM companies ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por código.
func (r *CompanyRepo) Delete(code string) error {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		if isForeignKeyViolation(err) {
			// Facturas aún referencian la empresa (backstop del chequeo del caso de uso).
			return domain.ErrConflict
		}
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
