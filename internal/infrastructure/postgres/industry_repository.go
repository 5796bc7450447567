package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	pool *pgxpool.Pool
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(pool *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{pool: pool}
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(industry *entity.Industry) error {
	query := `
		INSERT INTO industries (code, name)
		VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query, industry.Code, industry.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// List devuelve todas las industrias con los códigos de empresas asociadas.
// Una industria sin empresas aparece con la lista vacía (LEFT JOIN).
func (r *IndustryRepo) List() ([]*entity.IndustryCompanies, error) {
	query := `
		SELECT i.code, i.name, ci.comp_code
		FROM industries AS i
		LEFT JOIN company_industry AS ci ON i.code = ci.ind_code
		ORDER BY i.code, ci.comp_code`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.IndustryCompanies
	byCode := make(map[string]*entity.IndustryCompanies)
	for rows.Next() {
		var code, name string
		var compCode *string
		if err := rows.Scan(&code, &name, &compCode); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		ind, ok := byCode[code]
		if !ok {
			ind = &entity.IndustryCompanies{
				Industry:     entity.Industry{Code: code, Name: name},
				CompanyCodes: []string{},
			}
			byCode[code] = ind
			list = append(list, ind)
		}
		if compCode != nil {
			ind.CompanyCodes = append(ind.CompanyCodes, *compCode)
		}
	}
	return list, rows.Err()
}

// CodesByCompany devuelve los códigos de industria asociados a una empresa.
func (r *IndustryRepo) CodesByCompany(compCode string) ([]string, error) {
	query := `
		SELECT ind_code FROM company_industry
		WHERE comp_code = $1 ORDER BY ind_code`
	rows, err := r.pool.Query(context.Background(), query, compCode)
	if err != nil {
		return nil, fmt.Errorf("industries by company: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan industry code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// Associate crea la fila de unión industria-empresa.
func (r *IndustryRepo) Associate(indCode, compCode string) error {
	query := `
		INSERT INTO company_industry (ind_code, comp_code)
		VALUES ($1, $2)`
	_, err := r.pool.Exec(context.Background(), query, indCode, compCode)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			// Industria o empresa inexistente (backstop del caso de uso).
			return domain.ErrNotFound
		}
		return fmt.Errorf("associate industry: %w", err)
	}
	return nil
}
