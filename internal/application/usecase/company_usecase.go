package usecase

import (
	"errors"
	"strings"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo         repository.CompanyRepository
	invoiceRepo  repository.InvoiceRepository
	industryRepo repository.IndustryRepository
}

// NewCompanyUseCase construye el caso de uso con sus puertos de persistencia.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	industryRepo repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, invoiceRepo: invoiceRepo, industryRepo: industryRepo}
}

// Create crea una empresa derivando el código canónico del nombre.
// Devuelve domain.ErrInvalidInput si el nombre está vacío o no produce código,
// y domain.ErrDuplicate si el código ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := slug.Make(in.Name)
	if err != nil {
		if errors.Is(err, slug.ErrEmpty) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// GetByCode obtiene una empresa con sus ids de factura e industrias asociadas.
// Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByCode(code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	invoiceIDs, err := uc.invoiceRepo.IDsByCompany(code)
	if err != nil {
		return nil, err
	}
	industries, err := uc.industryRepo.CodesByCompany(code)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyDetailResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    invoiceIDs,
		Industries:  industries,
	}, nil
}

// List lista todas las empresas.
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *companyToResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

// Update reemplaza nombre y descripción. El código no cambia aunque cambie el
// nombre: es la clave pública de la empresa.
func (uc *CompanyUseCase) Update(code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete elimina una empresa. Se rechaza con domain.ErrConflict mientras
// existan facturas que la referencien: las facturas son registros contables y
// no se huérfanan ni se borran en cascada.
func (uc *CompanyUseCase) Delete(code string) error {
	referenced, err := uc.invoiceRepo.ExistsByCompany(code)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.repo.Delete(code)
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
