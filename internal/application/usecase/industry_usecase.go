package usecase

import (
	"errors"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/jhoicas/Facturas-api/pkg/slug"
)

// IndustryUseCase aplica reglas de negocio para industrias y su asociación
// con empresas.
type IndustryUseCase struct {
	repo        repository.IndustryRepository
	companyRepo repository.CompanyRepository
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(repo repository.IndustryRepository, companyRepo repository.CompanyRepository) *IndustryUseCase {
	return &IndustryUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea una industria derivando el código canónico del nombre.
func (uc *IndustryUseCase) Create(in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	code, err := slug.Make(in.Name)
	if err != nil {
		if errors.Is(err, slug.ErrEmpty) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	industry := &entity.Industry{Code: code, Name: in.Name}
	if err := uc.repo.Create(industry); err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Code: industry.Code, Name: industry.Name, Companies: []string{}}, nil
}

// List lista todas las industrias con sus empresas asociadas.
func (uc *IndustryUseCase) List() (*dto.IndustryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, dto.IndustryResponse{
			Code:      ind.Code,
			Name:      ind.Name,
			Companies: ind.CompanyCodes,
		})
	}
	return &dto.IndustryListResponse{Items: items}, nil
}

// Associate asocia una empresa a una industria. Ambos lados deben existir
// (domain.ErrNotFound si no); repetir la asociación devuelve domain.ErrDuplicate.
func (uc *IndustryUseCase) Associate(indCode, compCode string) error {
	if compCode == "" {
		return domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByCode(compCode)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Associate(indCode, compCode)
}
