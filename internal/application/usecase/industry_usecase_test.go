package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

func newIndustryUC(industries *industryStore, companies *companyStore) *usecase.IndustryUseCase {
	if companies == nil {
		companies = newCompanyStore()
	}
	return usecase.NewIndustryUseCase(industries, companies)
}

func TestIndustryCreate_DerivaCodigoDelNombre(t *testing.T) {
	store := &industryStore{}
	uc := newIndustryUC(store, nil)

	out, err := uc.Create(dto.CreateIndustryRequest{Name: "Tecnología de la Información"})
	require.NoError(t, err)

	assert.Equal(t, "tecnologia-de-la-informacion", out.Code, "el código se deriva del nombre")
	assert.Equal(t, "Tecnología de la Información", out.Name)
	assert.Empty(t, out.Companies, "una industria nueva no tiene empresas asociadas")
}

func TestIndustryCreate_NombreSinCaracteresUsables(t *testing.T) {
	uc := newIndustryUC(&industryStore{}, nil)

	_, err := uc.Create(dto.CreateIndustryRequest{Name: "!!!"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIndustryList_IncluyeEmpresasAsociadas(t *testing.T) {
	store := &industryStore{}
	companies := newCompanyStore()
	require.NoError(t, companies.Create(&entity.Company{Code: "acme", Name: "Acme"}))
	uc := newIndustryUC(store, companies)

	_, err := uc.Create(dto.CreateIndustryRequest{Name: "Acct"})
	require.NoError(t, err)
	require.NoError(t, uc.Associate("acct", "acme"))

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "acct", out.Items[0].Code)
	assert.Equal(t, []string{"acme"}, out.Items[0].Companies)
}

func TestIndustryAssociate_EmpresaInexistente(t *testing.T) {
	uc := newIndustryUC(&industryStore{}, newCompanyStore())

	err := uc.Associate("acct", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIndustryAssociate_CompCodeVacio(t *testing.T) {
	uc := newIndustryUC(&industryStore{}, newCompanyStore())

	err := uc.Associate("acct", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIndustryAssociate_Repetida(t *testing.T) {
	companies := newCompanyStore()
	require.NoError(t, companies.Create(&entity.Company{Code: "acme", Name: "Acme"}))
	uc := newIndustryUC(&industryStore{}, companies)

	require.NoError(t, uc.Associate("acct", "acme"))
	err := uc.Associate("acct", "acme")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
