package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type companyStore struct {
	byCode map[string]*entity.Company
}

func newCompanyStore() *companyStore {
	return &companyStore{byCode: make(map[string]*entity.Company)}
}

func (s *companyStore) Create(c *entity.Company) error {
	if _, ok := s.byCode[c.Code]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	s.byCode[c.Code] = &cp
	return nil
}

func (s *companyStore) GetByCode(code string) (*entity.Company, error) {
	c, ok := s.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *companyStore) List() ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range s.byCode {
		cp := *c
		list = append(list, &cp)
	}
	return list, nil
}

func (s *companyStore) Update(c *entity.Company) error {
	if _, ok := s.byCode[c.Code]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	s.byCode[c.Code] = &cp
	return nil
}

func (s *companyStore) Delete(code string) error {
	if _, ok := s.byCode[code]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byCode, code)
	return nil
}

// invoiceStore implementa repository.InvoiceRepository con lo mínimo que el
// caso de uso de empresas consulta.
type invoiceStore struct {
	byID map[int64]*entity.Invoice
}

func newInvoiceStore(invoices ...entity.Invoice) *invoiceStore {
	s := &invoiceStore{byID: make(map[int64]*entity.Invoice)}
	for i := range invoices {
		s.byID[invoices[i].ID] = &invoices[i]
	}
	return s
}

func (s *invoiceStore) Create(inv *entity.Invoice) error { s.byID[inv.ID] = inv; return nil }
func (s *invoiceStore) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}
func (s *invoiceStore) GetForUpdate(id int64) (*entity.Invoice, error) { return s.GetByID(id) }
func (s *invoiceStore) List() ([]*entity.InvoiceSummary, error)        { return nil, nil }
func (s *invoiceStore) IDsByCompany(compCode string) ([]int64, error) {
	ids := []int64{}
	for id, inv := range s.byID {
		if inv.CompCode == compCode {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
func (s *invoiceStore) ExistsByCompany(compCode string) (bool, error) {
	for _, inv := range s.byID {
		if inv.CompCode == compCode {
			return true, nil
		}
	}
	return false, nil
}
func (s *invoiceStore) Update(inv *entity.Invoice) error { return nil }
func (s *invoiceStore) Delete(id int64) error            { delete(s.byID, id); return nil }

// industryStore implementa repository.IndustryRepository.
type industryStore struct {
	byCompany  map[string][]string
	created    []entity.Industry
	associated map[string][]string // indCode -> compCodes
}

func (s *industryStore) Create(ind *entity.Industry) error {
	s.created = append(s.created, *ind)
	return nil
}

func (s *industryStore) List() ([]*entity.IndustryCompanies, error) {
	var list []*entity.IndustryCompanies
	for _, ind := range s.created {
		list = append(list, &entity.IndustryCompanies{
			Industry:     ind,
			CompanyCodes: s.associated[ind.Code],
		})
	}
	return list, nil
}

func (s *industryStore) Associate(indCode, compCode string) error {
	for _, existing := range s.associated[indCode] {
		if existing == compCode {
			return domain.ErrDuplicate
		}
	}
	if s.associated == nil {
		s.associated = make(map[string][]string)
	}
	s.associated[indCode] = append(s.associated[indCode], compCode)
	return nil
}

func (s *industryStore) CodesByCompany(compCode string) ([]string, error) {
	codes, ok := s.byCompany[compCode]
	if !ok {
		return []string{}, nil
	}
	return codes, nil
}

func newUC(companies *companyStore, invoices *invoiceStore, industries *industryStore) *usecase.CompanyUseCase {
	if industries == nil {
		industries = &industryStore{}
	}
	return usecase.NewCompanyUseCase(companies, invoices, industries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: derivación del código canónico
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_DerivaCodigoDelNombre(t *testing.T) {
	uc := newUC(newCompanyStore(), newInvoiceStore(), nil)

	out, err := uc.Create(dto.CreateCompanyRequest{Name: "Apple Computer", Description: "maker of OSX"})
	require.NoError(t, err)

	assert.Equal(t, "apple-computer", out.Code, "el código debe ser el slug del nombre")
	assert.Equal(t, "Apple Computer", out.Name)
	assert.Equal(t, "maker of OSX", out.Description)
}

func TestCompanyCreate_NombreVacio(t *testing.T) {
	uc := newUC(newCompanyStore(), newInvoiceStore(), nil)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyCreate_NombreSinCaracteresUsables(t *testing.T) {
	uc := newUC(newCompanyStore(), newInvoiceStore(), nil)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "!!!"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un nombre que no produce código es inválido")
}

func TestCompanyCreate_CodigoDuplicado(t *testing.T) {
	store := newCompanyStore()
	uc := newUC(store, newInvoiceStore(), nil)

	_, err := uc.Create(dto.CreateCompanyRequest{Name: "Acme Corp"})
	require.NoError(t, err)

	// "ACME CORP" normaliza al mismo código "acme-corp".
	_, err = uc.Create(dto.CreateCompanyRequest{Name: "ACME CORP"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByCode / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGetByCode_IncluyeFacturasEIndustrias(t *testing.T) {
	store := newCompanyStore()
	require.NoError(t, store.Create(&entity.Company{Code: "acme", Name: "Acme Corp"}))
	invoices := newInvoiceStore(
		entity.Invoice{ID: 1, CompCode: "acme", Amt: decimal.NewFromInt(10), AddDate: time.Now()},
		entity.Invoice{ID: 2, CompCode: "otra", Amt: decimal.NewFromInt(20), AddDate: time.Now()},
		entity.Invoice{ID: 3, CompCode: "acme", Amt: decimal.NewFromInt(30), AddDate: time.Now()},
	)
	uc := newUC(store, invoices, &industryStore{byCompany: map[string][]string{"acme": {"mfg", "tech"}}})

	out, err := uc.GetByCode("acme")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []int64{1, 3}, out.Invoices, "solo las facturas de la empresa")
	assert.Equal(t, []string{"mfg", "tech"}, out.Industries)
}

func TestCompanyGetByCode_NoExiste(t *testing.T) {
	uc := newUC(newCompanyStore(), newInvoiceStore(), nil)

	out, err := uc.GetByCode("nope")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCompanyUpdate_CodigoInmutable(t *testing.T) {
	store := newCompanyStore()
	require.NoError(t, store.Create(&entity.Company{Code: "acme", Name: "Acme Corp"}))
	uc := newUC(store, newInvoiceStore(), nil)

	out, err := uc.Update("acme", dto.UpdateCompanyRequest{Name: "Acme Holdings"})
	require.NoError(t, err)
	assert.Equal(t, "acme", out.Code, "cambiar el nombre no cambia el código")
	assert.Equal(t, "Acme Holdings", out.Name)
}

func TestCompanyUpdate_NoExiste(t *testing.T) {
	uc := newUC(newCompanyStore(), newInvoiceStore(), nil)

	_, err := uc.Update("nope", dto.UpdateCompanyRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El borrado se rechaza mientras existan facturas de la empresa.
func TestCompanyDelete_RechazadoConFacturas(t *testing.T) {
	store := newCompanyStore()
	require.NoError(t, store.Create(&entity.Company{Code: "acme", Name: "Acme Corp"}))
	invoices := newInvoiceStore(entity.Invoice{ID: 1, CompCode: "acme", Amt: decimal.NewFromInt(10), AddDate: time.Now()})
	uc := newUC(store, invoices, nil)

	err := uc.Delete("acme")
	assert.ErrorIs(t, err, domain.ErrConflict, "no se huérfanan facturas")

	still, _ := store.GetByCode("acme")
	assert.NotNil(t, still, "la empresa debe seguir existiendo")
}

func TestCompanyDelete_SinFacturas(t *testing.T) {
	store := newCompanyStore()
	require.NoError(t, store.Create(&entity.Company{Code: "acme", Name: "Acme Corp"}))
	uc := newUC(store, newInvoiceStore(), nil)

	require.NoError(t, uc.Delete("acme"))

	gone, _ := store.GetByCode("acme")
	assert.Nil(t, gone)
}
