package dto

// CreateCompanyRequest entrada para crear una empresa. El código se deriva
// del nombre (slug), no lo envía el cliente.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa. El código es
// inmutable; solo cambian nombre y descripción.
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse empresa con sus facturas e industrias asociadas.
type CompanyDetailResponse struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}

// CompanyListResponse lista de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}
