package dto

// CreateIndustryRequest entrada para crear una industria.
type CreateIndustryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// AssociateCompanyRequest entrada para asociar una empresa a una industria.
type AssociateCompanyRequest struct {
	CompCode string `json:"comp_code" validate:"required"`
}

// IndustryResponse industria con los códigos de empresas asociadas.
type IndustryResponse struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Companies []string `json:"companies"`
}

// IndustryListResponse lista de industrias.
type IndustryListResponse struct {
	Items []IndustryResponse `json:"items"`
}
