package entity

// Industry representa un sector industrial. Se relaciona muchos-a-muchos con
// Company a través de la tabla company_industry.
type Industry struct {
	Code string
	Name string
}

// IndustryCompanies es la vista de listado: una industria con los códigos de
// las empresas asociadas.
type IndustryCompanies struct {
	Industry
	CompanyCodes []string
}
