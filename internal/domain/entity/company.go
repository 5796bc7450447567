package entity

// Company representa una empresa registrada. El código es el identificador
// canónico derivado del nombre (ver pkg/slug) y es inmutable tras la creación.
type Company struct {
	Code        string
	Name        string
	Description string
}
