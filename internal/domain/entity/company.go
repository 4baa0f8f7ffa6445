package entity

// Company representa una empresa. El code es el identificador primario
// (slug derivado del nombre) y es inmutable después de la creación.
type Company struct {
	Code        string
	Name        string
	Description *string
}

// CompanyIndustryRow una fila del LEFT JOIN empresa ↔ industrias.
// Industry es nil cuando la empresa no tiene industrias asociadas.
type CompanyIndustryRow struct {
	Code        string
	Name        string
	Description *string
	Industry    *string
}
