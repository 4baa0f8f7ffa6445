package dto

// CreateCompanyRequest entrada para crear una empresa. El code se deriva
// del nombre (slug); no lo aporta el cliente.
type CreateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
// El code es inmutable: su presencia en el body se rechaza en el handler.
type UpdateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyItem elemento de listado (code, name).
type CompanyItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse listado de empresas.
type CompanyListResponse struct {
	Companies []CompanyItem `json:"companies"`
}

// CompanyResponse empresa envuelta bajo la clave company.
type CompanyResponse struct {
	Company Company `json:"company"`
}

// Company cuerpo de una empresa en create/update.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse empresa con industrias y facturas (get por code).
type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}

// CompanyDetail empresa compuesta desde dos result sets independientes:
// el join con industrias y la consulta de ids de factura.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Invoices    []int64  `json:"invoices"`
	Industries  []string `json:"industries"`
}
