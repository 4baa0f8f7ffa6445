package dto

// CreateIndustryRequest entrada para crear una industria.
type CreateIndustryRequest struct {
	Industry string `json:"industry"`
}

// LinkIndustryRequest entrada para asociar una industria a una empresa.
type LinkIndustryRequest struct {
	IndustryCode string `json:"industry_code"`
	CompanyCode  string `json:"company_code"`
}

// IndustryItem una industria (code, display name).
type IndustryItem struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryListResponse listado de industrias.
type IndustryListResponse struct {
	Industries []IndustryItem `json:"industries"`
}

// IndustryResponse industria envuelta bajo la clave industry.
type IndustryResponse struct {
	Industry IndustryItem `json:"industry"`
}

// IndustryLinkResponse asociación creada, bajo la clave industries_companies.
type IndustryLinkResponse struct {
	Link IndustryLink `json:"industries_companies"`
}

// IndustryLink par (industry_code, company_code).
type IndustryLink struct {
	IndustryCode string `json:"industry_code"`
	CompanyCode  string `json:"company_code"`
}
