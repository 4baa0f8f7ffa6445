package entity

// Industry representa un sector económico. Solo lectura después de creada.
type Industry struct {
	Code     string
	Industry string
}

// IndustryCompanyLink asociación muchos-a-muchos industria ↔ empresa.
type IndustryCompanyLink struct {
	IndustryCode string
	CompanyCode  string
}
