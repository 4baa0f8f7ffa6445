package usecase

import (
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// composeCompanyDetail colapsa las filas del LEFT JOIN (una por industria,
// con los campos de la empresa repetidos) en un único registro, y mezcla los
// ids de factura que vienen de una consulta independiente. Los dos result
// sets no se juntan en SQL; se combinan aquí.
func composeCompanyDetail(rows []entity.CompanyIndustryRow, invoiceIDs []int64) dto.CompanyDetail {
	first := rows[0]
	industries := []string{}
	for _, row := range rows {
		// Sin industrias el join produce una fila con industry NULL; se omite.
		if row.Industry != nil {
			industries = append(industries, *row.Industry)
		}
	}
	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}
	return dto.CompanyDetail{
		Code:        first.Code,
		Name:        first.Name,
		Description: first.Description,
		Invoices:    invoiceIDs,
		Industries:  industries,
	}
}

// composeInvoiceDetail anida la empresa propietaria dentro de la factura.
func composeInvoiceDetail(iwc *entity.InvoiceWithCompany) dto.InvoiceDetail {
	return dto.InvoiceDetail{
		ID:       iwc.ID,
		Amt:      iwc.Amt,
		Paid:     iwc.Paid,
		AddDate:  iwc.AddDate,
		PaidDate: iwc.PaidDate,
		Company: dto.Company{
			Code:        iwc.Company.Code,
			Name:        iwc.Company.Name,
			Description: iwc.Company.Description,
		},
	}
}

func invoiceToDTO(inv *entity.Invoice) dto.Invoice {
	return dto.Invoice{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
