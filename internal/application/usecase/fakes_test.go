package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio: cada test configura solo los métodos que espera usar.
// Un método invocado sin configurar hace panic, delatando una llamada inesperada.
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.CompanyRepository = (*companyRepoStub)(nil)

type companyRepoStub struct {
	listFn              func(ctx context.Context) ([]entity.Company, error)
	getWithIndustriesFn func(ctx context.Context, code string) ([]entity.CompanyIndustryRow, error)
	createFn            func(ctx context.Context, company *entity.Company) (*entity.Company, error)
	updateFn            func(ctx context.Context, company *entity.Company) (*entity.Company, error)
	deleteFn            func(ctx context.Context, code string) (bool, error)
}

func (s *companyRepoStub) List(ctx context.Context) ([]entity.Company, error) {
	return s.listFn(ctx)
}

func (s *companyRepoStub) GetWithIndustries(ctx context.Context, code string) ([]entity.CompanyIndustryRow, error) {
	return s.getWithIndustriesFn(ctx, code)
}

func (s *companyRepoStub) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	return s.createFn(ctx, company)
}

func (s *companyRepoStub) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	return s.updateFn(ctx, company)
}

func (s *companyRepoStub) Delete(ctx context.Context, code string) (bool, error) {
	return s.deleteFn(ctx, code)
}

var _ repository.InvoiceRepository = (*invoiceRepoStub)(nil)

type invoiceRepoStub struct {
	listFn             func(ctx context.Context) ([]entity.Invoice, error)
	getWithCompanyFn   func(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error)
	listIDsByCompanyFn func(ctx context.Context, compCode string) ([]int64, error)
	createFn           func(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	updateAmountFn     func(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error)
	updatePaymentFn    func(ctx context.Context, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) (*entity.Invoice, error)
	deleteFn           func(ctx context.Context, id int64) (bool, error)
}

func (s *invoiceRepoStub) List(ctx context.Context) ([]entity.Invoice, error) {
	return s.listFn(ctx)
}

func (s *invoiceRepoStub) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	return s.getWithCompanyFn(ctx, id)
}

func (s *invoiceRepoStub) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	return s.listIDsByCompanyFn(ctx, compCode)
}

func (s *invoiceRepoStub) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	return s.createFn(ctx, compCode, amt)
}

func (s *invoiceRepoStub) UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	return s.updateAmountFn(ctx, id, amt)
}

func (s *invoiceRepoStub) UpdatePayment(ctx context.Context, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) (*entity.Invoice, error) {
	return s.updatePaymentFn(ctx, id, amt, paid, paidDate)
}

func (s *invoiceRepoStub) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleteFn(ctx, id)
}

var _ repository.IndustryRepository = (*industryRepoStub)(nil)

type industryRepoStub struct {
	listFn   func(ctx context.Context) ([]entity.Industry, error)
	createFn func(ctx context.Context, industry *entity.Industry) (*entity.Industry, error)
	linkFn   func(ctx context.Context, link *entity.IndustryCompanyLink) (*entity.IndustryCompanyLink, error)
}

func (s *industryRepoStub) List(ctx context.Context) ([]entity.Industry, error) {
	return s.listFn(ctx)
}

func (s *industryRepoStub) Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error) {
	return s.createFn(ctx, industry)
}

func (s *industryRepoStub) Link(ctx context.Context, link *entity.IndustryCompanyLink) (*entity.IndustryCompanyLink, error) {
	return s.linkFn(ctx, link)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
