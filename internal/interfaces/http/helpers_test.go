package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria: implementa los tres puertos de persistencia para poder
// ejercitar los handlers de punta a punta con app.Test, sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu         sync.Mutex
	companies  map[string]*entity.Company
	industries map[string]*entity.Industry
	links      []entity.IndustryCompanyLink
	invoices   map[int64]*entity.Invoice
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		companies:  map[string]*entity.Company{},
		industries: map[string]*entity.Industry{},
		invoices:   map[int64]*entity.Invoice{},
		nextID:     1,
	}
}

// CompanyRepository

func (s *memStore) List(ctx context.Context) ([]entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := []entity.Company{}
	for _, c := range s.companies {
		list = append(list, *c)
	}
	return list, nil
}

func (s *memStore) GetWithIndustries(ctx context.Context, code string) ([]entity.CompanyIndustryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[code]
	if !ok {
		return nil, nil
	}
	rows := []entity.CompanyIndustryRow{}
	for _, l := range s.links {
		if l.CompanyCode == code {
			ind := s.industries[l.IndustryCode]
			rows = append(rows, entity.CompanyIndustryRow{
				Code: c.Code, Name: c.Name, Description: c.Description, Industry: &ind.Industry,
			})
		}
	}
	if len(rows) == 0 {
		// Sin industrias el LEFT JOIN produce una fila con industry NULL.
		rows = append(rows, entity.CompanyIndustryRow{Code: c.Code, Name: c.Name, Description: c.Description})
	}
	return rows, nil
}

func (s *memStore) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *company
	s.companies[cp.Code] = &cp
	return &cp, nil
}

func (s *memStore) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.companies[company.Code]
	if !ok {
		return nil, nil
	}
	existing.Name = company.Name
	existing.Description = company.Description
	cp := *existing
	return &cp, nil
}

func (s *memStore) Delete(ctx context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[code]; !ok {
		return false, nil
	}
	delete(s.companies, code)
	return true, nil
}

// invoiceStore e industryStore envuelven el mismo memStore para poder
// implementar los métodos List/Create de los otros puertos sin colisionar.

type invoiceStore struct{ s *memStore }

func (r invoiceStore) List(ctx context.Context) ([]entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []entity.Invoice{}
	for _, inv := range r.s.invoices {
		list = append(list, *inv)
	}
	return list, nil
}

func (r invoiceStore) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	c, ok := r.s.companies[inv.CompCode]
	if !ok {
		panic(fmt.Sprintf("memStore: la factura %d referencia la empresa inexistente %q", id, inv.CompCode))
	}
	return &entity.InvoiceWithCompany{Invoice: *inv, Company: *c}, nil
}

func (r invoiceStore) ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := []int64{}
	for id, inv := range r.s.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r invoiceStore) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv := &entity.Invoice{
		ID:       r.s.nextID,
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Now(),
	}
	r.s.nextID++
	r.s.invoices[inv.ID] = inv
	cp := *inv
	return &cp, nil
}

func (r invoiceStore) UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	inv.Amt = amt
	cp := *inv
	return &cp, nil
}

func (r invoiceStore) UpdatePayment(ctx context.Context, id int64, amt decimal.Decimal, paid bool, paidDate *time.Time) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	inv.Amt = amt
	inv.Paid = paid
	inv.PaidDate = paidDate
	cp := *inv
	return &cp, nil
}

func (r invoiceStore) Delete(ctx context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return false, nil
	}
	delete(r.s.invoices, id)
	return true, nil
}

type industryStore struct{ s *memStore }

func (r industryStore) List(ctx context.Context) ([]entity.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := []entity.Industry{}
	for _, i := range r.s.industries {
		list = append(list, *i)
	}
	return list, nil
}

func (r industryStore) Create(ctx context.Context, industry *entity.Industry) (*entity.Industry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *industry
	r.s.industries[cp.Code] = &cp
	return &cp, nil
}

func (r industryStore) Link(ctx context.Context, link *entity.IndustryCompanyLink) (*entity.IndustryCompanyLink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links = append(r.s.links, *link)
	cp := *link
	return &cp, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la app Fiber completa sobre el almacén en memoria.
func buildTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(store, invoiceStore{store}),
		IndustryUC: usecase.NewIndustryUseCase(industryStore{store}),
		InvoiceUC:  usecase.NewInvoiceUseCase(invoiceStore{store}),
	})
	return app
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode decodifica el body JSON en un mapa genérico.
func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedCompany(s *memStore, code, name string, description *string) {
	s.companies[code] = &entity.Company{Code: code, Name: name, Description: description}
}
