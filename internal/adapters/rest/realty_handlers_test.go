package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
)

func TestRealty_RegisterUser(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]interface{}{
		"username": "kagiso", "password": "s3cret!", "email": "kagiso@example.co.za",
		"firstName": "Kagiso", "lastName": "Molefe",
	}

	rec := env.do(t, http.MethodPost, "/api/v1/realty/users", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	user := decode[domain.User](t, rec)
	assert.Equal(t, 4, user.ID)

	rec = env.do(t, http.MethodPost, "/api/v1/realty/users", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domain.ErrUsernameTaken.Error(), decode[errorResponse](t, rec).Message)
}

func TestRealty_RegisterUser_Validation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/realty/users", map[string]interface{}{
		"username": "kagiso", "email": "not-an-email", "firstName": "K", "lastName": "M", "role": "admin",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[errorResponse](t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	fields := map[string]bool{}
	for _, f := range resp.Errors {
		fields[f.Field] = true
	}
	assert.True(t, fields["password"])
	assert.True(t, fields["email"])
	assert.True(t, fields["role"])

	rec = env.do(t, http.MethodPost, "/api/v1/realty/users", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode[errorResponse](t, rec).Message)
}

func TestRealty_ListProperties(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/realty/properties?state=western%20cape&maxPrice=2200000", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	properties := decode[[]domain.Property](t, rec)
	require.Len(t, properties, 2)
	for _, p := range properties {
		assert.Equal(t, "Western Cape", p.State)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties?minPrice=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties?bedrooms=many", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRealty_PropertyCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/realty/properties", map[string]interface{}{
		"title": "Loft in Maboneng", "description": "Converted warehouse loft", "address": "1 Fox St",
		"city": "Johannesburg", "state": "Gauteng", "zipCode": "2094", "price": "1250000",
		"propertyType": "condo", "listingType": "sale", "ownerId": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.Property](t, rec)
	assert.True(t, created.IsActive)

	rec = env.do(t, http.MethodPut, "/api/v1/realty/properties/5", map[string]interface{}{"price": "1199000"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1199000", decode[domain.Property](t, rec).Price)

	rec = env.do(t, http.MethodPut, "/api/v1/realty/properties/5", map[string]interface{}{"price": 1199000})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/users/3/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Property](t, rec), 1)

	rec = env.do(t, http.MethodDelete, "/api/v1/realty/properties/5", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/5", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ErrPropertyNotFound.Error(), decode[errorResponse](t, rec).Message)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRealty_Inquiries(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/realty/inquiries", map[string]interface{}{
		"propertyId": 2, "firstName": "Aisha", "lastName": "Naidoo", "email": "aisha@example.co.za",
		"message": "Is the flat still available?", "inquiryType": "rental",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/2/inquiries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Inquiry](t, rec), 1)

	rec = env.do(t, http.MethodPost, "/api/v1/realty/inquiries", map[string]interface{}{
		"propertyId": 99, "firstName": "A", "lastName": "B", "email": "a@b.co",
		"message": "hello", "inquiryType": "general",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRealty_Mortgage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/realty/properties/1/mortgage?downPayment=450000&rate=10&years=20&monthlyRent=28750", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[finance.PropertyReport](t, rec)
	assert.Equal(t, 3000000.0, report.Mortgage.LoanAmount)
	assert.Equal(t, 20, report.Mortgage.Years)
	require.NotNil(t, report.RentalYield)
	assert.InDelta(t, 10.0, *report.RentalYield, 1e-9)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/1/mortgage?downPayment=9999999", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/1/mortgage?years=long", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/properties/77/mortgage", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRealty_SearchSuggestions(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/realty/search/suggestions?q=cape", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]string](t, rec)
	assert.Contains(t, got, "Cape Town")
	assert.LessOrEqual(t, len(got), 10)

	rec = env.do(t, http.MethodGet, "/api/v1/realty/search/suggestions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
