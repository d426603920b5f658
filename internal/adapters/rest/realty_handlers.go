package rest

import (
	"net/http"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/contracts"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
	"github.com/muzikology/Live2Share/internal/core/port"
	"github.com/muzikology/Live2Share/internal/core/port/usecases_port"
)

// RealtyUseCases - все use case'ы варианта недвижимости.
type RealtyUseCases struct {
	RegisterUser      usecases_port.RegisterUserUseCasePort
	GetUser           usecases_port.GetUserUseCasePort
	CreateProperty    usecases_port.CreatePropertyUseCasePort
	GetProperty       usecases_port.GetPropertyUseCasePort
	ListProperties    usecases_port.ListPropertiesUseCasePort
	UpdateProperty    usecases_port.UpdatePropertyUseCasePort
	DeleteProperty    usecases_port.DeletePropertyUseCasePort
	PropertiesByOwner usecases_port.GetPropertiesByOwnerUseCasePort
	CreateInquiry     usecases_port.CreateInquiryUseCasePort
	PropertyInquiries usecases_port.GetPropertyInquiriesUseCasePort
	PropertyReport    usecases_port.PropertyReportUseCasePort
	Suggestions       usecases_port.SearchSuggestionsUseCasePort
}

type RealtyHandler struct {
	uc RealtyUseCases
}

func NewRealtyHandler(uc RealtyUseCases) *RealtyHandler {
	return &RealtyHandler{uc: uc}
}

// RegisterUser обрабатывает POST /api/v1/realty/users
func (h *RealtyHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RealtyRegisterUser"})

	var in domain.NewUser
	if err := decodeBody(r, contracts.User, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	user, err := h.uc.RegisterUser.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, user)
}

// GetUser обрабатывает GET /api/v1/realty/users/{id}
func (h *RealtyHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RealtyGetUser"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.uc.GetUser.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}

// GetUserProperties обрабатывает GET /api/v1/realty/users/{id}/properties
func (h *RealtyHandler) GetUserProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserProperties"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	properties, err := h.uc.PropertiesByOwner.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, properties)
}

// ListProperties обрабатывает GET /api/v1/realty/properties
func (h *RealtyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	filters, err := parsePropertyFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Debug("Processing request to list properties", port.Fields{"filters": filters})

	properties, err := h.uc.ListProperties.Execute(r.Context(), filters)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, properties)
}

func parsePropertyFilters(r *http.Request) (domain.PropertyFilters, error) {
	q := r.URL.Query()
	f := domain.PropertyFilters{
		City:         parseString(q, "city"),
		State:        parseString(q, "state"),
		PropertyType: parseString(q, "propertyType"),
		ListingType:  parseString(q, "listingType"),
	}

	var err error
	if f.MinPrice, err = parseFloat(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseFloat(q, "maxPrice"); err != nil {
		return f, err
	}
	if f.Bedrooms, err = parseInt(q, "bedrooms"); err != nil {
		return f, err
	}
	if f.Bathrooms, err = parseInt(q, "bathrooms"); err != nil {
		return f, err
	}
	return f, nil
}

// CreateProperty обрабатывает POST /api/v1/realty/properties
func (h *RealtyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	var in domain.NewProperty
	if err := decodeBody(r, contracts.Property, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	property, err := h.uc.CreateProperty.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, property)
}

// GetProperty обрабатывает GET /api/v1/realty/properties/{id}
func (h *RealtyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.uc.GetProperty.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

// UpdateProperty обрабатывает PUT /api/v1/realty/properties/{id}
func (h *RealtyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch domain.PropertyPatch
	if err := decodeBody(r, contracts.PropertyPatch, &patch); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	property, err := h.uc.UpdateProperty.Execute(r.Context(), id, patch)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, property)
}

// DeleteProperty обрабатывает DELETE /api/v1/realty/properties/{id}
func (h *RealtyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.uc.DeleteProperty.Execute(r.Context(), id); err != nil {
		writeError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetPropertyInquiries обрабатывает GET /api/v1/realty/properties/{id}/inquiries
func (h *RealtyHandler) GetPropertyInquiries(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyInquiries"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	inquiries, err := h.uc.PropertyInquiries.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, inquiries)
}

// GetPropertyMortgage обрабатывает GET /api/v1/realty/properties/{id}/mortgage
func (h *RealtyHandler) GetPropertyMortgage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyMortgage"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := parseReportInput(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.uc.PropertyReport.Execute(r.Context(), id, in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, report)
}

func parseReportInput(r *http.Request) (finance.PropertyReportInput, error) {
	q := r.URL.Query()
	var in finance.PropertyReportInput

	down, err := parseFloat(q, "downPayment")
	if err != nil {
		return in, err
	}
	if down != nil {
		in.DownPayment = *down
	}
	if in.AnnualRatePct, err = parseFloat(q, "rate"); err != nil {
		return in, err
	}
	years, err := parseInt(q, "years")
	if err != nil {
		return in, err
	}
	if years != nil {
		in.Years = *years
	}
	if in.MonthlyRent, err = parseFloat(q, "monthlyRent"); err != nil {
		return in, err
	}
	expenses, err := parseFloat(q, "monthlyExpenses")
	if err != nil {
		return in, err
	}
	if expenses != nil {
		in.MonthlyExpenses = *expenses
	}
	return in, nil
}

// CreateInquiry обрабатывает POST /api/v1/realty/inquiries
func (h *RealtyHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateInquiry"})

	var in domain.NewInquiry
	if err := decodeBody(r, contracts.Inquiry, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	inquiry, err := h.uc.CreateInquiry.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, inquiry)
}

// SearchSuggestions обрабатывает GET /api/v1/realty/search/suggestions?q=
func (h *RealtyHandler) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestionsHandler(h.uc.Suggestions)(w, r)
}

func suggestionsHandler(uc usecases_port.SearchSuggestionsUseCasePort) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchSuggestions"})

		suggestions, err := uc.Execute(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeError(w, logger, err)
			return
		}
		RespondWithJSON(w, http.StatusOK, suggestions)
	}
}
