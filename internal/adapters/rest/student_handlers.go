package rest

import (
	"net/http"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/contracts"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
	"github.com/muzikology/Live2Share/internal/core/port/usecases_port"
)

// StudentUseCases - все use case'ы студенческого варианта.
type StudentUseCases struct {
	RegisterStudent         usecases_port.RegisterStudentUseCasePort
	GetStudent              usecases_port.GetStudentUseCasePort
	CreateAccommodation     usecases_port.CreateAccommodationUseCasePort
	GetAccommodation        usecases_port.GetAccommodationUseCasePort
	ListAccommodations      usecases_port.ListAccommodationsUseCasePort
	UpdateAccommodation     usecases_port.UpdateAccommodationUseCasePort
	DeleteAccommodation     usecases_port.DeleteAccommodationUseCasePort
	LandlordAccommodations  usecases_port.GetLandlordAccommodationsUseCasePort
	CreateRoommate          usecases_port.CreateRoommateUseCasePort
	GetRoommates            usecases_port.GetRoommatesUseCasePort
	CreateApplication       usecases_port.CreateApplicationUseCasePort
	AccommodationApps       usecases_port.GetAccommodationApplicationsUseCasePort
	UserApplications        usecases_port.GetUserApplicationsUseCasePort
	UpdateApplicationStatus usecases_port.UpdateApplicationStatusUseCasePort
	CreateRentalAgreement   usecases_port.CreateRentalAgreementUseCasePort
	GetRentalAgreement      usecases_port.GetRentalAgreementUseCasePort
	RentSplit               usecases_port.RentSplitUseCasePort
	Suggestions             usecases_port.SearchSuggestionsUseCasePort
}

type StudentHandler struct {
	uc StudentUseCases
}

func NewStudentHandler(uc StudentUseCases) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// RegisterStudent обрабатывает POST /api/v1/student/users
func (h *StudentHandler) RegisterStudent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RegisterStudent"})

	var in domain.NewStudentUser
	if err := decodeBody(r, contracts.StudentUser, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	user, err := h.uc.RegisterStudent.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, user)
}

// GetStudent обрабатывает GET /api/v1/student/users/{id}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetStudent"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.uc.GetStudent.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, user)
}

// GetUserApplications обрабатывает GET /api/v1/student/users/{id}/applications
func (h *StudentHandler) GetUserApplications(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserApplications"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	applications, err := h.uc.UserApplications.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, applications)
}

// GetLandlordAccommodations обрабатывает GET /api/v1/student/users/{id}/accommodations
func (h *StudentHandler) GetLandlordAccommodations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetLandlordAccommodations"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	accommodations, err := h.uc.LandlordAccommodations.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, accommodations)
}

// ListAccommodations обрабатывает GET /api/v1/student/accommodations
func (h *StudentHandler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListAccommodations"})

	filters, err := parseAccommodationFilters(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Debug("Processing request to list accommodations", port.Fields{"filters": filters})

	accommodations, err := h.uc.ListAccommodations.Execute(r.Context(), filters)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, accommodations)
}

func parseAccommodationFilters(r *http.Request) (domain.AccommodationFilters, error) {
	q := r.URL.Query()
	f := domain.AccommodationFilters{
		City:              parseString(q, "city"),
		Province:          parseString(q, "province"),
		Area:              parseString(q, "area"),
		AccommodationType: parseString(q, "accommodationType"),
		University:        parseString(q, "university"),
	}

	var err error
	if f.MinRent, err = parseFloat(q, "minRent"); err != nil {
		return f, err
	}
	if f.MaxRent, err = parseFloat(q, "maxRent"); err != nil {
		return f, err
	}
	if f.AvailableRooms, err = parseInt(q, "availableRooms"); err != nil {
		return f, err
	}
	return f, nil
}

// CreateAccommodation обрабатывает POST /api/v1/student/accommodations
func (h *StudentHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateAccommodation"})

	var in domain.NewAccommodation
	if err := decodeBody(r, contracts.Accommodation, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	accommodation, err := h.uc.CreateAccommodation.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, accommodation)
}

// GetAccommodation обрабатывает GET /api/v1/student/accommodations/{id}
func (h *StudentHandler) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAccommodation"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	accommodation, err := h.uc.GetAccommodation.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, accommodation)
}

// UpdateAccommodation обрабатывает PUT /api/v1/student/accommodations/{id}
func (h *StudentHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateAccommodation"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch domain.AccommodationPatch
	if err := decodeBody(r, contracts.AccommodationPatch, &patch); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	accommodation, err := h.uc.UpdateAccommodation.Execute(r.Context(), id, patch)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, accommodation)
}

// DeleteAccommodation обрабатывает DELETE /api/v1/student/accommodations/{id}
func (h *StudentHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteAccommodation"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.uc.DeleteAccommodation.Execute(r.Context(), id); err != nil {
		writeError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRoommates обрабатывает GET /api/v1/student/accommodations/{id}/roommates
// По умолчанию только текущие жильцы, ?all=true - вся история.
func (h *StudentHandler) GetRoommates(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRoommates"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	roommates, err := h.uc.GetRoommates.Execute(r.Context(), id, parseBool(r.URL.Query(), "all"))
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, roommates)
}

// GetAccommodationApplications обрабатывает GET /api/v1/student/accommodations/{id}/applications
func (h *StudentHandler) GetAccommodationApplications(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAccommodationApplications"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	applications, err := h.uc.AccommodationApps.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, applications)
}

// GetRentalAgreement обрабатывает GET /api/v1/student/accommodations/{id}/rental-agreement
func (h *StudentHandler) GetRentalAgreement(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRentalAgreement"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	agreement, err := h.uc.GetRentalAgreement.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, agreement)
}

// GetRentSplit обрабатывает GET /api/v1/student/accommodations/{id}/rent-split
func (h *StudentHandler) GetRentSplit(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRentSplit"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	split, err := h.uc.RentSplit.Execute(r.Context(), id)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, split)
}

// CreateRoommate обрабатывает POST /api/v1/student/roommates
func (h *StudentHandler) CreateRoommate(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateRoommate"})

	var in domain.NewRoommate
	if err := decodeBody(r, contracts.Roommate, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	roommate, err := h.uc.CreateRoommate.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, roommate)
}

// CreateApplication обрабатывает POST /api/v1/student/applications
func (h *StudentHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateApplication"})

	var in domain.NewApplication
	if err := decodeBody(r, contracts.Application, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	application, err := h.uc.CreateApplication.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, application)
}

type applicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// UpdateApplicationStatus обрабатывает PATCH /api/v1/student/applications/{id}/status
func (h *StudentHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateApplicationStatus"})

	id, err := pathID(r, "id")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req applicationStatusRequest
	if err := decodeBody(r, contracts.ApplicationStatus, &req); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	application, err := h.uc.UpdateApplicationStatus.Execute(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, application)
}

// CreateRentalAgreement обрабатывает POST /api/v1/student/rental-agreements
func (h *StudentHandler) CreateRentalAgreement(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateRentalAgreement"})

	var in domain.NewRentalAgreement
	if err := decodeBody(r, contracts.RentalAgreement, &in); err != nil {
		writeBadBody(w, logger, err)
		return
	}

	agreement, err := h.uc.CreateRentalAgreement.Execute(r.Context(), in)
	if err != nil {
		writeError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, agreement)
}

// SearchSuggestions обрабатывает GET /api/v1/student/search/suggestions?q=
func (h *StudentHandler) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestionsHandler(h.uc.Suggestions)(w, r)
}
