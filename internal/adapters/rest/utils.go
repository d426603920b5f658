package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/muzikology/Live2Share/internal/contracts"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
	"github.com/muzikology/Live2Share/internal/core/port"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Message string                 `json:"message"`
	Errors  []contracts.FieldError `json:"errors,omitempty"`
}

// WriteJSONError отправляет JSON-ответ с полем "message" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, errorResponse{Message: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// decodeBody проверяет тело по схеме и раскладывает его в dst.
func decodeBody(r *http.Request, schema string, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := contracts.Validate(schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// statusFor сопоставляет ошибку use case'а с HTTP-статусом.
func statusFor(err error) int {
	var ve *contracts.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPropertyNotFound),
		errors.Is(err, domain.ErrAccommodationNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrRentalAgreementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidApplicationStatus), errors.Is(err, finance.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeError отвечает клиенту по ошибке. Детали 500-х уходят только в лог.
func writeError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	status := statusFor(err)

	var ve *contracts.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Warn("Request body failed validation", port.Fields{"schema": ve.Schema, "violations": len(ve.Fields)})
		RespondWithJSON(w, status, errorResponse{Message: "Validation failed", Errors: ve.Fields})
	case status == http.StatusInternalServerError:
		logger.Error("Request failed", err, nil)
		WriteJSONError(w, status, "Internal server error")
	default:
		WriteJSONError(w, status, err.Error())
	}
}

// writeBadBody - ответ на нечитаемое тело запроса.
func writeBadBody(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var ve *contracts.ValidationError
	if errors.As(err, &ve) {
		writeError(w, logger, err)
		return
	}
	logger.Warn("Invalid request body", port.Fields{"error": err.Error()})
	WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func parseString(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

// parseFloat возвращает nil для отсутствующего параметра и ошибку для нечислового.
func parseFloat(q url.Values, key string) (*float64, error) {
	s := parseString(q, key)
	if s == "" {
		return nil, nil
	}
	v, err := finance.ParseAmount(s)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be a number", key)
	}
	return &v, nil
}

func parseInt(q url.Values, key string) (*int, error) {
	s := parseString(q, key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("query parameter %s must be an integer", key)
	}
	return &v, nil
}

func parseBool(q url.Values, key string) bool {
	v, _ := strconv.ParseBool(parseString(q, key))
	return v
}
