package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muzikology/Live2Share/internal/adapters/memory"
	"github.com/muzikology/Live2Share/internal/adapters/notifier"
	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/usecase"
	"github.com/muzikology/Live2Share/internal/seed"
)

type testEnv struct {
	router   http.Handler
	notifier *notifier.SSENotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := contextkeys.NoopLogger()

	realtySeed, err := seed.Realty()
	require.NoError(t, err)
	studentSeed, err := seed.Student()
	require.NoError(t, err)

	realtyStore := memory.NewRealtyStore(realtySeed)
	studentStore := memory.NewStudentStore(studentSeed)

	sse := notifier.NewSSENotifier(logger)
	t.Cleanup(sse.Close)

	realty := NewRealtyHandler(RealtyUseCases{
		RegisterUser:      usecase.NewRegisterUserUseCase(realtyStore, bcrypt.MinCost),
		GetUser:           usecase.NewGetUserUseCase(realtyStore),
		CreateProperty:    usecase.NewCreatePropertyUseCase(realtyStore),
		GetProperty:       usecase.NewGetPropertyUseCase(realtyStore),
		ListProperties:    usecase.NewListPropertiesUseCase(realtyStore),
		UpdateProperty:    usecase.NewUpdatePropertyUseCase(realtyStore),
		DeleteProperty:    usecase.NewDeletePropertyUseCase(realtyStore),
		PropertiesByOwner: usecase.NewGetPropertiesByOwnerUseCase(realtyStore),
		CreateInquiry:     usecase.NewCreateInquiryUseCase(realtyStore, sse),
		PropertyInquiries: usecase.NewGetPropertyInquiriesUseCase(realtyStore),
		PropertyReport:    usecase.NewPropertyReportUseCase(realtyStore),
		Suggestions:       usecase.NewSearchSuggestionsUseCase(realtyStore),
	})
	student := NewStudentHandler(StudentUseCases{
		RegisterStudent:         usecase.NewRegisterStudentUseCase(studentStore, bcrypt.MinCost),
		GetStudent:              usecase.NewGetStudentUseCase(studentStore),
		CreateAccommodation:     usecase.NewCreateAccommodationUseCase(studentStore),
		GetAccommodation:        usecase.NewGetAccommodationUseCase(studentStore),
		ListAccommodations:      usecase.NewListAccommodationsUseCase(studentStore),
		UpdateAccommodation:     usecase.NewUpdateAccommodationUseCase(studentStore),
		DeleteAccommodation:     usecase.NewDeleteAccommodationUseCase(studentStore),
		LandlordAccommodations:  usecase.NewGetLandlordAccommodationsUseCase(studentStore),
		CreateRoommate:          usecase.NewCreateRoommateUseCase(studentStore),
		GetRoommates:            usecase.NewGetRoommatesUseCase(studentStore),
		CreateApplication:       usecase.NewCreateApplicationUseCase(studentStore, sse),
		AccommodationApps:       usecase.NewGetAccommodationApplicationsUseCase(studentStore),
		UserApplications:        usecase.NewGetUserApplicationsUseCase(studentStore),
		UpdateApplicationStatus: usecase.NewUpdateApplicationStatusUseCase(studentStore, sse),
		CreateRentalAgreement:   usecase.NewCreateRentalAgreementUseCase(studentStore),
		GetRentalAgreement:      usecase.NewGetRentalAgreementUseCase(studentStore),
		RentSplit:               usecase.NewRentSplitUseCase(studentStore),
		Suggestions:             usecase.NewSearchSuggestionsUseCase(studentStore),
	})
	events := NewEventsHandler(sse, 50*time.Millisecond)

	router, err := NewRouter(ServerConfig{ServiceName: "live2share-test", AllowedOrigins: []string{"http://localhost:5173"}},
		realty, student, events, logger)
	require.NoError(t, err)

	return &testEnv{router: router, notifier: sse}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
