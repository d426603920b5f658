package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/seed"
)

func newSeededStudent(t *testing.T) *StudentStore {
	t.Helper()
	s, err := seed.Student()
	require.NoError(t, err)
	return NewStudentStore(s, WithClock(steppingClock()))
}

func accommodationIDs(rows []domain.Accommodation) []int {
	ids := make([]int, 0, len(rows))
	for _, a := range rows {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestStudentStore_CreateUserDefaults(t *testing.T) {
	ctx := context.Background()
	store := NewStudentStore(nil)

	u := store.CreateUser(ctx, domain.NewStudentUser{
		NewUser:     domain.NewUser{Username: "zanele", Password: "hash", Email: "z@uj.ac.za", FirstName: "Zanele", LastName: "Zulu"},
		University:  "University of Johannesburg",
		StudyField:  "Law",
		YearOfStudy: 1,
	})

	assert.Equal(t, 1, u.ID)
	assert.Nil(t, u.Phone)
	assert.Nil(t, u.Bio)
	assert.Nil(t, u.ProfileImage)
	assert.Equal(t, []string{}, u.Lifestyle)
	assert.Equal(t, []string{}, u.Preferences)
	assert.False(t, u.IsVerified)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestStudentStore_SeededData(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	thabo, ok := store.GetUser(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "thabo.mthembu", thabo.Username)
	assert.True(t, thabo.CheckPassword(seed.DemoPassword))

	acc, ok := store.GetAccommodation(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Student House near Wits University", acc.Title)
	assert.Equal(t, 2, acc.LandlordID)
	assert.True(t, acc.IsActive)
}

func TestStudentStore_GetAccommodationsFilters(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	tests := []struct {
		name    string
		filters domain.AccommodationFilters
		want    []int
	}{
		{name: "no filters, newest first", want: []int{4, 3, 2, 1}},
		{name: "city", filters: domain.AccommodationFilters{City: "Cape Town"}, want: []int{3}},
		{name: "city substring any case", filters: domain.AccommodationFilters{City: "johannes"}, want: []int{2, 1}},
		{name: "province exact", filters: domain.AccommodationFilters{Province: "gauteng"}, want: []int{2, 1}},
		{name: "area", filters: domain.AccommodationFilters{Area: "rose"}, want: []int{2}},
		{name: "type", filters: domain.AccommodationFilters{AccommodationType: "House"}, want: []int{1}},
		{name: "rent range inclusive", filters: domain.AccommodationFilters{MinRent: ptr(12000.0), MaxRent: ptr(16000.0)}, want: []int{3, 1}},
		{name: "max rent", filters: domain.AccommodationFilters{MaxRent: ptr(2500.0)}, want: []int{4}},
		{name: "available rooms minimum", filters: domain.AccommodationFilters{AvailableRooms: ptr(3)}, want: []int{3}},
		{name: "university", filters: domain.AccommodationFilters{University: "cape town"}, want: []int{3}},
		{name: "university shared by two", filters: domain.AccommodationFilters{University: "Witwatersrand"}, want: []int{2, 1}},
		{name: "nothing matches", filters: domain.AccommodationFilters{City: "Bloemfontein"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, accommodationIDs(store.GetAccommodations(ctx, tt.filters)))
		})
	}
}

func TestStudentStore_UpdateAndDeleteAccommodation(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)
	before, _ := store.GetAccommodation(ctx, 4)

	updated, ok := store.UpdateAccommodation(ctx, 4, domain.AccommodationPatch{
		AvailableRooms: ptr(0),
		HouseRules:     &[]string{"No smoking"},
	})
	require.True(t, ok)
	assert.Equal(t, 0, updated.AvailableRooms)
	assert.Equal(t, []string{"No smoking"}, updated.HouseRules)
	assert.Equal(t, before.Amenities, updated.Amenities)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))

	_, ok = store.UpdateAccommodation(ctx, 99, domain.AccommodationPatch{})
	assert.False(t, ok)

	assert.True(t, store.DeleteAccommodation(ctx, 4))
	assert.False(t, store.DeleteAccommodation(ctx, 4))
	assert.Equal(t, []int{3}, accommodationIDs(store.GetAccommodationsByLandlord(ctx, 4)))
}

func TestStudentStore_AccommodationsByLandlordSkipsInactive(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	_, ok := store.UpdateAccommodation(ctx, 1, domain.AccommodationPatch{IsActive: ptr(false)})
	require.True(t, ok)

	assert.Equal(t, []int{2}, accommodationIDs(store.GetAccommodationsByLandlord(ctx, 2)))
	assert.Equal(t, []int{4, 3, 2}, accommodationIDs(store.GetAccommodations(ctx, domain.AccommodationFilters{})))
}

func TestStudentStore_Roommates(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	current := store.GetCurrentRoommatesForAccommodation(ctx, 1)
	require.Len(t, current, 1)
	assert.Equal(t, "thabo.mthembu", current[0].User.Username)
	assert.Equal(t, "4000", current[0].MonthlyShare)

	past := store.CreateRoommate(ctx, domain.NewRoommate{
		AccommodationID:   1,
		UserID:            3,
		MoveInDate:        baseTime,
		MonthlyShare:      "4000",
		IsCurrentResident: ptr(false),
	})
	assert.False(t, past.IsCurrentResident)
	assert.Nil(t, past.MoveOutDate)

	defaulted := store.CreateRoommate(ctx, domain.NewRoommate{AccommodationID: 3, UserID: 1, MoveInDate: baseTime, MonthlyShare: "3000"})
	assert.True(t, defaulted.IsCurrentResident)

	assert.Len(t, store.GetRoommatesForAccommodation(ctx, 1), 2)
	assert.Len(t, store.GetCurrentRoommatesForAccommodation(ctx, 1), 1)
}

func TestStudentStore_RoommatesDropMissingUsers(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	store.CreateRoommate(ctx, domain.NewRoommate{AccommodationID: 3, UserID: 77, MoveInDate: baseTime, MonthlyShare: "1"})
	assert.Empty(t, store.GetRoommatesForAccommodation(ctx, 3))
}

func TestStudentStore_Applications(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	app := store.CreateApplication(ctx, domain.NewApplication{
		AccommodationID: 3,
		ApplicantID:     1,
		Message:         "I'm a quiet CS student, can I view the room?",
	})
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Nil(t, app.BudgetRange)

	forAcc := store.GetApplicationsForAccommodation(ctx, 3)
	require.Len(t, forAcc, 1)
	assert.Equal(t, "thabo.mthembu", forAcc[0].Applicant.Username)

	byUser := store.GetApplicationsByUser(ctx, 1)
	require.Len(t, byUser, 1)
	assert.Equal(t, "UCT Student Commune in Observatory", byUser[0].Accommodation.Title)

	approved, ok := store.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationApproved)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationApproved, approved.Status)

	// переход назад не запрещен
	back, ok := store.UpdateApplicationStatus(ctx, app.ID, domain.ApplicationPending)
	require.True(t, ok)
	assert.Equal(t, domain.ApplicationPending, back.Status)

	_, ok = store.UpdateApplicationStatus(ctx, 999, domain.ApplicationRejected)
	assert.False(t, ok)

	explicit := store.CreateApplication(ctx, domain.NewApplication{AccommodationID: 3, ApplicantID: 3, Message: "hi", Status: domain.ApplicationRejected})
	assert.Equal(t, domain.ApplicationRejected, explicit.Status)
}

func TestStudentStore_ApplicationsDropOrphans(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	store.CreateApplication(ctx, domain.NewApplication{AccommodationID: 2, ApplicantID: 1, Message: "a"})
	store.CreateApplication(ctx, domain.NewApplication{AccommodationID: 3, ApplicantID: 1, Message: "b"})
	store.CreateApplication(ctx, domain.NewApplication{AccommodationID: 3, ApplicantID: 55, Message: "ghost"})

	require.True(t, store.DeleteAccommodation(ctx, 2))

	byUser := store.GetApplicationsByUser(ctx, 1)
	require.Len(t, byUser, 1)
	assert.Equal(t, 3, byUser[0].AccommodationID)

	assert.Len(t, store.GetApplicationsForAccommodation(ctx, 3), 1)

	raw, ok := store.GetApplication(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, 2, raw.AccommodationID)
}

func TestStudentStore_RentalAgreements(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	_, ok := store.GetRentalAgreementForAccommodation(ctx, 1)
	assert.False(t, ok)

	first := store.CreateRentalAgreement(ctx, domain.NewRentalAgreement{
		AccommodationID: 1,
		LandlordID:      2,
		LeaseStartDate:  baseTime,
		LeaseEndDate:    baseTime.AddDate(1, 0, 0),
		MonthlyRent:     "16000",
		PaymentDueDay:   1,
	})
	store.CreateRentalAgreement(ctx, domain.NewRentalAgreement{AccommodationID: 1, LandlordID: 2, MonthlyRent: "17000", PaymentDueDay: 5})

	assert.Nil(t, first.Deposit)
	assert.Equal(t, []string{}, first.Utilities)

	got, ok := store.GetRentalAgreementForAccommodation(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "16000", got.MonthlyRent)
}

func TestStudentStore_SearchSuggestions(t *testing.T) {
	ctx := context.Background()
	store := newSeededStudent(t)

	assert.Equal(t,
		[]string{"Cape Town", "Western Cape", "University of Cape Town", "Observatory, Cape Town"},
		store.SearchSuggestions(ctx, "cape"),
	)
	assert.Equal(t, []string{}, store.SearchSuggestions(ctx, ""))
	assert.Len(t, store.SearchSuggestions(ctx, "a"), maxSuggestions)
}
