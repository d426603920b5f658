package port

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
)

// StudentStoragePort - хранилище студенческого варианта (жилье с подселением).
type StudentStoragePort interface {
	CreateUser(ctx context.Context, user domain.NewStudentUser) domain.StudentUser
	GetUser(ctx context.Context, id int) (domain.StudentUser, bool)
	GetUserByUsername(ctx context.Context, username string) (domain.StudentUser, bool)
	GetUserByEmail(ctx context.Context, email string) (domain.StudentUser, bool)

	CreateAccommodation(ctx context.Context, accommodation domain.NewAccommodation) domain.Accommodation
	GetAccommodation(ctx context.Context, id int) (domain.Accommodation, bool)
	GetAccommodations(ctx context.Context, filters domain.AccommodationFilters) []domain.Accommodation
	UpdateAccommodation(ctx context.Context, id int, patch domain.AccommodationPatch) (domain.Accommodation, bool)
	DeleteAccommodation(ctx context.Context, id int) bool
	GetAccommodationsByLandlord(ctx context.Context, landlordID int) []domain.Accommodation

	CreateRoommate(ctx context.Context, roommate domain.NewRoommate) domain.Roommate
	GetRoommatesForAccommodation(ctx context.Context, accommodationID int) []domain.RoommateWithUser
	GetCurrentRoommatesForAccommodation(ctx context.Context, accommodationID int) []domain.RoommateWithUser

	CreateApplication(ctx context.Context, application domain.NewApplication) domain.Application
	GetApplication(ctx context.Context, id int) (domain.Application, bool)
	GetApplicationsForAccommodation(ctx context.Context, accommodationID int) []domain.ApplicationWithApplicant
	GetApplicationsByUser(ctx context.Context, userID int) []domain.ApplicationWithAccommodation
	UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) (domain.Application, bool)

	CreateRentalAgreement(ctx context.Context, agreement domain.NewRentalAgreement) domain.RentalAgreement
	GetRentalAgreementForAccommodation(ctx context.Context, accommodationID int) (domain.RentalAgreement, bool)

	SearchSuggestions(ctx context.Context, query string) []string
}
