package usecases_port

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
)

type RegisterStudentUseCasePort interface {
	Execute(ctx context.Context, in domain.NewStudentUser) (domain.StudentUser, error)
}

type GetStudentUseCasePort interface {
	Execute(ctx context.Context, id int) (domain.StudentUser, error)
}

type CreateAccommodationUseCasePort interface {
	Execute(ctx context.Context, in domain.NewAccommodation) (domain.Accommodation, error)
}

type GetAccommodationUseCasePort interface {
	Execute(ctx context.Context, id int) (domain.Accommodation, error)
}

type ListAccommodationsUseCasePort interface {
	Execute(ctx context.Context, filters domain.AccommodationFilters) ([]domain.Accommodation, error)
}

type UpdateAccommodationUseCasePort interface {
	Execute(ctx context.Context, id int, patch domain.AccommodationPatch) (domain.Accommodation, error)
}

type DeleteAccommodationUseCasePort interface {
	Execute(ctx context.Context, id int) error
}

type GetLandlordAccommodationsUseCasePort interface {
	Execute(ctx context.Context, landlordID int) ([]domain.Accommodation, error)
}

type CreateRoommateUseCasePort interface {
	Execute(ctx context.Context, in domain.NewRoommate) (domain.Roommate, error)
}

// GetRoommatesUseCasePort: includePast=false - только текущие жильцы.
type GetRoommatesUseCasePort interface {
	Execute(ctx context.Context, accommodationID int, includePast bool) ([]domain.RoommateWithUser, error)
}

type CreateApplicationUseCasePort interface {
	Execute(ctx context.Context, in domain.NewApplication) (domain.Application, error)
}

type GetAccommodationApplicationsUseCasePort interface {
	Execute(ctx context.Context, accommodationID int) ([]domain.ApplicationWithApplicant, error)
}

type GetUserApplicationsUseCasePort interface {
	Execute(ctx context.Context, userID int) ([]domain.ApplicationWithAccommodation, error)
}

type UpdateApplicationStatusUseCasePort interface {
	Execute(ctx context.Context, id int, status domain.ApplicationStatus) (domain.Application, error)
}

type CreateRentalAgreementUseCasePort interface {
	Execute(ctx context.Context, in domain.NewRentalAgreement) (domain.RentalAgreement, error)
}

type GetRentalAgreementUseCasePort interface {
	Execute(ctx context.Context, accommodationID int) (domain.RentalAgreement, error)
}

type RentSplitUseCasePort interface {
	Execute(ctx context.Context, accommodationID int) (finance.RentSplit, error)
}
