package usecase

import (
	"context"
	"fmt"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreateRentalAgreementUseCase struct {
	store port.StudentStoragePort
}

func NewCreateRentalAgreementUseCase(store port.StudentStoragePort) *CreateRentalAgreementUseCase {
	return &CreateRentalAgreementUseCase{store: store}
}

func (uc *CreateRentalAgreementUseCase) Execute(ctx context.Context, in domain.NewRentalAgreement) (domain.RentalAgreement, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "CreateRentalAgreement",
		"accommodation_id": in.AccommodationID,
	})
	ucLogger.Info("Use case started", nil)

	if _, ok := uc.store.GetAccommodation(ctx, in.AccommodationID); !ok {
		ucLogger.Warn("Accommodation not found", nil)
		return domain.RentalAgreement{}, domain.ErrAccommodationNotFound
	}
	if _, ok := uc.store.GetUser(ctx, in.LandlordID); !ok {
		ucLogger.Warn("Landlord not found", nil)
		return domain.RentalAgreement{}, domain.ErrUserNotFound
	}

	agreement := uc.store.CreateRentalAgreement(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"agreement_id": agreement.ID})
	return agreement, nil
}

type GetRentalAgreementUseCase struct {
	store port.StudentStoragePort
}

func NewGetRentalAgreementUseCase(store port.StudentStoragePort) *GetRentalAgreementUseCase {
	return &GetRentalAgreementUseCase{store: store}
}

func (uc *GetRentalAgreementUseCase) Execute(ctx context.Context, accommodationID int) (domain.RentalAgreement, error) {
	agreement, ok := uc.store.GetRentalAgreementForAccommodation(ctx, accommodationID)
	if !ok {
		return domain.RentalAgreement{}, domain.ErrRentalAgreementNotFound
	}
	return agreement, nil
}

type RentSplitUseCase struct {
	store port.StudentStoragePort
}

func NewRentSplitUseCase(store port.StudentStoragePort) *RentSplitUseCase {
	return &RentSplitUseCase{store: store}
}

// Execute делит аренду жилья поровну на все комнаты; занятыми считаются несвободные.
func (uc *RentSplitUseCase) Execute(ctx context.Context, accommodationID int) (finance.RentSplit, error) {
	accommodation, ok := uc.store.GetAccommodation(ctx, accommodationID)
	if !ok {
		return finance.RentSplit{}, domain.ErrAccommodationNotFound
	}

	rent, err := finance.ParseAmount(accommodation.MonthlyRent)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Warn("Stored rent is not a number", port.Fields{
			"accommodation_id": accommodationID,
			"monthly_rent":     accommodation.MonthlyRent,
		})
		return finance.RentSplit{}, fmt.Errorf("accommodation %d: %w", accommodationID, err)
	}

	occupied := accommodation.TotalRooms - accommodation.AvailableRooms
	if occupied < 0 {
		occupied = 0
	}
	return finance.SplitRent(rent, accommodation.TotalRooms, occupied)
}
