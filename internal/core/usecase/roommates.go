package usecase

import (
	"context"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreateRoommateUseCase struct {
	store port.StudentStoragePort
}

func NewCreateRoommateUseCase(store port.StudentStoragePort) *CreateRoommateUseCase {
	return &CreateRoommateUseCase{store: store}
}

func (uc *CreateRoommateUseCase) Execute(ctx context.Context, in domain.NewRoommate) (domain.Roommate, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "CreateRoommate",
		"accommodation_id": in.AccommodationID,
		"user_id":          in.UserID,
	})
	ucLogger.Info("Use case started", nil)

	if _, ok := uc.store.GetAccommodation(ctx, in.AccommodationID); !ok {
		ucLogger.Warn("Accommodation not found", nil)
		return domain.Roommate{}, domain.ErrAccommodationNotFound
	}
	if _, ok := uc.store.GetUser(ctx, in.UserID); !ok {
		ucLogger.Warn("User not found", nil)
		return domain.Roommate{}, domain.ErrUserNotFound
	}

	roommate := uc.store.CreateRoommate(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"roommate_id": roommate.ID})
	return roommate, nil
}

type GetRoommatesUseCase struct {
	store port.StudentStoragePort
}

func NewGetRoommatesUseCase(store port.StudentStoragePort) *GetRoommatesUseCase {
	return &GetRoommatesUseCase{store: store}
}

func (uc *GetRoommatesUseCase) Execute(ctx context.Context, accommodationID int, includePast bool) ([]domain.RoommateWithUser, error) {
	if includePast {
		return uc.store.GetRoommatesForAccommodation(ctx, accommodationID), nil
	}
	return uc.store.GetCurrentRoommatesForAccommodation(ctx, accommodationID), nil
}
