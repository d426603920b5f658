package usecase

import (
	"context"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreateAccommodationUseCase struct {
	store port.StudentStoragePort
}

func NewCreateAccommodationUseCase(store port.StudentStoragePort) *CreateAccommodationUseCase {
	return &CreateAccommodationUseCase{store: store}
}

func (uc *CreateAccommodationUseCase) Execute(ctx context.Context, in domain.NewAccommodation) (domain.Accommodation, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreateAccommodation",
		"landlord_id": in.LandlordID,
	})
	ucLogger.Info("Use case started", nil)

	if _, ok := uc.store.GetUser(ctx, in.LandlordID); !ok {
		ucLogger.Warn("Landlord not found", nil)
		return domain.Accommodation{}, domain.ErrUserNotFound
	}

	accommodation := uc.store.CreateAccommodation(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"accommodation_id": accommodation.ID})
	return accommodation, nil
}

type GetAccommodationUseCase struct {
	store port.StudentStoragePort
}

func NewGetAccommodationUseCase(store port.StudentStoragePort) *GetAccommodationUseCase {
	return &GetAccommodationUseCase{store: store}
}

func (uc *GetAccommodationUseCase) Execute(ctx context.Context, id int) (domain.Accommodation, error) {
	accommodation, ok := uc.store.GetAccommodation(ctx, id)
	if !ok {
		return domain.Accommodation{}, domain.ErrAccommodationNotFound
	}
	return accommodation, nil
}

type ListAccommodationsUseCase struct {
	store port.StudentStoragePort
}

func NewListAccommodationsUseCase(store port.StudentStoragePort) *ListAccommodationsUseCase {
	return &ListAccommodationsUseCase{store: store}
}

func (uc *ListAccommodationsUseCase) Execute(ctx context.Context, filters domain.AccommodationFilters) ([]domain.Accommodation, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ListAccommodations"})

	accommodations := uc.store.GetAccommodations(ctx, filters)
	ucLogger.Debug("Accommodations fetched", port.Fields{"count": len(accommodations)})
	return accommodations, nil
}

type UpdateAccommodationUseCase struct {
	store port.StudentStoragePort
}

func NewUpdateAccommodationUseCase(store port.StudentStoragePort) *UpdateAccommodationUseCase {
	return &UpdateAccommodationUseCase{store: store}
}

func (uc *UpdateAccommodationUseCase) Execute(ctx context.Context, id int, patch domain.AccommodationPatch) (domain.Accommodation, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "UpdateAccommodation",
		"accommodation_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if patch.LandlordID != nil {
		if _, ok := uc.store.GetUser(ctx, *patch.LandlordID); !ok {
			ucLogger.Warn("New landlord not found", port.Fields{"landlord_id": *patch.LandlordID})
			return domain.Accommodation{}, domain.ErrUserNotFound
		}
	}

	accommodation, ok := uc.store.UpdateAccommodation(ctx, id, patch)
	if !ok {
		ucLogger.Warn("Accommodation not found", nil)
		return domain.Accommodation{}, domain.ErrAccommodationNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return accommodation, nil
}

type DeleteAccommodationUseCase struct {
	store port.StudentStoragePort
}

func NewDeleteAccommodationUseCase(store port.StudentStoragePort) *DeleteAccommodationUseCase {
	return &DeleteAccommodationUseCase{store: store}
}

func (uc *DeleteAccommodationUseCase) Execute(ctx context.Context, id int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "DeleteAccommodation",
		"accommodation_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if !uc.store.DeleteAccommodation(ctx, id) {
		ucLogger.Warn("Accommodation not found", nil)
		return domain.ErrAccommodationNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type GetLandlordAccommodationsUseCase struct {
	store port.StudentStoragePort
}

func NewGetLandlordAccommodationsUseCase(store port.StudentStoragePort) *GetLandlordAccommodationsUseCase {
	return &GetLandlordAccommodationsUseCase{store: store}
}

func (uc *GetLandlordAccommodationsUseCase) Execute(ctx context.Context, landlordID int) ([]domain.Accommodation, error) {
	if _, ok := uc.store.GetUser(ctx, landlordID); !ok {
		return nil, domain.ErrUserNotFound
	}
	return uc.store.GetAccommodationsByLandlord(ctx, landlordID), nil
}
