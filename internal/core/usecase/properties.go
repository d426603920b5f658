package usecase

import (
	"context"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreatePropertyUseCase struct {
	store port.RealtyStoragePort
}

func NewCreatePropertyUseCase(store port.RealtyStoragePort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{store: store}
}

// Execute проверяет, что владелец существует, и сохраняет объявление.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, in domain.NewProperty) (domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": in.OwnerID,
	})
	ucLogger.Info("Use case started", nil)

	if _, ok := uc.store.GetUser(ctx, in.OwnerID); !ok {
		ucLogger.Warn("Owner not found", nil)
		return domain.Property{}, domain.ErrUserNotFound
	}

	property := uc.store.CreateProperty(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": property.ID})
	return property, nil
}

type GetPropertyUseCase struct {
	store port.RealtyStoragePort
}

func NewGetPropertyUseCase(store port.RealtyStoragePort) *GetPropertyUseCase {
	return &GetPropertyUseCase{store: store}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id int) (domain.Property, error) {
	property, ok := uc.store.GetProperty(ctx, id)
	if !ok {
		return domain.Property{}, domain.ErrPropertyNotFound
	}
	return property, nil
}

type ListPropertiesUseCase struct {
	store port.RealtyStoragePort
}

func NewListPropertiesUseCase(store port.RealtyStoragePort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{store: store}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ListProperties"})

	properties := uc.store.GetProperties(ctx, filters)
	ucLogger.Debug("Properties fetched", port.Fields{"count": len(properties)})
	return properties, nil
}

type UpdatePropertyUseCase struct {
	store port.RealtyStoragePort
}

func NewUpdatePropertyUseCase(store port.RealtyStoragePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{store: store}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id int, patch domain.PropertyPatch) (domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if patch.OwnerID != nil {
		if _, ok := uc.store.GetUser(ctx, *patch.OwnerID); !ok {
			ucLogger.Warn("New owner not found", port.Fields{"owner_id": *patch.OwnerID})
			return domain.Property{}, domain.ErrUserNotFound
		}
	}

	property, ok := uc.store.UpdateProperty(ctx, id, patch)
	if !ok {
		ucLogger.Warn("Property not found", nil)
		return domain.Property{}, domain.ErrPropertyNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}

type DeletePropertyUseCase struct {
	store port.RealtyStoragePort
}

func NewDeletePropertyUseCase(store port.RealtyStoragePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{store: store}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id int) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	if !uc.store.DeleteProperty(ctx, id) {
		ucLogger.Warn("Property not found", nil)
		return domain.ErrPropertyNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type GetPropertiesByOwnerUseCase struct {
	store port.RealtyStoragePort
}

func NewGetPropertiesByOwnerUseCase(store port.RealtyStoragePort) *GetPropertiesByOwnerUseCase {
	return &GetPropertiesByOwnerUseCase{store: store}
}

func (uc *GetPropertiesByOwnerUseCase) Execute(ctx context.Context, ownerID int) ([]domain.Property, error) {
	if _, ok := uc.store.GetUser(ctx, ownerID); !ok {
		return nil, domain.ErrUserNotFound
	}
	return uc.store.GetPropertiesByOwner(ctx, ownerID), nil
}
