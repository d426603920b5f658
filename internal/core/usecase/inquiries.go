package usecase

import (
	"context"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreateInquiryUseCase struct {
	store    port.RealtyStoragePort
	notifier port.NotifierPort
}

func NewCreateInquiryUseCase(store port.RealtyStoragePort, notifier port.NotifierPort) *CreateInquiryUseCase {
	return &CreateInquiryUseCase{store: store, notifier: notifierOrNoop(notifier)}
}

// Execute сохраняет обращение и уведомляет владельца объявления.
func (uc *CreateInquiryUseCase) Execute(ctx context.Context, in domain.NewInquiry) (domain.Inquiry, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "CreateInquiry",
		"property_id": in.PropertyID,
	})
	ucLogger.Info("Use case started", nil)

	property, ok := uc.store.GetProperty(ctx, in.PropertyID)
	if !ok {
		ucLogger.Warn("Property not found", nil)
		return domain.Inquiry{}, domain.ErrPropertyNotFound
	}

	inquiry := uc.store.CreateInquiry(ctx, in)
	uc.notifier.Notify(ctx, newEvent(domain.EventInquiryCreated, domain.VariantRealty, property.OwnerID, inquiry))

	ucLogger.Info("Use case finished successfully", port.Fields{"inquiry_id": inquiry.ID})
	return inquiry, nil
}

type GetPropertyInquiriesUseCase struct {
	store port.RealtyStoragePort
}

func NewGetPropertyInquiriesUseCase(store port.RealtyStoragePort) *GetPropertyInquiriesUseCase {
	return &GetPropertyInquiriesUseCase{store: store}
}

// Execute не требует существования объявления: обращения переживают его удаление.
func (uc *GetPropertyInquiriesUseCase) Execute(ctx context.Context, propertyID int) ([]domain.Inquiry, error) {
	return uc.store.GetInquiriesForProperty(ctx, propertyID), nil
}
