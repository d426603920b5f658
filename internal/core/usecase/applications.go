package usecase

import (
	"context"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type CreateApplicationUseCase struct {
	store    port.StudentStoragePort
	notifier port.NotifierPort
}

func NewCreateApplicationUseCase(store port.StudentStoragePort, notifier port.NotifierPort) *CreateApplicationUseCase {
	return &CreateApplicationUseCase{store: store, notifier: notifierOrNoop(notifier)}
}

// Execute сохраняет заявку и уведомляет арендодателя.
func (uc *CreateApplicationUseCase) Execute(ctx context.Context, in domain.NewApplication) (domain.Application, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":         "CreateApplication",
		"accommodation_id": in.AccommodationID,
		"applicant_id":     in.ApplicantID,
	})
	ucLogger.Info("Use case started", nil)

	if in.Status != "" && !in.Status.Valid() {
		return domain.Application{}, domain.ErrInvalidApplicationStatus
	}

	accommodation, ok := uc.store.GetAccommodation(ctx, in.AccommodationID)
	if !ok {
		ucLogger.Warn("Accommodation not found", nil)
		return domain.Application{}, domain.ErrAccommodationNotFound
	}
	if _, ok := uc.store.GetUser(ctx, in.ApplicantID); !ok {
		ucLogger.Warn("Applicant not found", nil)
		return domain.Application{}, domain.ErrUserNotFound
	}

	application := uc.store.CreateApplication(ctx, in)
	uc.notifier.Notify(ctx, newEvent(domain.EventApplicationCreated, domain.VariantStudent, accommodation.LandlordID, application))

	ucLogger.Info("Use case finished successfully", port.Fields{"application_id": application.ID})
	return application, nil
}

type GetAccommodationApplicationsUseCase struct {
	store port.StudentStoragePort
}

func NewGetAccommodationApplicationsUseCase(store port.StudentStoragePort) *GetAccommodationApplicationsUseCase {
	return &GetAccommodationApplicationsUseCase{store: store}
}

func (uc *GetAccommodationApplicationsUseCase) Execute(ctx context.Context, accommodationID int) ([]domain.ApplicationWithApplicant, error) {
	return uc.store.GetApplicationsForAccommodation(ctx, accommodationID), nil
}

type GetUserApplicationsUseCase struct {
	store port.StudentStoragePort
}

func NewGetUserApplicationsUseCase(store port.StudentStoragePort) *GetUserApplicationsUseCase {
	return &GetUserApplicationsUseCase{store: store}
}

func (uc *GetUserApplicationsUseCase) Execute(ctx context.Context, userID int) ([]domain.ApplicationWithAccommodation, error) {
	if _, ok := uc.store.GetUser(ctx, userID); !ok {
		return nil, domain.ErrUserNotFound
	}
	return uc.store.GetApplicationsByUser(ctx, userID), nil
}

type UpdateApplicationStatusUseCase struct {
	store    port.StudentStoragePort
	notifier port.NotifierPort
}

func NewUpdateApplicationStatusUseCase(store port.StudentStoragePort, notifier port.NotifierPort) *UpdateApplicationStatusUseCase {
	return &UpdateApplicationStatusUseCase{store: store, notifier: notifierOrNoop(notifier)}
}

// Execute меняет статус заявки. Любой известный статус допустим из любого другого.
func (uc *UpdateApplicationStatusUseCase) Execute(ctx context.Context, id int, status domain.ApplicationStatus) (domain.Application, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":       "UpdateApplicationStatus",
		"application_id": id,
		"status":         status,
	})
	ucLogger.Info("Use case started", nil)

	if !status.Valid() {
		return domain.Application{}, domain.ErrInvalidApplicationStatus
	}

	application, ok := uc.store.UpdateApplicationStatus(ctx, id, status)
	if !ok {
		ucLogger.Warn("Application not found", nil)
		return domain.Application{}, domain.ErrApplicationNotFound
	}

	uc.notifier.Notify(ctx, newEvent(domain.EventApplicationStatusChanged, domain.VariantStudent, application.ApplicantID, application))
	ucLogger.Info("Use case finished successfully", nil)
	return application, nil
}
