package usecase

import (
	"context"
	"fmt"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type RegisterStudentUseCase struct {
	store      port.StudentStoragePort
	bcryptCost int
}

func NewRegisterStudentUseCase(store port.StudentStoragePort, bcryptCost int) *RegisterStudentUseCase {
	return &RegisterStudentUseCase{store: store, bcryptCost: bcryptCost}
}

func (uc *RegisterStudentUseCase) Execute(ctx context.Context, in domain.NewStudentUser) (domain.StudentUser, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "RegisterStudent",
		"username": in.Username,
	})
	ucLogger.Info("Use case started", nil)

	if err := checkUnique(ctx, studentUsers{uc.store}, in.Username, in.Email); err != nil {
		ucLogger.Warn("Registration rejected", port.Fields{"reason": err.Error()})
		return domain.StudentUser{}, err
	}

	hashed, err := domain.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		ucLogger.Error("Failed to hash password", err, nil)
		return domain.StudentUser{}, fmt.Errorf("register student: %w", err)
	}
	in.Password = hashed

	user := uc.store.CreateUser(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}

type GetStudentUseCase struct {
	store port.StudentStoragePort
}

func NewGetStudentUseCase(store port.StudentStoragePort) *GetStudentUseCase {
	return &GetStudentUseCase{store: store}
}

func (uc *GetStudentUseCase) Execute(ctx context.Context, id int) (domain.StudentUser, error) {
	user, ok := uc.store.GetUser(ctx, id)
	if !ok {
		return domain.StudentUser{}, domain.ErrUserNotFound
	}
	return user, nil
}
