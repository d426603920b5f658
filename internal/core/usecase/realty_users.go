package usecase

import (
	"context"
	"fmt"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type RegisterUserUseCase struct {
	store      port.RealtyStoragePort
	bcryptCost int
}

// NewRegisterUserUseCase: bcryptCost <= 0 означает bcrypt.DefaultCost.
func NewRegisterUserUseCase(store port.RealtyStoragePort, bcryptCost int) *RegisterUserUseCase {
	return &RegisterUserUseCase{store: store, bcryptCost: bcryptCost}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, in domain.NewUser) (domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "RegisterUser",
		"username": in.Username,
	})
	ucLogger.Info("Use case started", nil)

	if err := checkUnique(ctx, realtyUsers{uc.store}, in.Username, in.Email); err != nil {
		ucLogger.Warn("Registration rejected", port.Fields{"reason": err.Error()})
		return domain.User{}, err
	}

	hashed, err := domain.HashPassword(in.Password, uc.bcryptCost)
	if err != nil {
		ucLogger.Error("Failed to hash password", err, nil)
		return domain.User{}, fmt.Errorf("register user: %w", err)
	}
	in.Password = hashed

	user := uc.store.CreateUser(ctx, in)
	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}

type GetUserUseCase struct {
	store port.RealtyStoragePort
}

func NewGetUserUseCase(store port.RealtyStoragePort) *GetUserUseCase {
	return &GetUserUseCase{store: store}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id int) (domain.User, error) {
	user, ok := uc.store.GetUser(ctx, id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}
