// Package seed содержит демонстрационные данные для обоих вариантов маркетплейса.
package seed

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muzikology/Live2Share/internal/core/domain"
)

// DemoPassword - пароль всех демонстрационных пользователей.
const DemoPassword = "password123"

// hashDemoPassword использует минимальную стоимость bcrypt: это данные для демо,
// а старт приложения не должен ждать секунды на хэширование.
func hashDemoPassword() (string, error) {
	hashed, err := domain.HashPassword(DemoPassword, bcrypt.MinCost)
	if err != nil {
		return "", fmt.Errorf("seed: hash demo password: %w", err)
	}
	return hashed, nil
}

func ptr[T any](v T) *T { return &v }

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
