package port

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
)

// RealtyStoragePort - хранилище варианта "недвижимость".
// Методы Get* возвращают (значение, найдено); отсутствие записи ошибкой не считается.
type RealtyStoragePort interface {
	CreateUser(ctx context.Context, user domain.NewUser) domain.User
	GetUser(ctx context.Context, id int) (domain.User, bool)
	GetUserByUsername(ctx context.Context, username string) (domain.User, bool)
	GetUserByEmail(ctx context.Context, email string) (domain.User, bool)

	CreateProperty(ctx context.Context, property domain.NewProperty) domain.Property
	GetProperty(ctx context.Context, id int) (domain.Property, bool)
	GetProperties(ctx context.Context, filters domain.PropertyFilters) []domain.Property
	UpdateProperty(ctx context.Context, id int, patch domain.PropertyPatch) (domain.Property, bool)
	DeleteProperty(ctx context.Context, id int) bool
	GetPropertiesByOwner(ctx context.Context, ownerID int) []domain.Property

	CreateInquiry(ctx context.Context, inquiry domain.NewInquiry) domain.Inquiry
	GetInquiry(ctx context.Context, id int) (domain.Inquiry, bool)
	GetInquiriesForProperty(ctx context.Context, propertyID int) []domain.Inquiry

	SearchSuggestions(ctx context.Context, query string) []string
}
