package usecases_port

import (
	"context"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, in domain.NewUser) (domain.User, error)
}

type GetUserUseCasePort interface {
	Execute(ctx context.Context, id int) (domain.User, error)
}

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, in domain.NewProperty) (domain.Property, error)
}

type GetPropertyUseCasePort interface {
	Execute(ctx context.Context, id int) (domain.Property, error)
}

type ListPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id int, patch domain.PropertyPatch) (domain.Property, error)
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id int) error
}

type GetPropertiesByOwnerUseCasePort interface {
	Execute(ctx context.Context, ownerID int) ([]domain.Property, error)
}

type CreateInquiryUseCasePort interface {
	Execute(ctx context.Context, in domain.NewInquiry) (domain.Inquiry, error)
}

type GetPropertyInquiriesUseCasePort interface {
	Execute(ctx context.Context, propertyID int) ([]domain.Inquiry, error)
}

type PropertyReportUseCasePort interface {
	Execute(ctx context.Context, propertyID int, in finance.PropertyReportInput) (finance.PropertyReport, error)
}
