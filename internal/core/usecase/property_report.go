package usecase

import (
	"context"
	"fmt"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/finance"
	"github.com/muzikology/Live2Share/internal/core/port"
)

type PropertyReportUseCase struct {
	store port.RealtyStoragePort
}

func NewPropertyReportUseCase(store port.RealtyStoragePort) *PropertyReportUseCase {
	return &PropertyReportUseCase{store: store}
}

// Execute считает ипотеку и, если передана аренда, доходность по цене объявления.
func (uc *PropertyReportUseCase) Execute(ctx context.Context, propertyID int, in finance.PropertyReportInput) (finance.PropertyReport, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyReport",
		"property_id": propertyID,
	})

	property, ok := uc.store.GetProperty(ctx, propertyID)
	if !ok {
		return finance.PropertyReport{}, domain.ErrPropertyNotFound
	}

	price, err := finance.ParseAmount(property.Price)
	if err != nil {
		ucLogger.Warn("Stored price is not a number", port.Fields{"price": property.Price})
		return finance.PropertyReport{}, fmt.Errorf("property %d: %w", propertyID, err)
	}

	report, err := finance.BuildPropertyReport(price, in)
	if err != nil {
		return finance.PropertyReport{}, err
	}
	return report, nil
}
