package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("zero rate splits evenly", func(t *testing.T) {
		got, err := MonthlyPayment(120000, 0, 10)
		require.NoError(t, err)
		assert.InDelta(t, 1000, got, 1e-9)
	})

	t.Run("annuity formula", func(t *testing.T) {
		// 200 000 на 30 лет под 6% годовых - классические 1199.10
		got, err := MonthlyPayment(200000, 6, 30)
		require.NoError(t, err)
		assert.InDelta(t, 1199.10, got, 0.01)
	})

	t.Run("invalid term", func(t *testing.T) {
		_, err := MonthlyPayment(1000, 5, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRentalYieldAndROI(t *testing.T) {
	yield, err := RentalYield(10000, 1200000)
	require.NoError(t, err)
	assert.InDelta(t, 10, yield, 1e-9)

	roi, err := ROI(10000, 1200000, 2500)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, roi, 1e-9)

	_, err = RentalYield(10000, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ROI(1, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSplitRent(t *testing.T) {
	split, err := SplitRent(16000, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, RentSplit{
		PerRoom:        4000,
		OccupiedShare:  8000,
		AvailableShare: 8000,
		OccupiedRooms:  2,
		AvailableRooms: 2,
	}, split)

	_, err = SplitRent(16000, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = SplitRent(16000, 2, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEstimateMortgage(t *testing.T) {
	est, err := EstimateMortgage(250000, 50000, 6, 30)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, est.LoanAmount)
	assert.InDelta(t, 1199.10, est.MonthlyPayment, 0.01)
	assert.InDelta(t, est.MonthlyPayment*360-200000, est.TotalInterest, 1e-6)

	_, err = EstimateMortgage(100, 200, 6, 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount(" 16000.50 ")
	require.NoError(t, err)
	assert.Equal(t, 16000.5, v)

	_, err = ParseAmount("R16 000")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildPropertyReport(t *testing.T) {
	report, err := BuildPropertyReport(1200000, PropertyReportInput{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLoanTermYears, report.Mortgage.Years)
	assert.Equal(t, DefaultAnnualRatePct, report.Mortgage.AnnualRatePct)
	assert.Nil(t, report.RentalYield)
	assert.Nil(t, report.ROI)

	rent := 10000.0
	report, err = BuildPropertyReport(1200000, PropertyReportInput{MonthlyRent: &rent, MonthlyExpenses: 2500, Years: 20})
	require.NoError(t, err)
	require.NotNil(t, report.RentalYield)
	assert.InDelta(t, 10, *report.RentalYield, 1e-9)
	assert.InDelta(t, 7.5, *report.ROI, 1e-9)
	assert.Equal(t, 20, report.Mortgage.Years)
}
