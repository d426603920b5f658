// Package finance - калькуляторы, которые показываются рядом с объявлениями:
// ипотечный платеж, доходность аренды и деление аренды между соседями.
package finance

import (
	"errors"
	"math"
)

var ErrInvalidInput = errors.New("invalid calculator input")

// MonthlyPayment - аннуитетный платеж по кредиту. annualRatePct в процентах (10.5 = 10.5%).
// При нулевой ставке сумма делится поровну на все месяцы.
func MonthlyPayment(loan, annualRatePct float64, years int) (float64, error) {
	if loan < 0 || annualRatePct < 0 || years <= 0 {
		return 0, ErrInvalidInput
	}

	monthlyRate := annualRatePct / 100 / 12
	payments := float64(years * 12)
	if monthlyRate == 0 {
		return loan / payments, nil
	}

	growth := math.Pow(1+monthlyRate, payments)
	return loan * monthlyRate * growth / (growth - 1), nil
}

// RentalYield - годовая валовая доходность аренды в процентах.
func RentalYield(monthlyRent, propertyValue float64) (float64, error) {
	if propertyValue <= 0 || monthlyRent < 0 {
		return 0, ErrInvalidInput
	}
	return monthlyRent * 12 / propertyValue * 100, nil
}

// ROI - чистая годовая доходность в процентах с учетом ежемесячных расходов.
func ROI(monthlyRent, propertyValue, monthlyExpenses float64) (float64, error) {
	if propertyValue <= 0 || monthlyRent < 0 || monthlyExpenses < 0 {
		return 0, ErrInvalidInput
	}
	net := (monthlyRent - monthlyExpenses) * 12
	return net / propertyValue * 100, nil
}

// RentSplit - равное деление аренды по комнатам.
type RentSplit struct {
	PerRoom        float64 `json:"perRoom"`
	OccupiedShare  float64 `json:"occupiedShare"`
	AvailableShare float64 `json:"availableShare"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	AvailableRooms int     `json:"availableRooms"`
}

func SplitRent(totalRent float64, totalRooms, occupiedRooms int) (RentSplit, error) {
	if totalRent < 0 || totalRooms <= 0 || occupiedRooms < 0 || occupiedRooms > totalRooms {
		return RentSplit{}, ErrInvalidInput
	}

	perRoom := totalRent / float64(totalRooms)
	available := totalRooms - occupiedRooms
	return RentSplit{
		PerRoom:        perRoom,
		OccupiedShare:  perRoom * float64(occupiedRooms),
		AvailableShare: perRoom * float64(available),
		OccupiedRooms:  occupiedRooms,
		AvailableRooms: available,
	}, nil
}
