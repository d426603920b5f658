package domain

import "time"

// RentalAgreement - договор аренды жилья. Ожидается один договор на жилье.
type RentalAgreement struct {
	ID              int       `json:"id"`
	AccommodationID int       `json:"accommodationId"`
	LandlordID      int       `json:"landlordId"`
	LeaseStartDate  time.Time `json:"leaseStartDate"`
	LeaseEndDate    time.Time `json:"leaseEndDate"`
	MonthlyRent     string    `json:"monthlyRent"`
	Deposit         *string   `json:"deposit"`
	PaymentDueDay   int       `json:"paymentDueDay"`
	Utilities       []string  `json:"utilities"`
	Terms           *string   `json:"terms"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewRentalAgreement struct {
	AccommodationID int       `json:"accommodationId"`
	LandlordID      int       `json:"landlordId"`
	LeaseStartDate  time.Time `json:"leaseStartDate"`
	LeaseEndDate    time.Time `json:"leaseEndDate"`
	MonthlyRent     string    `json:"monthlyRent"`
	Deposit         *string   `json:"deposit,omitempty"`
	PaymentDueDay   int       `json:"paymentDueDay"`
	Utilities       []string  `json:"utilities,omitempty"`
	Terms           *string   `json:"terms,omitempty"`
}

func (r RentalAgreement) Clone() RentalAgreement {
	r.Deposit = clonePtr(r.Deposit)
	r.Utilities = cloneStrings(r.Utilities)
	r.Terms = clonePtr(r.Terms)
	return r
}
