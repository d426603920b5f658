package domain

import "time"

// ApplicationStatus - статус заявки на заселение
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid сообщает, является ли статус одним из известных.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

type Application struct {
	ID                  int               `json:"id"`
	AccommodationID     int               `json:"accommodationId"`
	ApplicantID         int               `json:"applicantId"`
	Message             string            `json:"message"`
	PreferredMoveInDate *time.Time        `json:"preferredMoveInDate"`
	BudgetRange         *string           `json:"budgetRange"`
	Status              ApplicationStatus `json:"status"`
	CreatedAt           time.Time         `json:"createdAt"`
}

type NewApplication struct {
	AccommodationID     int        `json:"accommodationId"`
	ApplicantID         int        `json:"applicantId"`
	Message             string     `json:"message"`
	PreferredMoveInDate *time.Time `json:"preferredMoveInDate,omitempty"`
	BudgetRange         *string    `json:"budgetRange,omitempty"`
	// Пустой статус превращается в pending при создании
	Status ApplicationStatus `json:"status,omitempty"`
}

type ApplicationWithApplicant struct {
	Application
	Applicant StudentUser `json:"applicant"`
}

type ApplicationWithAccommodation struct {
	Application
	Accommodation Accommodation `json:"accommodation"`
}

func (a Application) Clone() Application {
	a.PreferredMoveInDate = clonePtr(a.PreferredMoveInDate)
	a.BudgetRange = clonePtr(a.BudgetRange)
	return a
}
