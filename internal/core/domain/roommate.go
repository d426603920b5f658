package domain

import "time"

// Roommate - проживание пользователя в жилье в заданный период.
type Roommate struct {
	ID                int        `json:"id"`
	AccommodationID   int        `json:"accommodationId"`
	UserID            int        `json:"userId"`
	MoveInDate        time.Time  `json:"moveInDate"`
	MoveOutDate       *time.Time `json:"moveOutDate"`
	MonthlyShare      string     `json:"monthlyShare"`
	IsCurrentResident bool       `json:"isCurrentResident"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type NewRoommate struct {
	AccommodationID   int        `json:"accommodationId"`
	UserID            int        `json:"userId"`
	MoveInDate        time.Time  `json:"moveInDate"`
	MoveOutDate       *time.Time `json:"moveOutDate,omitempty"`
	MonthlyShare      string     `json:"monthlyShare"`
	IsCurrentResident *bool      `json:"isCurrentResident,omitempty"`
}

// RoommateWithUser - результат join'а соседа с его профилем.
type RoommateWithUser struct {
	Roommate
	User StudentUser `json:"user"`
}

func (r Roommate) Clone() Roommate {
	r.MoveOutDate = clonePtr(r.MoveOutDate)
	return r
}
