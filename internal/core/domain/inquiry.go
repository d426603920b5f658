package domain

import "time"

// Inquiry - обращение покупателя/арендатора по объявлению.
type Inquiry struct {
	ID          int       `json:"id"`
	PropertyID  int       `json:"propertyId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Message     string    `json:"message"`
	InquiryType string    `json:"inquiryType"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewInquiry struct {
	PropertyID  int     `json:"propertyId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Message     string  `json:"message"`
	InquiryType string  `json:"inquiryType"`
}

func (i Inquiry) Clone() Inquiry {
	i.Phone = clonePtr(i.Phone)
	return i
}
