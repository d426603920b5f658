package domain

import "time"

type EventType string

const (
	EventInquiryCreated           EventType = "inquiry_created"
	EventApplicationCreated       EventType = "application_created"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// Event - доменное событие для подписчиков (SSE, брокер).
// RecipientUserID - кому адресовано: владельцу объявления или заявителю.
type Event struct {
	Type            EventType `json:"type"`
	Variant         string    `json:"variant"`
	RecipientUserID int       `json:"recipientUserId"`
	OccurredAt      time.Time `json:"occurredAt"`
	Data            any       `json:"data"`
}

const (
	VariantRealty  = "realty"
	VariantStudent = "student"
)
