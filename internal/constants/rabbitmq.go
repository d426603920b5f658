package constants

// Обменник по умолчанию для доменных событий
const DefaultEventsExchange = "live2share.events"

// Ключи маршрутизации
const (
	RoutingKeyInquiryCreated           = "realty.inquiry.created"
	RoutingKeyApplicationCreated       = "student.application.created"
	RoutingKeyApplicationStatusChanged = "student.application.status_changed"
)
