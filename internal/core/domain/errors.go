package domain

import "errors"

// Ошибки, которые возвращают use case'ы. Хранилище само ошибок не возвращает:
// отсутствие записи для него - штатная ситуация.
var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUsernameTaken            = errors.New("username already taken")
	ErrEmailInUse               = errors.New("email already in use")
	ErrPropertyNotFound         = errors.New("property not found")
	ErrAccommodationNotFound    = errors.New("accommodation not found")
	ErrApplicationNotFound      = errors.New("application not found")
	ErrRentalAgreementNotFound  = errors.New("rental agreement not found")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)
