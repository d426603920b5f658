package domain

// RealtySeed - начальный набор данных для варианта "недвижимость".
// Записи создаются по порядку, поэтому внешние ключи ссылаются на id по позиции (с 1).
type RealtySeed struct {
	Users      []NewUser
	Properties []NewProperty
	Inquiries  []NewInquiry
}

type StudentSeed struct {
	Users            []NewStudentUser
	Accommodations   []NewAccommodation
	Roommates        []NewRoommate
	Applications     []NewApplication
	RentalAgreements []NewRentalAgreement
}
