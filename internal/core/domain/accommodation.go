package domain

import "time"

// Accommodation - жилье для студентов с подселением.
type Accommodation struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Address            string    `json:"address"`
	Area               string    `json:"area"`
	City               string    `json:"city"`
	Province           string    `json:"province"`
	PostalCode         string    `json:"postalCode"`
	MonthlyRent        string    `json:"monthlyRent"`
	Deposit            *string   `json:"deposit"`
	AccommodationType  string    `json:"accommodationType"`
	TotalRooms         int       `json:"totalRooms"`
	AvailableRooms     int       `json:"availableRooms"`
	Bathrooms          int       `json:"bathrooms"`
	HasWifi            bool      `json:"hasWifi"`
	HasParking         bool      `json:"hasParking"`
	PetsAllowed        bool      `json:"petsAllowed"`
	Images             []string  `json:"images"`
	Amenities          []string  `json:"amenities"`
	NearbyUniversities []string  `json:"nearbyUniversities"`
	TransportLinks     []string  `json:"transportLinks"`
	HouseRules         []string  `json:"houseRules"`
	LandlordID         int       `json:"landlordId"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type NewAccommodation struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Address            string   `json:"address"`
	Area               string   `json:"area"`
	City               string   `json:"city"`
	Province           string   `json:"province"`
	PostalCode         string   `json:"postalCode"`
	MonthlyRent        string   `json:"monthlyRent"`
	Deposit            *string  `json:"deposit,omitempty"`
	AccommodationType  string   `json:"accommodationType"`
	TotalRooms         int      `json:"totalRooms"`
	AvailableRooms     int      `json:"availableRooms"`
	Bathrooms          int      `json:"bathrooms"`
	HasWifi            *bool    `json:"hasWifi,omitempty"`
	HasParking         *bool    `json:"hasParking,omitempty"`
	PetsAllowed        *bool    `json:"petsAllowed,omitempty"`
	Images             []string `json:"images,omitempty"`
	Amenities          []string `json:"amenities,omitempty"`
	NearbyUniversities []string `json:"nearbyUniversities,omitempty"`
	TransportLinks     []string `json:"transportLinks,omitempty"`
	HouseRules         []string `json:"houseRules,omitempty"`
	LandlordID         int      `json:"landlordId"`
	IsActive           *bool    `json:"isActive,omitempty"`
}

type AccommodationPatch struct {
	Title              *string   `json:"title,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Address            *string   `json:"address,omitempty"`
	Area               *string   `json:"area,omitempty"`
	City               *string   `json:"city,omitempty"`
	Province           *string   `json:"province,omitempty"`
	PostalCode         *string   `json:"postalCode,omitempty"`
	MonthlyRent        *string   `json:"monthlyRent,omitempty"`
	Deposit            *string   `json:"deposit,omitempty"`
	AccommodationType  *string   `json:"accommodationType,omitempty"`
	TotalRooms         *int      `json:"totalRooms,omitempty"`
	AvailableRooms     *int      `json:"availableRooms,omitempty"`
	Bathrooms          *int      `json:"bathrooms,omitempty"`
	HasWifi            *bool     `json:"hasWifi,omitempty"`
	HasParking         *bool     `json:"hasParking,omitempty"`
	PetsAllowed        *bool     `json:"petsAllowed,omitempty"`
	Images             *[]string `json:"images,omitempty"`
	Amenities          *[]string `json:"amenities,omitempty"`
	NearbyUniversities *[]string `json:"nearbyUniversities,omitempty"`
	TransportLinks     *[]string `json:"transportLinks,omitempty"`
	HouseRules         *[]string `json:"houseRules,omitempty"`
	LandlordID         *int      `json:"landlordId,omitempty"`
	IsActive           *bool     `json:"isActive,omitempty"`
}

// AccommodationFilters - критерии поиска жилья.
type AccommodationFilters struct {
	City              string   `json:"city,omitempty"`
	Province          string   `json:"province,omitempty"`
	Area              string   `json:"area,omitempty"`
	AccommodationType string   `json:"accommodationType,omitempty"`
	MinRent           *float64 `json:"minRent,omitempty"`
	MaxRent           *float64 `json:"maxRent,omitempty"`
	// AvailableRooms - минимальное число свободных комнат
	AvailableRooms *int   `json:"availableRooms,omitempty"`
	University     string `json:"university,omitempty"`
}

func (a Accommodation) Clone() Accommodation {
	a.Deposit = clonePtr(a.Deposit)
	a.Images = cloneStrings(a.Images)
	a.Amenities = cloneStrings(a.Amenities)
	a.NearbyUniversities = cloneStrings(a.NearbyUniversities)
	a.TransportLinks = cloneStrings(a.TransportLinks)
	a.HouseRules = cloneStrings(a.HouseRules)
	return a
}

func (a Accommodation) Apply(patch AccommodationPatch) Accommodation {
	out := a.Clone()
	setIfPresent(&out.Title, patch.Title)
	setIfPresent(&out.Description, patch.Description)
	setIfPresent(&out.Address, patch.Address)
	setIfPresent(&out.Area, patch.Area)
	setIfPresent(&out.City, patch.City)
	setIfPresent(&out.Province, patch.Province)
	setIfPresent(&out.PostalCode, patch.PostalCode)
	setIfPresent(&out.MonthlyRent, patch.MonthlyRent)
	setPtrIfPresent(&out.Deposit, patch.Deposit)
	setIfPresent(&out.AccommodationType, patch.AccommodationType)
	setIfPresent(&out.TotalRooms, patch.TotalRooms)
	setIfPresent(&out.AvailableRooms, patch.AvailableRooms)
	setIfPresent(&out.Bathrooms, patch.Bathrooms)
	setIfPresent(&out.HasWifi, patch.HasWifi)
	setIfPresent(&out.HasParking, patch.HasParking)
	setIfPresent(&out.PetsAllowed, patch.PetsAllowed)
	setSliceIfPresent(&out.Images, patch.Images)
	setSliceIfPresent(&out.Amenities, patch.Amenities)
	setSliceIfPresent(&out.NearbyUniversities, patch.NearbyUniversities)
	setSliceIfPresent(&out.TransportLinks, patch.TransportLinks)
	setSliceIfPresent(&out.HouseRules, patch.HouseRules)
	setIfPresent(&out.LandlordID, patch.LandlordID)
	setIfPresent(&out.IsActive, patch.IsActive)
	return out
}
