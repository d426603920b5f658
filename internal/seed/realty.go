package seed

import "github.com/muzikology/Live2Share/internal/core/domain"

// Realty возвращает владельцев и объявления о продаже/аренде.
func Realty() (*domain.RealtySeed, error) {
	hashed, err := hashDemoPassword()
	if err != nil {
		return nil, err
	}

	return &domain.RealtySeed{
		Users: []domain.NewUser{
			{Username: "lerato.agent", Password: hashed, Email: "lerato@homefinders.co.za", FirstName: "Lerato", LastName: "Mokoena", Phone: ptr("011 456 7890")},
			{Username: "pieter.owner", Password: hashed, Email: "pieter@capeestates.co.za", FirstName: "Pieter", LastName: "Botha", Phone: ptr("021 345 6789")},
			{Username: "aisha.buyer", Password: hashed, Email: "aisha@example.co.za", FirstName: "Aisha", LastName: "Naidoo"},
		},
		Properties: []domain.NewProperty{
			{
				Title:         "Family Home in Sandton",
				Description:   "Four-bedroom family home with a pool and a large garden in a quiet, secure estate.",
				Address:       "12 Rivonia Road",
				City:          "Johannesburg",
				State:         "Gauteng",
				ZipCode:       "2196",
				Price:         "3450000",
				PropertyType:  "house",
				ListingType:   "sale",
				Bedrooms:      ptr(4),
				Bathrooms:     ptr(3),
				SquareFootage: ptr(2800),
				YearBuilt:     ptr(2008),
				Images:        []string{"https://images.unsplash.com/photo-1568605114967-8130f3a36994?auto=format&fit=crop&w=800&h=600"},
				Amenities:     []string{"Pool", "Garden", "Double Garage", "24/7 Security"},
				OwnerID:       1,
			},
			{
				Title:         "Sea Point Apartment with Ocean View",
				Description:   "Two-bedroom apartment on the Atlantic Seaboard, walking distance to the promenade.",
				Address:       "7 Beach Road",
				City:          "Cape Town",
				State:         "Western Cape",
				ZipCode:       "8005",
				Price:         "22000",
				PropertyType:  "apartment",
				ListingType:   "rent",
				Bedrooms:      ptr(2),
				Bathrooms:     ptr(2),
				SquareFootage: ptr(1100),
				YearBuilt:     ptr(2015),
				Images:        []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?auto=format&fit=crop&w=800&h=600"},
				Amenities:     []string{"Ocean View", "Balcony", "Gym", "Secure Parking"},
				OwnerID:       2,
			},
			{
				Title:         "Stellenbosch Wine Farm Cottage",
				Description:   "Restored cottage on a working wine farm with mountain views.",
				Address:       "Helshoogte Road",
				City:          "Stellenbosch",
				State:         "Western Cape",
				ZipCode:       "7600",
				Price:         "2150000",
				PropertyType:  "house",
				ListingType:   "sale",
				Bedrooms:      ptr(3),
				Bathrooms:     ptr(2),
				SquareFootage: ptr(1600),
				YearBuilt:     ptr(1964),
				Amenities:     []string{"Fireplace", "Mountain View", "Garden"},
				OwnerID:       2,
			},
			{
				Title:        "Umhlanga Office Space",
				Description:  "Open-plan office close to the Gateway precinct with backup power.",
				Address:      "30 Meridian Drive",
				City:         "Durban",
				State:        "KwaZulu-Natal",
				ZipCode:      "4319",
				Price:        "45000",
				PropertyType: "commercial",
				ListingType:  "rent",
				Bathrooms:    ptr(2),
				Amenities:    []string{"Backup Generator", "Fibre", "Boardroom"},
				OwnerID:      1,
			},
		},
	}, nil
}
