package seed

import "github.com/muzikology/Live2Share/internal/core/domain"

// Student возвращает набор студентов, арендодателей, жилья и соседей.
// Пользователи 2 и 4 - арендодатели.
func Student() (*domain.StudentSeed, error) {
	hashed, err := hashDemoPassword()
	if err != nil {
		return nil, err
	}

	user := func(username, email, first, last, phone string) domain.NewUser {
		return domain.NewUser{
			Username:  username,
			Password:  hashed,
			Email:     email,
			FirstName: first,
			LastName:  last,
			Phone:     ptr(phone),
		}
	}

	return &domain.StudentSeed{
		Users: []domain.NewStudentUser{
			{
				NewUser:     user("thabo.mthembu", "thabo@wits.ac.za", "Thabo", "Mthembu", "082 123 4567"),
				University:  "University of the Witwatersrand",
				StudyField:  "Computer Science",
				YearOfStudy: 2,
				Bio:         ptr("Quiet second-year CS student looking for shared accommodation near Wits. I enjoy reading and coding in my spare time."),
				Lifestyle:   []string{"quiet", "early_riser", "studious"},
				Preferences: []string{"non_smoking", "clean", "no_parties"},
				IsVerified:  ptr(true),
			},
			{
				NewUser:     user("sarah.landlord", "sarah@accommodationsa.com", "Sarah", "Williams", "011 234 5678"),
				University:  "N/A - Landlord",
				StudyField:  "N/A",
				YearOfStudy: 0,
				Bio:         ptr("Property manager specializing in student accommodation."),
				IsVerified:  ptr(true),
			},
			{
				NewUser:     user("nomsa.dlamini", "nomsa@uct.ac.za", "Nomsa", "Dlamini", "021 987 6543"),
				University:  "University of Cape Town",
				StudyField:  "Medicine",
				YearOfStudy: 3,
				Bio:         ptr("Third-year medical student looking for accommodation near UCT. Social and friendly, enjoys studying with others."),
				Lifestyle:   []string{"social", "night_owl"},
				Preferences: []string{"pet_friendly", "social_environment"},
				IsVerified:  ptr(true),
			},
			{
				NewUser:     user("james.vanderwalt", "james@landlordpro.co.za", "James", "van der Walt", "031 555 7890"),
				University:  "N/A - Landlord",
				StudyField:  "N/A",
				YearOfStudy: 0,
				Bio:         ptr("Experienced landlord with multiple student properties in Durban."),
				IsVerified:  ptr(true),
			},
		},
		Accommodations: []domain.NewAccommodation{
			{
				Title:             "Student House near Wits University",
				Description:       "Spacious 4-bedroom house perfect for students. Walking distance to Wits campus, secure area, and fully furnished common areas. Great for sharing with friends or meeting new people.",
				Address:           "15 Yale Road",
				Area:              "Braamfontein",
				City:              "Johannesburg",
				Province:          "Gauteng",
				PostalCode:        "2001",
				MonthlyRent:       "16000",
				Deposit:           ptr("16000"),
				AccommodationType: "house",
				TotalRooms:        4,
				AvailableRooms:    2,
				Bathrooms:         2,
				HasWifi:           ptr(true),
				HasParking:        ptr(true),
				PetsAllowed:       ptr(false),
				Images: []string{
					"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
					"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
				},
				Amenities:          []string{"Furnished", "High-Speed WiFi", "Secure Parking", "Study Area", "Kitchen", "Lounge"},
				NearbyUniversities: []string{"University of the Witwatersrand", "University of Johannesburg"},
				TransportLinks:     []string{"Gautrain Park Station", "Rea Vaya BRT", "Taxi Rank"},
				HouseRules:         []string{"No smoking inside", "Quiet hours 22:00-06:00", "Clean common areas", "No overnight guests without notice"},
				LandlordID:         2,
				IsActive:           ptr(true),
			},
			{
				Title:             "Modern Flat in Rosebank - Student Friendly",
				Description:       "Comfortable 3-bedroom flat in trendy Rosebank. Perfect for serious students who want modern amenities and easy access to universities.",
				Address:           "88 Oxford Road",
				Area:              "Rosebank",
				City:              "Johannesburg",
				Province:          "Gauteng",
				PostalCode:        "2196",
				MonthlyRent:       "18000",
				Deposit:           ptr("18000"),
				AccommodationType: "apartment",
				TotalRooms:        3,
				AvailableRooms:    1,
				Bathrooms:         2,
				HasWifi:           ptr(true),
				HasParking:        ptr(true),
				PetsAllowed:       ptr(false),
				Images: []string{
					"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				},
				Amenities:          []string{"Air Conditioning", "High-Speed WiFi", "Gym Access", "24/7 Security", "Shopping Mall Access"},
				NearbyUniversities: []string{"University of the Witwatersrand", "UNISA"},
				TransportLinks:     []string{"Gautrain Rosebank Station", "Multiple Bus Routes"},
				HouseRules:         []string{"No smoking", "No parties", "Visitors register at security", "Keep noise down"},
				LandlordID:         2,
				IsActive:           ptr(true),
			},
			{
				Title:             "UCT Student Commune in Observatory",
				Description:       "Bohemian-style house perfect for creative students! Share with like-minded individuals in this artistic neighborhood close to UCT.",
				Address:           "42 Station Road",
				Area:              "Observatory",
				City:              "Cape Town",
				Province:          "Western Cape",
				PostalCode:        "7925",
				MonthlyRent:       "12000",
				Deposit:           ptr("12000"),
				AccommodationType: "commune",
				TotalRooms:        5,
				AvailableRooms:    3,
				Bathrooms:         2,
				HasWifi:           ptr(true),
				HasParking:        ptr(false),
				PetsAllowed:       ptr(true),
				Images: []string{
					"https://images.unsplash.com/photo-1570129477492-45c003edd2be?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				},
				Amenities:          []string{"Garden", "Art Studio", "Communal Kitchen", "WiFi", "Bicycle Storage"},
				NearbyUniversities: []string{"University of Cape Town", "CPUT"},
				TransportLinks:     []string{"Observatory Train Station", "Multiple Bus Routes", "Cycling Distance to UCT"},
				HouseRules:         []string{"Respect others", "Contribute to house duties", "Pet owners clean up", "Community meetings monthly"},
				LandlordID:         4,
				IsActive:           ptr(true),
			},
			{
				Title:             "Affordable Backyard Room - UKZN Westville",
				Description:       "Clean, safe backyard room perfect for budget-conscious students. Includes own entrance, shared kitchen and bathroom facilities.",
				Address:           "156 Dawncliffe Road",
				Area:              "Westville",
				City:              "Durban",
				Province:          "KwaZulu-Natal",
				PostalCode:        "3630",
				MonthlyRent:       "2500",
				Deposit:           ptr("2500"),
				AccommodationType: "backyard_room",
				TotalRooms:        1,
				AvailableRooms:    1,
				Bathrooms:         1,
				HasWifi:           ptr(true),
				HasParking:        ptr(true),
				PetsAllowed:       ptr(false),
				Images: []string{
					"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				},
				Amenities:          []string{"Own Entrance", "WiFi", "Parking", "Kitchen Access", "Garden View"},
				NearbyUniversities: []string{"University of KwaZulu-Natal"},
				TransportLinks:     []string{"Bus Route to UKZN", "Taxi Route"},
				HouseRules:         []string{"No smoking", "Keep common areas clean", "Quiet after 22:00"},
				LandlordID:         4,
				IsActive:           ptr(true),
			},
		},
		Roommates: []domain.NewRoommate{
			{AccommodationID: 1, UserID: 1, MoveInDate: date("2024-02-01"), MonthlyShare: "4000", IsCurrentResident: ptr(true)},
			{AccommodationID: 2, UserID: 3, MoveInDate: date("2024-01-15"), MonthlyShare: "6000", IsCurrentResident: ptr(true)},
		},
	}, nil
}
