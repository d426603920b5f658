package memory

import (
	"context"
	"sync"
	"time"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

// StudentStore - in-memory хранилище студенческого варианта.
type StudentStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users            *table[domain.StudentUser]
	accommodations   *table[domain.Accommodation]
	roommates        *table[domain.Roommate]
	applications     *table[domain.Application]
	rentalAgreements *table[domain.RentalAgreement]
}

var _ port.StudentStoragePort = (*StudentStore)(nil)

func NewStudentStore(seed *domain.StudentSeed, opts ...Option) *StudentStore {
	o := buildOptions(opts)
	s := &StudentStore{
		now:              o.now,
		users:            newTable[domain.StudentUser](),
		accommodations:   newTable[domain.Accommodation](),
		roommates:        newTable[domain.Roommate](),
		applications:     newTable[domain.Application](),
		rentalAgreements: newTable[domain.RentalAgreement](),
	}
	if seed != nil {
		ctx := context.Background()
		for _, u := range seed.Users {
			s.CreateUser(ctx, u)
		}
		for _, a := range seed.Accommodations {
			s.CreateAccommodation(ctx, a)
		}
		for _, r := range seed.Roommates {
			s.CreateRoommate(ctx, r)
		}
		for _, a := range seed.Applications {
			s.CreateApplication(ctx, a)
		}
		for _, ra := range seed.RentalAgreements {
			s.CreateRentalAgreement(ctx, ra)
		}
	}
	return s
}

// --- users ---

func (s *StudentStore) CreateUser(ctx context.Context, in domain.NewStudentUser) domain.StudentUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.StudentUser{
		User: domain.User{
			ID:        s.users.allocID(),
			Username:  in.Username,
			Password:  in.Password,
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			CreatedAt: s.now(),
		},
		University:   in.University,
		StudyField:   in.StudyField,
		YearOfStudy:  in.YearOfStudy,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
		Lifestyle:    in.Lifestyle,
		Preferences:  in.Preferences,
		IsVerified:   boolOr(in.IsVerified, false),
	}
	u = u.Clone()
	s.users.put(u.ID, u)

	contextkeys.LoggerFromContext(ctx).Debug("Student user stored", port.Fields{"user_id": u.ID})
	return u.Clone()
}

func (s *StudentStore) GetUser(_ context.Context, id int) (domain.StudentUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	return u.Clone(), ok
}

func (s *StudentStore) GetUserByUsername(_ context.Context, username string) (domain.StudentUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.find(func(u domain.StudentUser) bool { return u.Username == username })
	return u.Clone(), ok
}

func (s *StudentStore) GetUserByEmail(_ context.Context, email string) (domain.StudentUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.find(func(u domain.StudentUser) bool { return u.Email == email })
	return u.Clone(), ok
}

// --- accommodations ---

func (s *StudentStore) CreateAccommodation(ctx context.Context, in domain.NewAccommodation) domain.Accommodation {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	a := domain.Accommodation{
		ID:                 s.accommodations.allocID(),
		Title:              in.Title,
		Description:        in.Description,
		Address:            in.Address,
		Area:               in.Area,
		City:               in.City,
		Province:           in.Province,
		PostalCode:         in.PostalCode,
		MonthlyRent:        in.MonthlyRent,
		Deposit:            in.Deposit,
		AccommodationType:  in.AccommodationType,
		TotalRooms:         in.TotalRooms,
		AvailableRooms:     in.AvailableRooms,
		Bathrooms:          in.Bathrooms,
		HasWifi:            boolOr(in.HasWifi, false),
		HasParking:         boolOr(in.HasParking, false),
		PetsAllowed:        boolOr(in.PetsAllowed, false),
		Images:             in.Images,
		Amenities:          in.Amenities,
		NearbyUniversities: in.NearbyUniversities,
		TransportLinks:     in.TransportLinks,
		HouseRules:         in.HouseRules,
		LandlordID:         in.LandlordID,
		IsActive:           boolOr(in.IsActive, true),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	a = a.Clone()
	s.accommodations.put(a.ID, a)

	contextkeys.LoggerFromContext(ctx).Debug("Accommodation stored", port.Fields{"accommodation_id": a.ID, "landlord_id": a.LandlordID})
	return a.Clone()
}

func (s *StudentStore) GetAccommodation(_ context.Context, id int) (domain.Accommodation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accommodations.get(id)
	return a.Clone(), ok
}

func (s *StudentStore) GetAccommodations(_ context.Context, f domain.AccommodationFilters) []domain.Accommodation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeAccommodations(func(a domain.Accommodation) bool { return matchAccommodation(a, f) })
}

func (s *StudentStore) activeAccommodations(match func(domain.Accommodation) bool) []domain.Accommodation {
	rows := s.accommodations.filter(func(a domain.Accommodation) bool { return a.IsActive && match(a) })
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	newestFirst(rows, func(a domain.Accommodation) time.Time { return a.CreatedAt })
	return rows
}

func matchAccommodation(a domain.Accommodation, f domain.AccommodationFilters) bool {
	if f.City != "" && !containsFold(a.City, f.City) {
		return false
	}
	if f.Province != "" && !equalFold(a.Province, f.Province) {
		return false
	}
	if f.Area != "" && !containsFold(a.Area, f.Area) {
		return false
	}
	if f.AccommodationType != "" && !equalFold(a.AccommodationType, f.AccommodationType) {
		return false
	}
	if !inRange(a.MonthlyRent, f.MinRent, f.MaxRent) {
		return false
	}
	if f.AvailableRooms != nil && a.AvailableRooms < *f.AvailableRooms {
		return false
	}
	if f.University != "" && !anyContainsFold(a.NearbyUniversities, f.University) {
		return false
	}
	return true
}

func (s *StudentStore) UpdateAccommodation(ctx context.Context, id int, patch domain.AccommodationPatch) (domain.Accommodation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.accommodations.get(id)
	if !ok {
		return domain.Accommodation{}, false
	}
	updated := current.Apply(patch)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()
	s.accommodations.put(id, updated)

	contextkeys.LoggerFromContext(ctx).Debug("Accommodation updated", port.Fields{"accommodation_id": id})
	return updated.Clone(), true
}

// DeleteAccommodation удаляет жилье. Соседи, заявки и договоры не удаляются,
// join-выборки просто перестают их возвращать.
func (s *StudentStore) DeleteAccommodation(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.accommodations.remove(id)
	if removed {
		contextkeys.LoggerFromContext(ctx).Debug("Accommodation deleted", port.Fields{"accommodation_id": id})
	}
	return removed
}

func (s *StudentStore) GetAccommodationsByLandlord(_ context.Context, landlordID int) []domain.Accommodation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeAccommodations(func(a domain.Accommodation) bool { return a.LandlordID == landlordID })
}

// --- roommates ---

func (s *StudentStore) CreateRoommate(ctx context.Context, in domain.NewRoommate) domain.Roommate {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := domain.Roommate{
		ID:                s.roommates.allocID(),
		AccommodationID:   in.AccommodationID,
		UserID:            in.UserID,
		MoveInDate:        in.MoveInDate,
		MoveOutDate:       in.MoveOutDate,
		MonthlyShare:      in.MonthlyShare,
		IsCurrentResident: boolOr(in.IsCurrentResident, true),
		CreatedAt:         s.now(),
	}
	r = r.Clone()
	s.roommates.put(r.ID, r)

	contextkeys.LoggerFromContext(ctx).Debug("Roommate stored", port.Fields{"roommate_id": r.ID, "accommodation_id": r.AccommodationID})
	return r.Clone()
}

func (s *StudentStore) GetRoommatesForAccommodation(_ context.Context, accommodationID int) []domain.RoommateWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roommatesWithUsers(func(r domain.Roommate) bool { return r.AccommodationID == accommodationID })
}

func (s *StudentStore) GetCurrentRoommatesForAccommodation(_ context.Context, accommodationID int) []domain.RoommateWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.roommatesWithUsers(func(r domain.Roommate) bool {
		return r.AccommodationID == accommodationID && r.IsCurrentResident
	})
}

// roommatesWithUsers пропускает соседей, чей пользователь не найден.
func (s *StudentStore) roommatesWithUsers(match func(domain.Roommate) bool) []domain.RoommateWithUser {
	out := make([]domain.RoommateWithUser, 0)
	for _, r := range s.roommates.filter(match) {
		u, ok := s.users.get(r.UserID)
		if !ok {
			continue
		}
		out = append(out, domain.RoommateWithUser{Roommate: r.Clone(), User: u.Clone()})
	}
	return out
}

// --- applications ---

func (s *StudentStore) CreateApplication(ctx context.Context, in domain.NewApplication) domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.ApplicationPending
	}
	a := domain.Application{
		ID:                  s.applications.allocID(),
		AccommodationID:     in.AccommodationID,
		ApplicantID:         in.ApplicantID,
		Message:             in.Message,
		PreferredMoveInDate: in.PreferredMoveInDate,
		BudgetRange:         in.BudgetRange,
		Status:              status,
		CreatedAt:           s.now(),
	}
	a = a.Clone()
	s.applications.put(a.ID, a)

	contextkeys.LoggerFromContext(ctx).Debug("Application stored", port.Fields{"application_id": a.ID, "accommodation_id": a.AccommodationID})
	return a.Clone()
}

func (s *StudentStore) GetApplication(_ context.Context, id int) (domain.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications.get(id)
	return a.Clone(), ok
}

// GetApplicationsForAccommodation пропускает заявки, чей заявитель не найден.
func (s *StudentStore) GetApplicationsForAccommodation(_ context.Context, accommodationID int) []domain.ApplicationWithApplicant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ApplicationWithApplicant, 0)
	for _, a := range s.applications.filter(func(a domain.Application) bool { return a.AccommodationID == accommodationID }) {
		u, ok := s.users.get(a.ApplicantID)
		if !ok {
			continue
		}
		out = append(out, domain.ApplicationWithApplicant{Application: a.Clone(), Applicant: u.Clone()})
	}
	return out
}

// GetApplicationsByUser пропускает заявки на уже удаленное жилье.
func (s *StudentStore) GetApplicationsByUser(_ context.Context, userID int) []domain.ApplicationWithAccommodation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ApplicationWithAccommodation, 0)
	for _, a := range s.applications.filter(func(a domain.Application) bool { return a.ApplicantID == userID }) {
		acc, ok := s.accommodations.get(a.AccommodationID)
		if !ok {
			continue
		}
		out = append(out, domain.ApplicationWithAccommodation{Application: a.Clone(), Accommodation: acc.Clone()})
	}
	return out
}

// UpdateApplicationStatus меняет только статус. Допустимость перехода здесь не проверяется.
func (s *StudentStore) UpdateApplicationStatus(ctx context.Context, id int, status domain.ApplicationStatus) (domain.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications.get(id)
	if !ok {
		return domain.Application{}, false
	}
	a = a.Clone()
	a.Status = status
	s.applications.put(id, a)

	contextkeys.LoggerFromContext(ctx).Debug("Application status changed", port.Fields{"application_id": id, "status": status})
	return a.Clone(), true
}

// --- rental agreements ---

func (s *StudentStore) CreateRentalAgreement(ctx context.Context, in domain.NewRentalAgreement) domain.RentalAgreement {
	s.mu.Lock()
	defer s.mu.Unlock()

	ra := domain.RentalAgreement{
		ID:              s.rentalAgreements.allocID(),
		AccommodationID: in.AccommodationID,
		LandlordID:      in.LandlordID,
		LeaseStartDate:  in.LeaseStartDate,
		LeaseEndDate:    in.LeaseEndDate,
		MonthlyRent:     in.MonthlyRent,
		Deposit:         in.Deposit,
		PaymentDueDay:   in.PaymentDueDay,
		Utilities:       in.Utilities,
		Terms:           in.Terms,
		CreatedAt:       s.now(),
	}
	ra = ra.Clone()
	s.rentalAgreements.put(ra.ID, ra)

	contextkeys.LoggerFromContext(ctx).Debug("Rental agreement stored", port.Fields{"agreement_id": ra.ID, "accommodation_id": ra.AccommodationID})
	return ra.Clone()
}

// GetRentalAgreementForAccommodation возвращает первый по порядку создания договор.
func (s *StudentStore) GetRentalAgreementForAccommodation(_ context.Context, accommodationID int) (domain.RentalAgreement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ra, ok := s.rentalAgreements.find(func(ra domain.RentalAgreement) bool { return ra.AccommodationID == accommodationID })
	return ra.Clone(), ok
}

// --- search ---

// SearchSuggestions подсказывает города, районы, провинции, университеты
// и пары "район, город" активного жилья.
func (s *StudentStore) SearchSuggestions(_ context.Context, query string) []string {
	if query == "" {
		return []string{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	active := s.activeAccommodations(func(domain.Accommodation) bool { return true })
	var cities, areas, provinces, universities, pairs []string
	for _, a := range active {
		cities = append(cities, a.City)
		areas = append(areas, a.Area)
		provinces = append(provinces, a.Province)
		universities = append(universities, a.NearbyUniversities...)
		pairs = append(pairs, a.Area+", "+a.City)
	}
	return collectSuggestions(query, cities, areas, provinces, universities, pairs)
}
