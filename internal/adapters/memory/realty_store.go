package memory

import (
	"context"
	"sync"
	"time"

	"github.com/muzikology/Live2Share/internal/contextkeys"
	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/core/port"
)

// RealtyStore - in-memory хранилище варианта "недвижимость".
// Наружу всегда отдаются копии, изменить запись можно только методами стора.
type RealtyStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users      *table[domain.User]
	properties *table[domain.Property]
	inquiries  *table[domain.Inquiry]
}

var _ port.RealtyStoragePort = (*RealtyStore)(nil)

// NewRealtyStore создает хранилище и, если seed не nil, заполняет его по порядку.
func NewRealtyStore(seed *domain.RealtySeed, opts ...Option) *RealtyStore {
	o := buildOptions(opts)
	s := &RealtyStore{
		now:        o.now,
		users:      newTable[domain.User](),
		properties: newTable[domain.Property](),
		inquiries:  newTable[domain.Inquiry](),
	}
	if seed != nil {
		ctx := context.Background()
		for _, u := range seed.Users {
			s.CreateUser(ctx, u)
		}
		for _, p := range seed.Properties {
			s.CreateProperty(ctx, p)
		}
		for _, i := range seed.Inquiries {
			s.CreateInquiry(ctx, i)
		}
	}
	return s
}

// --- users ---

func (s *RealtyStore) CreateUser(ctx context.Context, in domain.NewUser) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := domain.User{
		ID:        s.users.allocID(),
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		CreatedAt: s.now(),
	}
	u = u.Clone()
	s.users.put(u.ID, u)

	contextkeys.LoggerFromContext(ctx).Debug("Realty user stored", port.Fields{"user_id": u.ID})
	return u.Clone()
}

func (s *RealtyStore) GetUser(_ context.Context, id int) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.get(id)
	return u.Clone(), ok
}

func (s *RealtyStore) GetUserByUsername(_ context.Context, username string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.find(func(u domain.User) bool { return u.Username == username })
	return u.Clone(), ok
}

func (s *RealtyStore) GetUserByEmail(_ context.Context, email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users.find(func(u domain.User) bool { return u.Email == email })
	return u.Clone(), ok
}

// --- properties ---

func (s *RealtyStore) CreateProperty(ctx context.Context, in domain.NewProperty) domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := domain.Property{
		ID:            s.properties.allocID(),
		Title:         in.Title,
		Description:   in.Description,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		Price:         in.Price,
		PropertyType:  in.PropertyType,
		ListingType:   in.ListingType,
		Bedrooms:      in.Bedrooms,
		Bathrooms:     in.Bathrooms,
		SquareFootage: in.SquareFootage,
		YearBuilt:     in.YearBuilt,
		Images:        in.Images,
		Amenities:     in.Amenities,
		OwnerID:       in.OwnerID,
		IsActive:      boolOr(in.IsActive, true),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p = p.Clone()
	s.properties.put(p.ID, p)

	contextkeys.LoggerFromContext(ctx).Debug("Property stored", port.Fields{"property_id": p.ID, "owner_id": p.OwnerID})
	return p.Clone()
}

func (s *RealtyStore) GetProperty(_ context.Context, id int) (domain.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties.get(id)
	return p.Clone(), ok
}

// GetProperties возвращает активные объявления, подходящие под все заданные фильтры,
// от новых к старым.
func (s *RealtyStore) GetProperties(_ context.Context, f domain.PropertyFilters) []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeProperties(func(p domain.Property) bool { return matchProperty(p, f) })
}

func (s *RealtyStore) activeProperties(match func(domain.Property) bool) []domain.Property {
	rows := s.properties.filter(func(p domain.Property) bool { return p.IsActive && match(p) })
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	newestFirst(rows, func(p domain.Property) time.Time { return p.CreatedAt })
	return rows
}

func matchProperty(p domain.Property, f domain.PropertyFilters) bool {
	if f.City != "" && !containsFold(p.City, f.City) {
		return false
	}
	if f.State != "" && !equalFold(p.State, f.State) {
		return false
	}
	if f.PropertyType != "" && !equalFold(p.PropertyType, f.PropertyType) {
		return false
	}
	if f.ListingType != "" && !equalFold(p.ListingType, f.ListingType) {
		return false
	}
	if !inRange(p.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
		return false
	}
	if f.Bathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms != *f.Bathrooms) {
		return false
	}
	return true
}

// UpdateProperty накладывает патч и обновляет updatedAt, даже если патч пустой.
func (s *RealtyStore) UpdateProperty(ctx context.Context, id int, patch domain.PropertyPatch) (domain.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.properties.get(id)
	if !ok {
		return domain.Property{}, false
	}
	updated := current.Apply(patch)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()
	s.properties.put(id, updated)

	contextkeys.LoggerFromContext(ctx).Debug("Property updated", port.Fields{"property_id": id})
	return updated.Clone(), true
}

// DeleteProperty удаляет объявление. Обращения по нему остаются.
func (s *RealtyStore) DeleteProperty(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.properties.remove(id)
	if removed {
		contextkeys.LoggerFromContext(ctx).Debug("Property deleted", port.Fields{"property_id": id})
	}
	return removed
}

// GetPropertiesByOwner возвращает активные объявления владельца, от новых к старым.
func (s *RealtyStore) GetPropertiesByOwner(_ context.Context, ownerID int) []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeProperties(func(p domain.Property) bool { return p.OwnerID == ownerID })
}

// --- inquiries ---

func (s *RealtyStore) CreateInquiry(ctx context.Context, in domain.NewInquiry) domain.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := domain.Inquiry{
		ID:          s.inquiries.allocID(),
		PropertyID:  in.PropertyID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		InquiryType: in.InquiryType,
		CreatedAt:   s.now(),
	}
	i = i.Clone()
	s.inquiries.put(i.ID, i)

	contextkeys.LoggerFromContext(ctx).Debug("Inquiry stored", port.Fields{"inquiry_id": i.ID, "property_id": i.PropertyID})
	return i.Clone()
}

func (s *RealtyStore) GetInquiry(_ context.Context, id int) (domain.Inquiry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.inquiries.get(id)
	return i.Clone(), ok
}

func (s *RealtyStore) GetInquiriesForProperty(_ context.Context, propertyID int) []domain.Inquiry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.inquiries.filter(func(i domain.Inquiry) bool { return i.PropertyID == propertyID })
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}

// --- search ---

// SearchSuggestions подсказывает города, штаты и пары "город, штат" активных объявлений.
func (s *RealtyStore) SearchSuggestions(_ context.Context, query string) []string {
	if query == "" {
		return []string{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	active := s.activeProperties(func(domain.Property) bool { return true })
	cities := make([]string, 0, len(active))
	states := make([]string, 0, len(active))
	pairs := make([]string, 0, len(active))
	for _, p := range active {
		cities = append(cities, p.City)
		states = append(states, p.State)
		pairs = append(pairs, p.City+", "+p.State)
	}
	return collectSuggestions(query, cities, states, pairs)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
