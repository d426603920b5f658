package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muzikology/Live2Share/internal/core/domain"
	"github.com/muzikology/Live2Share/internal/seed"
)

func newSeededRealty(t *testing.T) *RealtyStore {
	t.Helper()
	s, err := seed.Realty()
	require.NoError(t, err)
	return NewRealtyStore(s, WithClock(steppingClock()))
}

func propertyIDs(rows []domain.Property) []int {
	ids := make([]int, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestRealtyStore_CreateAndGetProperty(t *testing.T) {
	ctx := context.Background()
	store := NewRealtyStore(nil, WithClock(steppingClock()))

	created := store.CreateProperty(ctx, domain.NewProperty{
		Title:        "Loft",
		City:         "Pretoria",
		State:        "Gauteng",
		Price:        "950000",
		PropertyType: "apartment",
		ListingType:  "sale",
		OwnerID:      1,
	})

	assert.Equal(t, 1, created.ID)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Bedrooms)
	assert.Equal(t, []string{}, created.Images)
	assert.Equal(t, []string{}, created.Amenities)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, ok := store.GetProperty(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	_, ok = store.GetProperty(ctx, 42)
	assert.False(t, ok)
}

func TestRealtyStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	p, ok := store.GetProperty(ctx, 1)
	require.True(t, ok)
	p.Amenities[0] = "mutated"
	*p.Bedrooms = 99

	again, _ := store.GetProperty(ctx, 1)
	assert.Equal(t, "Pool", again.Amenities[0])
	assert.Equal(t, 4, *again.Bedrooms)
}

func TestRealtyStore_GetPropertiesFilters(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	tests := []struct {
		name    string
		filters domain.PropertyFilters
		want    []int
	}{
		{name: "no filters, newest first", want: []int{4, 3, 2, 1}},
		{name: "city substring", filters: domain.PropertyFilters{City: "town"}, want: []int{2}},
		{name: "state exact, any case", filters: domain.PropertyFilters{State: "western cape"}, want: []int{3, 2}},
		{name: "state is not a substring match", filters: domain.PropertyFilters{State: "cape"}, want: []int{}},
		{name: "listing type", filters: domain.PropertyFilters{ListingType: "SALE"}, want: []int{3, 1}},
		{name: "property type", filters: domain.PropertyFilters{PropertyType: "commercial"}, want: []int{4}},
		{name: "price range inclusive", filters: domain.PropertyFilters{MinPrice: ptr(22000.0), MaxPrice: ptr(45000.0)}, want: []int{4, 2}},
		{name: "bedrooms exact", filters: domain.PropertyFilters{Bedrooms: ptr(3)}, want: []int{3}},
		{name: "bathrooms exact", filters: domain.PropertyFilters{Bathrooms: ptr(2)}, want: []int{4, 3, 2}},
		{name: "combined", filters: domain.PropertyFilters{State: "Western Cape", ListingType: "sale"}, want: []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, propertyIDs(store.GetProperties(ctx, tt.filters)))
		})
	}
}

func TestRealtyStore_InactiveAndUnparseablePrices(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	_, ok := store.UpdateProperty(ctx, 1, domain.PropertyPatch{IsActive: ptr(false)})
	require.True(t, ok)
	store.CreateProperty(ctx, domain.NewProperty{Title: "POA", Price: "on request", OwnerID: 2})

	all := propertyIDs(store.GetProperties(ctx, domain.PropertyFilters{}))
	assert.Equal(t, []int{5, 4, 3, 2}, all)

	priced := propertyIDs(store.GetProperties(ctx, domain.PropertyFilters{MinPrice: ptr(0.0)}))
	assert.Equal(t, []int{4, 3, 2}, priced)

	assert.Equal(t, []int{4}, propertyIDs(store.GetPropertiesByOwner(ctx, 1)))
}

func TestRealtyStore_UpdateProperty(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)
	before, _ := store.GetProperty(ctx, 2)

	t.Run("empty patch only bumps updatedAt", func(t *testing.T) {
		updated, ok := store.UpdateProperty(ctx, 2, domain.PropertyPatch{})
		require.True(t, ok)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
		assert.Equal(t, before.CreatedAt, updated.CreatedAt)
		updated.UpdatedAt = before.UpdatedAt
		assert.Equal(t, before, updated)
	})

	t.Run("patch merges fields", func(t *testing.T) {
		updated, ok := store.UpdateProperty(ctx, 2, domain.PropertyPatch{
			Price:     ptr("24000"),
			Amenities: &[]string{"Pool"},
		})
		require.True(t, ok)
		assert.Equal(t, "24000", updated.Price)
		assert.Equal(t, []string{"Pool"}, updated.Amenities)
		assert.Equal(t, before.Title, updated.Title)

		stored, _ := store.GetProperty(ctx, 2)
		assert.Equal(t, updated, stored)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := store.UpdateProperty(ctx, 100, domain.PropertyPatch{Title: ptr("x")})
		assert.False(t, ok)
	})
}

func TestRealtyStore_DeleteProperty(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)
	store.CreateInquiry(ctx, domain.NewInquiry{PropertyID: 3, FirstName: "A", LastName: "B", Email: "a@b.c", Message: "hi", InquiryType: "viewing"})

	assert.True(t, store.DeleteProperty(ctx, 3))
	assert.False(t, store.DeleteProperty(ctx, 3))

	_, ok := store.GetProperty(ctx, 3)
	assert.False(t, ok)
	// обращения не удаляются каскадно
	assert.Len(t, store.GetInquiriesForProperty(ctx, 3), 1)

	next := store.CreateProperty(ctx, domain.NewProperty{Title: "New", Price: "1", OwnerID: 1})
	assert.Equal(t, 5, next.ID)
}

func TestRealtyStore_Inquiries(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	first := store.CreateInquiry(ctx, domain.NewInquiry{PropertyID: 2, FirstName: "Aisha", LastName: "Naidoo", Email: "aisha@example.co.za", Message: "Is it available in May?", InquiryType: "rental"})
	store.CreateInquiry(ctx, domain.NewInquiry{PropertyID: 1, FirstName: "X", LastName: "Y", Email: "x@y.z", Message: "Price?", InquiryType: "general"})
	second := store.CreateInquiry(ctx, domain.NewInquiry{PropertyID: 2, FirstName: "Lwazi", LastName: "Khumalo", Email: "l@k.co.za", Phone: ptr("083 000 0000"), Message: "Viewing?", InquiryType: "viewing"})

	assert.Nil(t, first.Phone)
	got := store.GetInquiriesForProperty(ctx, 2)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)

	one, ok := store.GetInquiry(ctx, second.ID)
	require.True(t, ok)
	assert.Equal(t, "083 000 0000", *one.Phone)

	assert.Equal(t, []domain.Inquiry{}, store.GetInquiriesForProperty(ctx, 4))
}

func TestRealtyStore_Users(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	u, ok := store.GetUserByUsername(ctx, "pieter.owner")
	require.True(t, ok)
	assert.Equal(t, 2, u.ID)

	byEmail, ok := store.GetUserByEmail(ctx, "aisha@example.co.za")
	require.True(t, ok)
	assert.Equal(t, 3, byEmail.ID)

	_, ok = store.GetUserByUsername(ctx, "PIETER.OWNER")
	assert.False(t, ok)
}

func TestRealtyStore_SearchSuggestions(t *testing.T) {
	ctx := context.Background()
	store := newSeededRealty(t)

	assert.Equal(t,
		[]string{"Cape Town", "Western Cape", "Stellenbosch, Western Cape", "Cape Town, Western Cape"},
		store.SearchSuggestions(ctx, "cape"),
	)
	assert.Equal(t, []string{}, store.SearchSuggestions(ctx, ""))
}

func TestRealtyStore_ConcurrentCreatesGetUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewRealtyStore(nil)

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- store.CreateUser(ctx, domain.NewUser{Username: "u", Email: "e"}).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		assert.True(t, seen[id])
	}
}
