package domain

import "time"

// Property - объявление вида "дом/квартира на продажу или в аренду".
type Property struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zipCode"`
	Price         string    `json:"price"`
	PropertyType  string    `json:"propertyType"`
	ListingType   string    `json:"listingType"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	SquareFootage *int      `json:"squareFootage"`
	YearBuilt     *int      `json:"yearBuilt"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	OwnerID       int       `json:"ownerId"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type NewProperty struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zipCode"`
	Price         string   `json:"price"`
	PropertyType  string   `json:"propertyType"`
	ListingType   string   `json:"listingType"`
	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *int     `json:"bathrooms,omitempty"`
	SquareFootage *int     `json:"squareFootage,omitempty"`
	YearBuilt     *int     `json:"yearBuilt,omitempty"`
	Images        []string `json:"images,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	OwnerID       int      `json:"ownerId"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

// PropertyPatch - частичное обновление. nil означает "поле не меняется".
type PropertyPatch struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Address       *string   `json:"address,omitempty"`
	City          *string   `json:"city,omitempty"`
	State         *string   `json:"state,omitempty"`
	ZipCode       *string   `json:"zipCode,omitempty"`
	Price         *string   `json:"price,omitempty"`
	PropertyType  *string   `json:"propertyType,omitempty"`
	ListingType   *string   `json:"listingType,omitempty"`
	Bedrooms      *int      `json:"bedrooms,omitempty"`
	Bathrooms     *int      `json:"bathrooms,omitempty"`
	SquareFootage *int      `json:"squareFootage,omitempty"`
	YearBuilt     *int      `json:"yearBuilt,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	Amenities     *[]string `json:"amenities,omitempty"`
	OwnerID       *int      `json:"ownerId,omitempty"`
	IsActive      *bool     `json:"isActive,omitempty"`
}

// PropertyFilters - критерии поиска. Пустая строка или nil - фильтр не задан.
type PropertyFilters struct {
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	PropertyType string   `json:"propertyType,omitempty"`
	ListingType  string   `json:"listingType,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
}

func (p Property) Clone() Property {
	p.Bedrooms = clonePtr(p.Bedrooms)
	p.Bathrooms = clonePtr(p.Bathrooms)
	p.SquareFootage = clonePtr(p.SquareFootage)
	p.YearBuilt = clonePtr(p.YearBuilt)
	p.Images = cloneStrings(p.Images)
	p.Amenities = cloneStrings(p.Amenities)
	return p
}

// Apply накладывает патч на копию объявления и возвращает результат.
func (p Property) Apply(patch PropertyPatch) Property {
	out := p.Clone()
	setIfPresent(&out.Title, patch.Title)
	setIfPresent(&out.Description, patch.Description)
	setIfPresent(&out.Address, patch.Address)
	setIfPresent(&out.City, patch.City)
	setIfPresent(&out.State, patch.State)
	setIfPresent(&out.ZipCode, patch.ZipCode)
	setIfPresent(&out.Price, patch.Price)
	setIfPresent(&out.PropertyType, patch.PropertyType)
	setIfPresent(&out.ListingType, patch.ListingType)
	setPtrIfPresent(&out.Bedrooms, patch.Bedrooms)
	setPtrIfPresent(&out.Bathrooms, patch.Bathrooms)
	setPtrIfPresent(&out.SquareFootage, patch.SquareFootage)
	setPtrIfPresent(&out.YearBuilt, patch.YearBuilt)
	setSliceIfPresent(&out.Images, patch.Images)
	setSliceIfPresent(&out.Amenities, patch.Amenities)
	setIfPresent(&out.OwnerID, patch.OwnerID)
	setIfPresent(&out.IsActive, patch.IsActive)
	return out
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtrIfPresent[T any](dst **T, v *T) {
	if v != nil {
		*dst = clonePtr(v)
	}
}

func setSliceIfPresent(dst *[]string, v *[]string) {
	if v != nil {
		*dst = cloneStrings(*v)
	}
}
