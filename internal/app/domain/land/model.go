// Package land defines lease-able property records and their browse filters.
package land

import (
	"fmt"
	"strings"
	"time"
)

// SoilType enumerates the soil classifications a listing may carry.
type SoilType string

const (
	SoilLoamy    SoilType = "loamy"
	SoilClay     SoilType = "clay"
	SoilSandy    SoilType = "sandy"
	SoilRed      SoilType = "red"
	SoilBlack    SoilType = "black"
	SoilAlluvial SoilType = "alluvial"
)

// Valid reports whether the soil type is one of the defined values.
func (s SoilType) Valid() bool {
	switch s {
	case SoilLoamy, SoilClay, SoilSandy, SoilRed, SoilBlack, SoilAlluvial:
		return true
	}
	return false
}

// WaterSource enumerates irrigation sources.
type WaterSource string

const (
	WaterBorewell WaterSource = "borewell"
	WaterCanal    WaterSource = "canal"
	WaterRiver    WaterSource = "river"
	WaterRainwater WaterSource = "rainwater"
	WaterMixed    WaterSource = "mixed"
)

// Valid reports whether the water source is one of the defined values.
func (w WaterSource) Valid() bool {
	switch w {
	case WaterBorewell, WaterCanal, WaterRiver, WaterRainwater, WaterMixed:
		return true
	}
	return false
}

// Location pins a land parcel to an administrative area.
type Location struct {
	State    string `json:"state"`
	District string `json:"district"`
	Village  string `json:"village"`
	Pincode  string `json:"pincode"`
}

// Land is a lease-able property. Owner name and mobile are a snapshot taken
// when the listing is created; they are not kept in sync with the owner
// record afterwards.
type Land struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"ownerId"`
	OwnerName   string      `json:"ownerName"`
	OwnerMobile string      `json:"ownerMobile"`
	Title       string      `json:"title"`
	Location    Location    `json:"location"`
	Latitude    *float64    `json:"latitude,omitempty"`
	Longitude   *float64    `json:"longitude,omitempty"`
	Area        float64     `json:"area"`
	SoilType    SoilType    `json:"soilType"`
	WaterSource WaterSource `json:"waterSource"`
	Crops       []string    `json:"crops"`
	PricePerAcre  float64   `json:"pricePerAcre"`
	PricePerMonth float64   `json:"pricePerMonth"`
	MinLeasePeriod int      `json:"minLeasePeriod"`
	MaxLeasePeriod int      `json:"maxLeasePeriod"`
	Description string      `json:"description"`
	Images      []string    `json:"images"`
	Available   bool        `json:"available"`
	Facilities  []string    `json:"facilities"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Clone returns a deep copy of the land record.
func (l Land) Clone() Land {
	l.Crops = append([]string(nil), l.Crops...)
	l.Images = append([]string(nil), l.Images...)
	l.Facilities = append([]string(nil), l.Facilities...)
	if l.Latitude != nil {
		lat := *l.Latitude
		l.Latitude = &lat
	}
	if l.Longitude != nil {
		lng := *l.Longitude
		l.Longitude = &lng
	}
	return l
}

// Input carries the caller-supplied fields of a new listing. The backend
// assigns ID and CreatedAt.
type Input struct {
	OwnerID     string
	OwnerName   string
	OwnerMobile string
	Title       string
	Location    Location
	Latitude    *float64
	Longitude   *float64
	Area        float64
	SoilType    SoilType
	WaterSource WaterSource
	Crops       []string
	PricePerAcre  float64
	PricePerMonth float64
	MinLeasePeriod int
	MaxLeasePeriod int
	Description string
	Images      []string
	Available   bool
	Facilities  []string
}

// Validate checks the structural invariants of a new listing.
func (in Input) Validate() error {
	if strings.TrimSpace(in.OwnerID) == "" {
		return fmt.Errorf("owner id is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if in.Area <= 0 {
		return fmt.Errorf("area must be positive, got %v", in.Area)
	}
	if !in.SoilType.Valid() {
		return fmt.Errorf("unknown soil type %q", in.SoilType)
	}
	if !in.WaterSource.Valid() {
		return fmt.Errorf("unknown water source %q", in.WaterSource)
	}
	if in.PricePerAcre < 0 || in.PricePerMonth < 0 {
		return fmt.Errorf("prices must be non-negative")
	}
	if in.MinLeasePeriod < 0 || in.MaxLeasePeriod < 0 {
		return fmt.Errorf("lease periods must be non-negative")
	}
	if in.MinLeasePeriod > in.MaxLeasePeriod {
		return fmt.Errorf("min lease period %d exceeds max %d", in.MinLeasePeriod, in.MaxLeasePeriod)
	}
	return nil
}

// Filters narrow the browse view. Zero values mean "no constraint" for State
// and SoilType; the price band is always applied.
type Filters struct {
	State    string
	SoilType string
	MinPrice float64
	MaxPrice float64
}

// DefaultFilters returns the unconstrained browse filters.
func DefaultFilters() Filters {
	return Filters{MinPrice: 0, MaxPrice: 100000}
}

// Matches reports whether a land satisfies the filters. All dimensions are
// conjunctive and unavailable listings never match.
func (f Filters) Matches(l Land) bool {
	if !l.Available {
		return false
	}
	if f.State != "" && l.Location.State != f.State {
		return false
	}
	if f.SoilType != "" && string(l.SoilType) != f.SoilType {
		return false
	}
	if l.PricePerMonth < f.MinPrice || l.PricePerMonth > f.MaxPrice {
		return false
	}
	return true
}
