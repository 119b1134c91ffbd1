package domain

import "time"

// Region is the closed set of destinations a tour package can cover.
type Region string

const (
	RegionKerala        Region = "kerala"
	RegionTamilNadu     Region = "tamil-nadu"
	RegionKarnataka     Region = "karnataka"
	RegionPondicherry   Region = "pondicherry"
	RegionAndhraPradesh Region = "andhra-pradesh"
)

// Valid reports whether r is one of the known regions.
func (r Region) Valid() bool {
	switch r {
	case RegionKerala, RegionTamilNadu, RegionKarnataka, RegionPondicherry, RegionAndhraPradesh:
		return true
	}
	return false
}

// ItineraryDay describes a single day of a tour itinerary.
type ItineraryDay struct {
	Day           int      `json:"day" bson:"day"`
	Activities    []string `json:"activities" bson:"activities"`
	Accommodation string   `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
	Meals         []string `json:"meals" bson:"meals"`
	Notes         string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

// TourPackage is the sellable tour product shown on the marketing site.
type TourPackage struct {
	ID                 string         `json:"id" bson:"_id,omitempty"`
	Title              string         `json:"title" bson:"title"`
	Slug               string         `json:"slug" bson:"slug"`
	ShortDesc          string         `json:"short_desc" bson:"short_desc"`
	LongDesc           string         `json:"long_desc" bson:"long_desc"`
	Itinerary          []ItineraryDay `json:"itinerary" bson:"itinerary"`
	MinPax             int            `json:"min_pax" bson:"min_pax"`
	MaxPax             int            `json:"max_pax" bson:"max_pax"`
	BasePricePerPax    float64        `json:"base_price_per_pax" bson:"base_price_per_pax"`
	Images             []string       `json:"images" bson:"images"`
	Region             Region         `json:"region" bson:"region"`
	Tags               []string       `json:"tags" bson:"tags"`
	Featured           bool           `json:"featured" bson:"featured"`
	Inclusions         []string       `json:"inclusions" bson:"inclusions"`
	Exclusions         []string       `json:"exclusions" bson:"exclusions"`
	CancellationPolicy string         `json:"cancellation_policy,omitempty" bson:"cancellation_policy,omitempty"`
	TermsAndConditions string         `json:"terms_and_conditions,omitempty" bson:"terms_and_conditions,omitempty"`
	CommissionOverride *float64       `json:"commission_override,omitempty" bson:"commission_override,omitempty"`
	IsActive           bool           `json:"is_active" bson:"is_active"`
	ViewCount          int64          `json:"view_count" bson:"view_count"`
	BookingCount       int64          `json:"booking_count" bson:"booking_count"`
	CreatedAt          time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" bson:"updated_at"`
}
