package handler

import "github.com/southtrails/tours-api/internal/core/domain"

type itineraryDayRequest struct {
	Day           int      `json:"day" validate:"required,gt=0"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	Meals         []string `json:"meals"`
	Notes         string   `json:"notes"`
}

type packageRequest struct {
	Title              string                `json:"title"                validate:"required"`
	Slug               string                `json:"slug"                 validate:"required"`
	ShortDesc          string                `json:"short_desc"           validate:"required"`
	LongDesc           string                `json:"long_desc"`
	Itinerary          []itineraryDayRequest `json:"itinerary"            validate:"omitempty,dive"`
	MinPax             int                   `json:"min_pax"              validate:"required,gt=0"`
	MaxPax             int                   `json:"max_pax"              validate:"required,gtefield=MinPax"`
	BasePricePerPax    float64               `json:"base_price_per_pax"   validate:"required,gt=0"`
	Images             []string              `json:"images"`
	Region             string                `json:"region"               validate:"required,oneof=kerala tamil-nadu karnataka pondicherry andhra-pradesh"`
	Tags               []string              `json:"tags"`
	Featured           bool                  `json:"featured"`
	Inclusions         []string              `json:"inclusions"`
	Exclusions         []string              `json:"exclusions"`
	CancellationPolicy string                `json:"cancellation_policy"`
	TermsAndConditions string                `json:"terms_and_conditions"`
	CommissionOverride *float64              `json:"commission_override"`
	IsActive           bool                  `json:"is_active"`
}

func (r packageRequest) toDomain() *domain.TourPackage {
	itinerary := make([]domain.ItineraryDay, 0, len(r.Itinerary))
	for _, d := range r.Itinerary {
		itinerary = append(itinerary, domain.ItineraryDay{
			Day:           d.Day,
			Activities:    d.Activities,
			Accommodation: d.Accommodation,
			Meals:         d.Meals,
			Notes:         d.Notes,
		})
	}
	return &domain.TourPackage{
		Title:              r.Title,
		Slug:               r.Slug,
		ShortDesc:          r.ShortDesc,
		LongDesc:           r.LongDesc,
		Itinerary:          itinerary,
		MinPax:             r.MinPax,
		MaxPax:             r.MaxPax,
		BasePricePerPax:    r.BasePricePerPax,
		Images:             r.Images,
		Region:             domain.Region(r.Region),
		Tags:               r.Tags,
		Featured:           r.Featured,
		Inclusions:         r.Inclusions,
		Exclusions:         r.Exclusions,
		CancellationPolicy: r.CancellationPolicy,
		TermsAndConditions: r.TermsAndConditions,
		CommissionOverride: r.CommissionOverride,
		IsActive:           r.IsActive,
	}
}

type packageResponse struct {
	Package *domain.TourPackage `json:"package"`
}

type listPackagesResponse struct {
	Data       []domain.TourPackage `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

type packagesResponse struct {
	Data []domain.TourPackage `json:"data"`
}
