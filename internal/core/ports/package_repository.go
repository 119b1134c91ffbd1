package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// PackageFilter narrows the public package listing.
type PackageFilter struct {
	Region   domain.Region
	MinPrice float64
	MaxPrice float64
	MinPax   int
	Featured *bool
	Search   string
}

// PackageRepository defines persistence for tour packages.
//
// Create must report a unique-index violation on slug as domain.ErrDuplicateSlug.
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error)
	FindByID(ctx context.Context, id string) (*domain.TourPackage, error)
	FindBySlug(ctx context.Context, slug string) (*domain.TourPackage, error)
	List(ctx context.Context, filter PackageFilter, page, limit int) ([]domain.TourPackage, int64, error)
	ListAll(ctx context.Context, page, limit int) ([]domain.TourPackage, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.TourPackage, error)
	ListByRegion(ctx context.Context, region domain.Region, limit int) ([]domain.TourPackage, error)
	Update(ctx context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementBookings(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountFeaturedActive(ctx context.Context) (int64, error)
}
