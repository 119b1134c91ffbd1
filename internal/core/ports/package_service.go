package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// PackagePage is a single page of tour packages plus pagination metadata.
type PackagePage struct {
	Packages   []domain.TourPackage
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PackageService defines the public catalogue plus back-office package
// management use cases.
type PackageService interface {
	List(ctx context.Context, filter PackageFilter, page, limit int) (*PackagePage, error)
	Featured(ctx context.Context, limit int) ([]domain.TourPackage, error)
	ByRegion(ctx context.Context, region domain.Region, limit int) ([]domain.TourPackage, error)
	// BySlug returns an active package and increments its view counter.
	BySlug(ctx context.Context, slug string) (*domain.TourPackage, error)
	AdminList(ctx context.Context, page, limit int) (*PackagePage, error)
	AdminGet(ctx context.Context, id string) (*domain.TourPackage, error)
	Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error)
	Update(ctx context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error)
	Delete(ctx context.Context, id string) error
}
