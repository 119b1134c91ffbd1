package service

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

const (
	defaultFeaturedLimit = 6
	defaultRegionLimit   = 10
)

// PackageService implements the public catalogue and back-office package
// management.
type PackageService struct {
	packages ports.PackageRepository
}

func NewPackageService(packages ports.PackageRepository) *PackageService {
	return &PackageService{packages: packages}
}

// List returns active packages matching the filter, newest first (featured
// first when the filter asks for featured packages).
func (s *PackageService) List(ctx context.Context, filter ports.PackageFilter, page, limit int) (*ports.PackagePage, error) {
	page, limit = normalizePage(page, limit, 10)
	packages, total, err := s.packages.List(ctx, filter, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.PackagePage{
		Packages:   packages,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *PackageService) Featured(ctx context.Context, limit int) ([]domain.TourPackage, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return s.packages.ListFeatured(ctx, limit)
}

func (s *PackageService) ByRegion(ctx context.Context, region domain.Region, limit int) ([]domain.TourPackage, error) {
	if !region.Valid() {
		return []domain.TourPackage{}, nil
	}
	if limit <= 0 {
		limit = defaultRegionLimit
	}
	return s.packages.ListByRegion(ctx, region, limit)
}

// BySlug returns an active package and bumps its view counter. The counter
// update is best-effort: a failed increment does not fail the read.
func (s *PackageService) BySlug(ctx context.Context, slug string) (*domain.TourPackage, error) {
	pkg, err := s.packages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, domain.ErrPackageNotFound
	}

	_ = s.packages.IncrementViews(ctx, pkg.ID)
	pkg.ViewCount++
	return pkg, nil
}

// AdminList returns all packages including inactive ones.
func (s *PackageService) AdminList(ctx context.Context, page, limit int) (*ports.PackagePage, error) {
	page, limit = normalizePage(page, limit, 20)
	packages, total, err := s.packages.ListAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.PackagePage{
		Packages:   packages,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *PackageService) AdminGet(ctx context.Context, id string) (*domain.TourPackage, error) {
	return s.packages.FindByID(ctx, id)
}

func (s *PackageService) Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	now := nowUTC()
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	pkg.ViewCount = 0
	pkg.BookingCount = 0
	return s.packages.Create(ctx, pkg)
}

func (s *PackageService) Update(ctx context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	pkg.UpdatedAt = nowUTC()
	return s.packages.Update(ctx, id, pkg)
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	return s.packages.Delete(ctx, id)
}
