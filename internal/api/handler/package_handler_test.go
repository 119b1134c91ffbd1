package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

type stubPackageService struct {
	listFn     func(ctx context.Context, filter ports.PackageFilter, page, limit int) (*ports.PackagePage, error)
	featuredFn func(ctx context.Context, limit int) ([]domain.TourPackage, error)
	bySlugFn   func(ctx context.Context, slug string) (*domain.TourPackage, error)
}

func (s *stubPackageService) List(ctx context.Context, filter ports.PackageFilter, page, limit int) (*ports.PackagePage, error) {
	return s.listFn(ctx, filter, page, limit)
}

func (s *stubPackageService) Featured(ctx context.Context, limit int) ([]domain.TourPackage, error) {
	return s.featuredFn(ctx, limit)
}

func (s *stubPackageService) ByRegion(ctx context.Context, region domain.Region, limit int) ([]domain.TourPackage, error) {
	return nil, nil
}

func (s *stubPackageService) BySlug(ctx context.Context, slug string) (*domain.TourPackage, error) {
	return s.bySlugFn(ctx, slug)
}

func (s *stubPackageService) AdminList(ctx context.Context, page, limit int) (*ports.PackagePage, error) {
	return &ports.PackagePage{}, nil
}

func (s *stubPackageService) AdminGet(ctx context.Context, id string) (*domain.TourPackage, error) {
	return nil, domain.ErrPackageNotFound
}

func (s *stubPackageService) Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	return pkg, nil
}

func (s *stubPackageService) Update(ctx context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	return pkg, nil
}

func (s *stubPackageService) Delete(ctx context.Context, id string) error {
	return nil
}

func TestPackageHandler_List_ParsesFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubPackageService{
		listFn: func(ctx context.Context, filter ports.PackageFilter, page, limit int) (*ports.PackagePage, error) {
			if filter.Region != domain.RegionKerala {
				t.Fatalf("unexpected region: %s", filter.Region)
			}
			if filter.MinPrice != 100 || filter.MaxPrice != 500 {
				t.Fatalf("unexpected price range: %v-%v", filter.MinPrice, filter.MaxPrice)
			}
			if filter.Featured == nil || !*filter.Featured {
				t.Fatalf("expected featured filter to be set")
			}
			if page != 3 || limit != 12 {
				t.Fatalf("unexpected paging: page=%d limit=%d", page, limit)
			}
			return &ports.PackagePage{Packages: []domain.TourPackage{}, Page: page, Limit: limit}, nil
		},
	}
	h := NewPackageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/packages?region=kerala&min_price=100&max_price=500&featured=true&page=3&limit=12", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPackageHandler_BySlug_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPackageService{
		bySlugFn: func(ctx context.Context, slug string) (*domain.TourPackage, error) {
			if slug != "kerala-backwaters" {
				t.Fatalf("unexpected slug: %s", slug)
			}
			return &domain.TourPackage{Slug: slug, Title: "Kerala Backwaters", IsActive: true}, nil
		},
	}
	h := NewPackageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/packages/kerala-backwaters", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("kerala-backwaters")

	if err := h.BySlug(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	pkg, ok := resp["package"].(map[string]any)
	if !ok || pkg["slug"] != "kerala-backwaters" {
		t.Fatalf("unexpected package payload: %+v", pkg)
	}
}

func TestPackageHandler_BySlug_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubPackageService{
		bySlugFn: func(ctx context.Context, slug string) (*domain.TourPackage, error) {
			return nil, domain.ErrPackageNotFound
		},
	}
	h := NewPackageHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/packages/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("ghost")

	if err := h.BySlug(c); !errors.Is(err, domain.ErrPackageNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
