package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	nb := cloneBooking(b)
	nb.ID = fmt.Sprintf("booking-%d", r.nextID)
	r.bookings[nb.ID] = nb
	return cloneBooking(nb), nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]domain.Booking, int64, error) {
	var out []domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubBookingRepo) List(_ context.Context, status domain.BookingStatus, _, _ int) ([]domain.Booking, int64, error) {
	var out []domain.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubBookingRepo) ListRecent(_ context.Context, limit int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.bookings {
		if len(out) == limit {
			break
		}
		out = append(out, *cloneBooking(b))
	}
	return out, nil
}

func (r *stubBookingRepo) Update(_ context.Context, id string, b *domain.Booking) (*domain.Booking, error) {
	if _, ok := r.bookings[id]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	nb := cloneBooking(b)
	nb.ID = id
	r.bookings[id] = nb
	return cloneBooking(nb), nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

func (r *stubBookingRepo) CountByStatus(_ context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type stubPackageRepo struct {
	packages map[string]*domain.TourPackage
	views    map[string]int
	booked   map[string]int
	nextID   int
}

func newStubPackageRepo() *stubPackageRepo {
	return &stubPackageRepo{
		packages: make(map[string]*domain.TourPackage),
		views:    make(map[string]int),
		booked:   make(map[string]int),
	}
}

func clonePackage(p *domain.TourPackage) *domain.TourPackage {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPackageRepo) Create(_ context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	for _, p := range r.packages {
		if p.Slug == pkg.Slug {
			return nil, domain.ErrDuplicateSlug
		}
	}
	r.nextID++
	p := clonePackage(pkg)
	p.ID = fmt.Sprintf("pkg-%d", r.nextID)
	r.packages[p.ID] = p
	return clonePackage(p), nil
}

func (r *stubPackageRepo) FindByID(_ context.Context, id string) (*domain.TourPackage, error) {
	if p, ok := r.packages[id]; ok {
		return clonePackage(p), nil
	}
	return nil, domain.ErrPackageNotFound
}

func (r *stubPackageRepo) FindBySlug(_ context.Context, slug string) (*domain.TourPackage, error) {
	for _, p := range r.packages {
		if p.Slug == slug {
			return clonePackage(p), nil
		}
	}
	return nil, domain.ErrPackageNotFound
}

func (r *stubPackageRepo) List(_ context.Context, filter ports.PackageFilter, _, _ int) ([]domain.TourPackage, int64, error) {
	var out []domain.TourPackage
	for _, p := range r.packages {
		if !p.IsActive {
			continue
		}
		if filter.Region != "" && p.Region != filter.Region {
			continue
		}
		out = append(out, *clonePackage(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubPackageRepo) ListAll(_ context.Context, _, _ int) ([]domain.TourPackage, int64, error) {
	var out []domain.TourPackage
	for _, p := range r.packages {
		out = append(out, *clonePackage(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubPackageRepo) ListFeatured(_ context.Context, limit int) ([]domain.TourPackage, error) {
	var out []domain.TourPackage
	for _, p := range r.packages {
		if p.Featured && p.IsActive && len(out) < limit {
			out = append(out, *clonePackage(p))
		}
	}
	return out, nil
}

func (r *stubPackageRepo) ListByRegion(_ context.Context, region domain.Region, limit int) ([]domain.TourPackage, error) {
	var out []domain.TourPackage
	for _, p := range r.packages {
		if p.Region == region && p.IsActive && len(out) < limit {
			out = append(out, *clonePackage(p))
		}
	}
	return out, nil
}

func (r *stubPackageRepo) Update(_ context.Context, id string, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	if _, ok := r.packages[id]; !ok {
		return nil, domain.ErrPackageNotFound
	}
	p := clonePackage(pkg)
	p.ID = id
	r.packages[id] = p
	return clonePackage(p), nil
}

func (r *stubPackageRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.packages[id]; !ok {
		return domain.ErrPackageNotFound
	}
	delete(r.packages, id)
	return nil
}

func (r *stubPackageRepo) IncrementViews(_ context.Context, id string) error {
	r.views[id]++
	return nil
}

func (r *stubPackageRepo) IncrementBookings(_ context.Context, id string) error {
	r.booked[id]++
	return nil
}

func (r *stubPackageRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.packages)), nil
}

func (r *stubPackageRepo) CountFeaturedActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.packages {
		if p.Featured && p.IsActive {
			n++
		}
	}
	return n, nil
}

func seedPackage(t *testing.T, repo *stubPackageRepo, price float64, active bool) *domain.TourPackage {
	t.Helper()
	pkg, err := repo.Create(context.Background(), &domain.TourPackage{
		Title:           "Backwaters Escape",
		Slug:            "backwaters-escape",
		Region:          domain.RegionKerala,
		BasePricePerPax: price,
		IsActive:        active,
	})
	if err != nil {
		t.Fatalf("seed package: %v", err)
	}
	return pkg
}

func TestBookingService_CreatePricesFromPackage(t *testing.T) {
	bookings := newStubBookingRepo()
	packages := newStubPackageRepo()
	pkg := seedPackage(t, packages, 1500, true)
	svc := NewBookingService(bookings, packages)

	created, err := svc.Create(context.Background(), "user-1", ports.CreateBookingInput{
		PackageID: pkg.ID,
		Passengers: []domain.Passenger{
			{Name: "Ann", Age: 34},
			{Name: "Ben", Age: 36},
			{Name: "Cleo", Age: 8},
		},
		TravelDate: time.Now().Add(30 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if created.TotalAmount != 4500 {
		t.Fatalf("expected total 4500, got %v", created.TotalAmount)
	}
	if created.Status != domain.BookingPending {
		t.Fatalf("new booking must be pending, got %s", created.Status)
	}
	if created.PaymentStatus != domain.PaymentPending {
		t.Fatalf("new booking payment must be pending, got %s", created.PaymentStatus)
	}
	if packages.booked[pkg.ID] != 1 {
		t.Fatalf("expected booking counter bump, got %d", packages.booked[pkg.ID])
	}
}

func TestBookingService_CreateInactivePackage(t *testing.T) {
	bookings := newStubBookingRepo()
	packages := newStubPackageRepo()
	pkg := seedPackage(t, packages, 1500, false)
	svc := NewBookingService(bookings, packages)

	_, err := svc.Create(context.Background(), "user-1", ports.CreateBookingInput{
		PackageID:  pkg.ID,
		Passengers: []domain.Passenger{{Name: "Ann", Age: 34}},
		TravelDate: time.Now(),
	})
	if !errors.Is(err, domain.ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestBookingService_AdminUpdateTransitions(t *testing.T) {
	bookings := newStubBookingRepo()
	packages := newStubPackageRepo()
	pkg := seedPackage(t, packages, 1000, true)
	svc := NewBookingService(bookings, packages)

	created, err := svc.Create(context.Background(), "user-1", ports.CreateBookingInput{
		PackageID:  pkg.ID,
		Passengers: []domain.Passenger{{Name: "Ann", Age: 34}},
		TravelDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	approved := domain.BookingApproved
	updated, err := svc.AdminUpdate(context.Background(), created.ID, ports.AdminUpdateBookingInput{Status: &approved})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != domain.BookingApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}

	// approved -> pending is not a legal transition
	pending := domain.BookingPending
	if _, err := svc.AdminUpdate(context.Background(), created.ID, ports.AdminUpdateBookingInput{Status: &pending}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	completed := domain.BookingCompleted
	if _, err := svc.AdminUpdate(context.Background(), created.ID, ports.AdminUpdateBookingInput{Status: &completed}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// completed is terminal
	cancelled := domain.BookingCancelled
	if _, err := svc.AdminUpdate(context.Background(), created.ID, ports.AdminUpdateBookingInput{Status: &cancelled}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from completed, got %v", err)
	}
}

func TestBookingService_AdminListFiltersStatus(t *testing.T) {
	bookings := newStubBookingRepo()
	packages := newStubPackageRepo()
	pkg := seedPackage(t, packages, 1000, true)
	svc := NewBookingService(bookings, packages)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), "user-1", ports.CreateBookingInput{
			PackageID:  pkg.ID,
			Passengers: []domain.Passenger{{Name: "P", Age: 30}},
			TravelDate: time.Now(),
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := svc.AdminList(context.Background(), domain.BookingPending, 1, 10)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("expected 3 pending bookings, got %d", page.Total)
	}

	page, err = svc.AdminList(context.Background(), domain.BookingApproved, 1, 10)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("expected 0 approved bookings, got %d", page.Total)
	}
}
