package service

import (
	"context"
	"testing"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

type stubStatsCache struct {
	stats *ports.DashboardStats
	sets  int
}

func (c *stubStatsCache) Get(_ context.Context) (*ports.DashboardStats, bool) {
	return c.stats, c.stats != nil
}

func (c *stubStatsCache) Set(_ context.Context, stats *ports.DashboardStats) {
	c.stats = stats
	c.sets++
}

func TestDashboardService_Stats(t *testing.T) {
	users := newStubUserRepo()
	packages := newStubPackageRepo()
	bookings := newStubBookingRepo()
	cache := &stubStatsCache{}

	userSvc := NewUserService(users)
	adminCreate(t, userSvc, domain.RoleAdmin)

	pkg := seedPackage(t, packages, 1000, true)
	bookingSvc := NewBookingService(bookings, packages)
	if _, err := bookingSvc.Create(context.Background(), "user-1", ports.CreateBookingInput{
		PackageID:  pkg.ID,
		Passengers: []domain.Passenger{{Name: "Ann", Age: 34}},
		TravelDate: time.Now(),
	}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	svc := NewDashboardService(users, packages, bookings, cache)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Overview.TotalUsers != 1 || stats.Overview.ActiveUsers != 1 {
		t.Fatalf("unexpected user counts: %+v", stats.Overview)
	}
	if stats.Overview.TotalBookings != 1 || stats.Overview.PendingBookings != 1 {
		t.Fatalf("unexpected booking counts: %+v", stats.Overview)
	}
	if len(stats.RecentBookings) != 1 {
		t.Fatalf("expected 1 recent booking, got %d", len(stats.RecentBookings))
	}
	if cache.sets != 1 {
		t.Fatalf("expected stats to be cached once, got %d", cache.sets)
	}

	// A second call is served from the cache without hitting the repos.
	if _, err := svc.Stats(context.Background()); err != nil {
		t.Fatalf("Stats (cached): %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit must not re-set, got %d sets", cache.sets)
	}
}
