package service

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

const recentBookingsLimit = 5

// DashboardService aggregates the back-office overview counters. Results are
// served from the stats cache when fresh enough.
type DashboardService struct {
	users    ports.UserRepository
	packages ports.PackageRepository
	bookings ports.BookingRepository
	cache    ports.StatsCache
}

// NewDashboardService builds a DashboardService. cache may be nil, in which
// case every call runs the live queries.
func NewDashboardService(users ports.UserRepository, packages ports.PackageRepository, bookings ports.BookingRepository, cache ports.StatsCache) *DashboardService {
	return &DashboardService{users: users, packages: packages, bookings: bookings, cache: cache}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx); ok {
			return stats, nil
		}
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.users.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalPackages, err := s.packages.Count(ctx)
	if err != nil {
		return nil, err
	}
	featuredPackages, err := s.packages.CountFeaturedActive(ctx)
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingBookings, err := s.bookings.CountByStatus(ctx, domain.BookingPending)
	if err != nil {
		return nil, err
	}
	recent, err := s.bookings.ListRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		Overview: ports.DashboardOverview{
			TotalUsers:       totalUsers,
			TotalPackages:    totalPackages,
			TotalBookings:    totalBookings,
			PendingBookings:  pendingBookings,
			ActiveUsers:      activeUsers,
			FeaturedPackages: featuredPackages,
		},
		RecentBookings: recent,
	}

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return stats, nil
}
