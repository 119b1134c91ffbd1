package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// DashboardOverview is the headline counters block of the admin dashboard.
type DashboardOverview struct {
	TotalUsers       int64 `json:"total_users"`
	TotalPackages    int64 `json:"total_packages"`
	TotalBookings    int64 `json:"total_bookings"`
	PendingBookings  int64 `json:"pending_bookings"`
	ActiveUsers      int64 `json:"active_users"`
	FeaturedPackages int64 `json:"featured_packages"`
}

// DashboardStats is the full admin dashboard payload.
type DashboardStats struct {
	Overview       DashboardOverview `json:"overview"`
	RecentBookings []domain.Booking  `json:"recent_bookings"`
}

// DashboardService aggregates back-office statistics.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
