package ports

import "context"

// StatsCache is a short-TTL cache for the admin dashboard aggregation.
// A miss (or any cache error) simply falls through to the live queries.
type StatsCache interface {
	Get(ctx context.Context) (*DashboardStats, bool)
	Set(ctx context.Context, stats *DashboardStats)
}
