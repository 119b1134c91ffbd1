package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// VehicleFilter narrows the vehicle listing.
type VehicleFilter struct {
	Type        domain.VehicleType
	MinSeats    int
	MaxPrice    float64
	IsAvailable *bool
	Search      string
}

// VehicleRepository defines persistence for fleet vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	Update(ctx context.Context, id string, v *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
