package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// DriverUpdate is a partial update of a vehicle's embedded driver; nil fields
// keep their current value.
type DriverUpdate struct {
	Name          *string
	Mobile        *string
	Experience    *int
	LicenseNumber *string
	Description   *string
	Image         *string
}

// VehicleUpdateInput is a partial vehicle update; nil fields keep their
// current value. A non-nil Driver is merged field-by-field onto the stored
// driver rather than replacing it wholesale.
type VehicleUpdateInput struct {
	Make            *string
	Model           *string
	Year            *int
	Type            *domain.VehicleType
	SeatingCapacity *int
	Features        *[]string
	Description     *string
	Images          *[]string
	IsAvailable     *bool
	BasePricePerDay *float64
	Driver          *DriverUpdate
}

// VehicleService defines fleet management use cases.
type VehicleService interface {
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, id string, input VehicleUpdateInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	ToggleAvailability(ctx context.Context, id string) (*domain.Vehicle, error)
}
