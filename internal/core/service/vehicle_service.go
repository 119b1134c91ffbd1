package service

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// VehicleService implements fleet management.
type VehicleService struct {
	vehicles ports.VehicleRepository
}

func NewVehicleService(vehicles ports.VehicleRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

func (s *VehicleService) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx, filter)
}

func (s *VehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	now := nowUTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Features == nil {
		v.Features = []string{}
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	return s.vehicles.Create(ctx, v)
}

// Update applies a partial update. The embedded driver is merged
// field-by-field so updating one driver attribute does not erase the rest.
func (s *VehicleService) Update(ctx context.Context, id string, input ports.VehicleUpdateInput) (*domain.Vehicle, error) {
	current, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Make != nil {
		current.Make = *input.Make
	}
	if input.Model != nil {
		current.Model = *input.Model
	}
	if input.Year != nil {
		current.Year = *input.Year
	}
	if input.Type != nil {
		current.Type = *input.Type
	}
	if input.SeatingCapacity != nil {
		current.SeatingCapacity = *input.SeatingCapacity
	}
	if input.Features != nil {
		current.Features = *input.Features
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Images != nil {
		current.Images = *input.Images
	}
	if input.IsAvailable != nil {
		current.IsAvailable = *input.IsAvailable
	}
	if input.BasePricePerDay != nil {
		current.BasePricePerDay = *input.BasePricePerDay
	}
	if input.Driver != nil {
		mergeDriver(&current.Driver, input.Driver)
	}
	current.UpdatedAt = nowUTC()

	return s.vehicles.Update(ctx, id, current)
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}

func (s *VehicleService) ToggleAvailability(ctx context.Context, id string) (*domain.Vehicle, error) {
	current, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current.IsAvailable = !current.IsAvailable
	current.UpdatedAt = nowUTC()
	return s.vehicles.Update(ctx, id, current)
}

func mergeDriver(dst *domain.Driver, src *ports.DriverUpdate) {
	if src.Name != nil {
		dst.Name = *src.Name
	}
	if src.Mobile != nil {
		dst.Mobile = *src.Mobile
	}
	if src.Experience != nil {
		dst.Experience = *src.Experience
	}
	if src.LicenseNumber != nil {
		dst.LicenseNumber = *src.LicenseNumber
	}
	if src.Description != nil {
		dst.Description = *src.Description
	}
	if src.Image != nil {
		dst.Image = *src.Image
	}
}
