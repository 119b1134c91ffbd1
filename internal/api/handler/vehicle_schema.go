package handler

import (
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// maxVehicleYear bounds the model year. Next-year models can be registered
// before the calendar rolls over.
func maxVehicleYear() int {
	return time.Now().Year() + 1
}

type driverRequest struct {
	Name          string `json:"name"           validate:"required"`
	Mobile        string `json:"mobile"         validate:"required,len=10,numeric"`
	Experience    int    `json:"experience"     validate:"gte=0"`
	LicenseNumber string `json:"license_number" validate:"required"`
	Description   string `json:"description"`
	Image         string `json:"image"`
}

type createVehicleRequest struct {
	Make            string        `json:"make"               validate:"required"`
	Model           string        `json:"model"              validate:"required"`
	Year            int           `json:"year"               validate:"required,gte=1900"`
	Type            string        `json:"type"               validate:"required,oneof=sedan suv van luxury bus"`
	SeatingCapacity int           `json:"seating_capacity"   validate:"required,gt=0"`
	Features        []string      `json:"features"           validate:"max=20"`
	Description     string        `json:"description"`
	Images          []string      `json:"images"             validate:"max=10"`
	IsAvailable     bool          `json:"is_available"`
	BasePricePerDay float64       `json:"base_price_per_day" validate:"required,gt=0"`
	Driver          driverRequest `json:"driver"             validate:"required"`
}

type driverUpdateRequest struct {
	Name          *string `json:"name"`
	Mobile        *string `json:"mobile"         validate:"omitempty,len=10,numeric"`
	Experience    *int    `json:"experience"`
	LicenseNumber *string `json:"license_number"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
}

type updateVehicleRequest struct {
	Make            *string              `json:"make"`
	Model           *string              `json:"model"`
	Year            *int                 `json:"year"               validate:"omitempty,gte=1900"`
	Type            *string              `json:"type"               validate:"omitempty,oneof=sedan suv van luxury bus"`
	SeatingCapacity *int                 `json:"seating_capacity"   validate:"omitempty,gt=0"`
	Features        *[]string            `json:"features"           validate:"omitempty,max=20"`
	Description     *string              `json:"description"`
	Images          *[]string            `json:"images"             validate:"omitempty,max=10"`
	IsAvailable     *bool                `json:"is_available"`
	BasePricePerDay *float64             `json:"base_price_per_day" validate:"omitempty,gt=0"`
	Driver          *driverUpdateRequest `json:"driver"`
}

type vehicleResponse struct {
	Vehicle *domain.Vehicle `json:"vehicle"`
}

type listVehiclesResponse struct {
	Data []domain.Vehicle `json:"data"`
}
