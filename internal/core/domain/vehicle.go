package domain

import "time"

// VehicleType is the closed set of fleet vehicle categories.
type VehicleType string

const (
	VehicleSedan  VehicleType = "sedan"
	VehicleSUV    VehicleType = "suv"
	VehicleVan    VehicleType = "van"
	VehicleLuxury VehicleType = "luxury"
	VehicleBus    VehicleType = "bus"
)

// Valid reports whether t is one of the known vehicle types.
func (t VehicleType) Valid() bool {
	switch t {
	case VehicleSedan, VehicleSUV, VehicleVan, VehicleLuxury, VehicleBus:
		return true
	}
	return false
}

// Driver is the assigned driver embedded in a vehicle document.
type Driver struct {
	Name          string `json:"name" bson:"name"`
	Mobile        string `json:"mobile" bson:"mobile"`
	Experience    int    `json:"experience" bson:"experience"`
	LicenseNumber string `json:"license_number" bson:"license_number"`
	Description   string `json:"description,omitempty" bson:"description,omitempty"`
	Image         string `json:"image,omitempty" bson:"image,omitempty"`
}

// Vehicle is a fleet vehicle available for tour transport.
type Vehicle struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Make            string      `json:"make" bson:"make"`
	Model           string      `json:"model" bson:"model"`
	Year            int         `json:"year" bson:"year"`
	Type            VehicleType `json:"type" bson:"type"`
	SeatingCapacity int         `json:"seating_capacity" bson:"seating_capacity"`
	Features        []string    `json:"features" bson:"features"`
	Description     string      `json:"description" bson:"description"`
	Images          []string    `json:"images" bson:"images"`
	IsAvailable     bool        `json:"is_available" bson:"is_available"`
	BasePricePerDay float64     `json:"base_price_per_day" bson:"base_price_per_day"`
	Driver          Driver      `json:"driver" bson:"driver"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}
