package handler

import (
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
)

type bookingPassengerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Age      int    `json:"age"      validate:"required,gt=0"`
	Passport string `json:"passport"`
}

type createBookingRequest struct {
	PackageID       string                    `json:"package_id"       validate:"required"`
	Passengers      []bookingPassengerRequest `json:"passengers"       validate:"required,min=1,dive"`
	TravelDate      time.Time                 `json:"travel_date"      validate:"required"`
	SpecialRequests string                    `json:"special_requests"`
}

type adminCreateBookingRequest struct {
	UserID          string                    `json:"user_id"          validate:"required"`
	PackageID       string                    `json:"package_id"       validate:"required"`
	Passengers      []bookingPassengerRequest `json:"passengers"       validate:"required,min=1,dive"`
	TotalAmount     float64                   `json:"total_amount"     validate:"omitempty,gt=0"`
	Status          string                    `json:"status"           validate:"omitempty,oneof=pending approved rejected cancelled completed"`
	PaymentStatus   string                    `json:"payment_status"   validate:"omitempty,oneof=pending paid refunded"`
	TravelDate      time.Time                 `json:"travel_date"      validate:"required"`
	SpecialRequests string                    `json:"special_requests"`
}

type adminUpdateBookingRequest struct {
	Status          *string    `json:"status"           validate:"omitempty,oneof=pending approved rejected cancelled completed"`
	PaymentStatus   *string    `json:"payment_status"   validate:"omitempty,oneof=pending paid refunded"`
	TravelDate      *time.Time `json:"travel_date"`
	SpecialRequests *string    `json:"special_requests"`
}

func toPassengers(reqs []bookingPassengerRequest) []domain.Passenger {
	passengers := make([]domain.Passenger, 0, len(reqs))
	for _, p := range reqs {
		passengers = append(passengers, domain.Passenger{
			Name:     p.Name,
			Age:      p.Age,
			Passport: p.Passport,
		})
	}
	return passengers
}

type bookingResponse struct {
	Booking *domain.Booking `json:"booking"`
}

type listBookingsResponse struct {
	Data       []domain.Booking   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
