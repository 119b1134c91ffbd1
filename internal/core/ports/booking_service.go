package ports

import (
	"context"
	"time"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// CreateBookingInput carries the self-service booking payload. TotalAmount is
// never accepted from the client: the service prices the booking from the
// live package.
type CreateBookingInput struct {
	PackageID       string
	Passengers      []domain.Passenger
	TravelDate      time.Time
	SpecialRequests string
}

// AdminUpdateBookingInput is the back-office partial update; nil fields are
// left untouched.
type AdminUpdateBookingInput struct {
	Status          *domain.BookingStatus
	PaymentStatus   *domain.PaymentStatus
	TravelDate      *time.Time
	SpecialRequests *string
}

// BookingPage is a single page of bookings plus pagination metadata.
type BookingPage struct {
	Bookings   []domain.Booking
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookingService defines self-service and back-office booking use cases.
type BookingService interface {
	ListForUser(ctx context.Context, userID string, page, limit int) (*BookingPage, error)
	Create(ctx context.Context, userID string, input CreateBookingInput) (*domain.Booking, error)
	AdminList(ctx context.Context, status domain.BookingStatus, page, limit int) (*BookingPage, error)
	AdminGet(ctx context.Context, id string) (*domain.Booking, error)
	AdminCreate(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	AdminUpdate(ctx context.Context, id string, input AdminUpdateBookingInput) (*domain.Booking, error)
	AdminDelete(ctx context.Context, id string) error
}
