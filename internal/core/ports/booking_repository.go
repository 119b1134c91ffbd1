package ports

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
)

// BookingUpdate carries a partial booking update; nil fields are left
// untouched. Status transitions are validated by the service before the
// repository is asked to persist them.
type BookingUpdate struct {
	Status          *domain.BookingStatus
	PaymentStatus   *domain.PaymentStatus
	TravelDate      *string
	SpecialRequests *string
}

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]domain.Booking, int64, error)
	List(ctx context.Context, status domain.BookingStatus, page, limit int) ([]domain.Booking, int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Booking, error)
	Update(ctx context.Context, id string, b *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
}
