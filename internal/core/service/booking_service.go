package service

import (
	"context"

	"github.com/southtrails/tours-api/internal/core/domain"
	"github.com/southtrails/tours-api/internal/core/ports"
)

// BookingService implements self-service and back-office booking flows.
type BookingService struct {
	bookings ports.BookingRepository
	packages ports.PackageRepository
}

func NewBookingService(bookings ports.BookingRepository, packages ports.PackageRepository) *BookingService {
	return &BookingService{bookings: bookings, packages: packages}
}

func (s *BookingService) ListForUser(ctx context.Context, userID string, page, limit int) (*ports.BookingPage, error) {
	page, limit = normalizePage(page, limit, 10)
	bookings, total, err := s.bookings.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.BookingPage{
		Bookings:   bookings,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Create prices the booking from the live package, stores it as pending and
// bumps the package's booking counter.
func (s *BookingService) Create(ctx context.Context, userID string, input ports.CreateBookingInput) (*domain.Booking, error) {
	pkg, err := s.packages.FindByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.IsActive {
		return nil, domain.ErrPackageNotFound
	}

	now := nowUTC()
	booking := &domain.Booking{
		UserID:          userID,
		PackageID:       pkg.ID,
		Passengers:      input.Passengers,
		TotalAmount:     float64(len(input.Passengers)) * pkg.BasePricePerPax,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		BookingDate:     now,
		TravelDate:      input.TravelDate,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Counter update is best-effort; the booking itself is already stored.
	_ = s.packages.IncrementBookings(ctx, pkg.ID)

	return created, nil
}

func (s *BookingService) AdminList(ctx context.Context, status domain.BookingStatus, page, limit int) (*ports.BookingPage, error) {
	page, limit = normalizePage(page, limit, 20)
	bookings, total, err := s.bookings.List(ctx, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &ports.BookingPage{
		Bookings:   bookings,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *BookingService) AdminGet(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) AdminCreate(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	now := nowUTC()
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = domain.PaymentPending
	}
	if !b.Status.Valid() || !b.PaymentStatus.Valid() {
		return nil, domain.ErrInvalidTransition
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = now
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return s.bookings.Create(ctx, b)
}

// AdminUpdate applies a partial update. Status changes must follow the
// booking state machine.
func (s *BookingService) AdminUpdate(ctx context.Context, id string, input ports.AdminUpdateBookingInput) (*domain.Booking, error) {
	current, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != current.Status {
		if !input.Status.Valid() || !current.Status.CanTransitionTo(*input.Status) {
			return nil, domain.ErrInvalidTransition
		}
		current.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			return nil, domain.ErrInvalidTransition
		}
		current.PaymentStatus = *input.PaymentStatus
	}
	if input.TravelDate != nil {
		current.TravelDate = *input.TravelDate
	}
	if input.SpecialRequests != nil {
		current.SpecialRequests = *input.SpecialRequests
	}
	current.UpdatedAt = nowUTC()

	return s.bookings.Update(ctx, id, current)
}

func (s *BookingService) AdminDelete(ctx context.Context, id string) error {
	return s.bookings.Delete(ctx, id)
}
