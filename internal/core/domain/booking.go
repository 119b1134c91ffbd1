package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingApproved, BookingRejected, BookingCancelled},
	BookingApproved: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks how far payment for a booking has progressed.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Valid reports whether p is one of the known payment statuses.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Passenger is a traveller included in a booking.
type Passenger struct {
	Name     string `json:"name" bson:"name"`
	Age      int    `json:"age" bson:"age"`
	Passport string `json:"passport,omitempty" bson:"passport,omitempty"`
}

// Booking ties a user to a tour package for a travel date.
type Booking struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	UserID          string        `json:"user_id" bson:"user_id"`
	PackageID       string        `json:"package_id" bson:"package_id"`
	Passengers      []Passenger   `json:"passengers" bson:"passengers"`
	TotalAmount     float64       `json:"total_amount" bson:"total_amount"`
	Status          BookingStatus `json:"status" bson:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status" bson:"payment_status"`
	BookingDate     time.Time     `json:"booking_date" bson:"booking_date"`
	TravelDate      time.Time     `json:"travel_date" bson:"travel_date"`
	SpecialRequests string        `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
