package bookingRepo

import "skyline/models"

// CommitInput is everything the store needs to confirm a booking.
type CommitInput struct {
	CustomerID    int64
	FlightID      int64
	Seat          string
	Price         float64
	PaymentMethod string
	PNR           string
}

// BookingRepository persists bookings and payments.
type BookingRepository interface {
	// Commit creates a booking and its payment record and decrements the
	// flight's available seats, all atomically. The decrement is guarded so
	// the count can never go negative. Returns the new booking id.
	Commit(in CommitInput) (int64, error)

	// GetByID returns the booking with its flight, scoped to the customer.
	// Returns (nil, nil) when no such booking exists.
	GetByID(bookingID, customerID int64) (*models.BookingDetail, error)

	// ListByCustomer returns all of a customer's bookings with flight
	// details, ordered by departure time descending.
	ListByCustomer(customerID int64) ([]models.BookingDetail, error)

	// LatestByCustomer returns the customer's most recent confirmed or
	// completed booking, or (nil, nil) when there is none.
	LatestByCustomer(customerID int64) (*models.BookingDetail, error)
}
