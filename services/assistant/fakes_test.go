package assistant

import (
	"context"
	"strings"

	bookingRepo "skyline/database/repository/booking"
	"skyline/models"
)

// fakeFlightRepo serves canned flights and records the filters it was asked.
type fakeFlightRepo struct {
	flights  []models.Flight
	err      error
	byNumber map[string]models.Flight
	queries  [][3]string
}

func (f *fakeFlightRepo) Search(origin, destination, date string) ([]models.Flight, error) {
	f.queries = append(f.queries, [3]string{origin, destination, date})
	if f.err != nil {
		return nil, f.err
	}
	return f.flights, nil
}

func (f *fakeFlightRepo) GetByNumber(flightNumber string) (*models.Flight, error) {
	if f.err != nil {
		return nil, f.err
	}
	fl, ok := f.byNumber[strings.ToUpper(flightNumber)]
	if !ok {
		return nil, nil
	}
	return &fl, nil
}

// fakeBookingRepo records commits and serves canned booking details.
type fakeBookingRepo struct {
	commits   []bookingRepo.CommitInput
	commitErr error
	nextID    int64
	detail    *models.BookingDetail
	list      []models.BookingDetail
	latest    *models.BookingDetail
}

func (f *fakeBookingRepo) Commit(in bookingRepo.CommitInput) (int64, error) {
	if f.commitErr != nil {
		return 0, f.commitErr
	}
	f.commits = append(f.commits, in)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeBookingRepo) GetByID(bookingID, customerID int64) (*models.BookingDetail, error) {
	if f.detail != nil && f.detail.BookingID == bookingID && f.detail.CustomerID == customerID {
		return f.detail, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID int64) ([]models.BookingDetail, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) LatestByCustomer(customerID int64) (*models.BookingDetail, error) {
	return f.latest, nil
}

// fakeCustomerRepo serves a single canned customer.
type fakeCustomerRepo struct {
	customer *models.Customer
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	if f.customer != nil && f.customer.Email == email {
		return f.customer, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByID(customerID int64) (*models.Customer, error) {
	if f.customer != nil && f.customer.CustomerID == customerID {
		return f.customer, nil
	}
	return nil, nil
}

// fakeClassifier returns a fixed verdict or error.
type fakeClassifier struct {
	tool string
	err  error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (string, error) {
	return f.tool, f.err
}

func testFlight() models.Flight {
	return models.Flight{
		FlightID:       42,
		FlightNumber:   "AI101",
		Airline:        "Air India",
		Origin:         "Delhi (DEL)",
		Destination:    "Mumbai (BOM)",
		DepartureTime:  "2025-12-20 06:30",
		ArrivalTime:    "2025-12-20 08:45",
		Price:          5500,
		AvailableSeats: 12,
		AircraftType:   "Airbus A320",
		FlightType:     "Domestic",
	}
}
