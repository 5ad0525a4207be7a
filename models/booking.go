package models

// Booking links a customer to a flight seat.
type Booking struct {
	BookingID     int64   `bson:"booking_id" json:"booking_id"`
	CustomerID    int64   `bson:"customer_id" json:"customer_id"`
	FlightID      int64   `bson:"flight_id" json:"flight_id"`
	BookingDate   string  `bson:"booking_date" json:"booking_date"`
	SeatNumber    string  `bson:"seat_number" json:"seat_number"`
	BookingStatus string  `bson:"booking_status" json:"booking_status"`
	TotalPrice    float64 `bson:"total_price" json:"total_price"`
	PNR           string  `bson:"pnr" json:"pnr"`
}

// BookingDetail is a booking joined with its flight, as rendered to the
// customer in status and history replies.
type BookingDetail struct {
	Booking `bson:",inline"`
	Flight  Flight `bson:"flight" json:"flight"`
}
