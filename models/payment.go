package models

// Payment records the settlement of a booking.
type Payment struct {
	PaymentID     int64   `bson:"payment_id" json:"payment_id"`
	BookingID     int64   `bson:"booking_id" json:"booking_id"`
	Amount        float64 `bson:"amount" json:"amount"`
	PaymentMethod string  `bson:"payment_method" json:"payment_method"`
	PaymentDate   string  `bson:"payment_date" json:"payment_date"`
	PaymentStatus string  `bson:"payment_status" json:"payment_status"`
}
