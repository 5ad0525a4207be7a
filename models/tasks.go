package models

// ItineraryPayload is the queued task body for post-booking itinerary
// delivery.
type ItineraryPayload struct {
	BookingID  int64  `json:"booking_id"`
	CustomerID int64  `json:"customer_id"`
	PNR        string `json:"pnr"`
}
