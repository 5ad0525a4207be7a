package models

// Booking flow stages. The stage only advances forward on satisfying input;
// anything unrecognized re-prompts without moving.
const (
	StageStart   = "start"
	StageCollect = "collect"
	StageChoose  = "choose"
	StageSeat    = "seat"
	StagePayment = "payment"
)

// SearchContext holds the partial slot state of an in-progress flight search.
// It is deleted as soon as a query runs, successful or not in terms of matches.
type SearchContext struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Complete reports whether all three search slots are filled.
func (c SearchContext) Complete() bool {
	return c.Origin != "" && c.Destination != "" && c.Date != ""
}

// Empty reports whether no slot has been filled yet, i.e. no search is in
// progress for the session.
func (c SearchContext) Empty() bool {
	return c.Origin == "" && c.Destination == "" && c.Date == ""
}

// FlightOption is an immutable snapshot of a query result taken at the moment
// options are presented. Later booking stages use this snapshot, not a fresh
// lookup, so price and identity cannot drift mid-flow.
type FlightOption struct {
	FlightID      int64   `json:"flight_id"`
	FlightNumber  string  `json:"flight_number"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	Price         float64 `json:"price"`
}

// BookingContext holds the state of an in-progress multi-stage booking.
type BookingContext struct {
	Stage         string         `json:"stage"`
	Origin        string         `json:"origin,omitempty"`
	Destination   string         `json:"destination,omitempty"`
	Date          string         `json:"date,omitempty"`
	Options       []FlightOption `json:"options,omitempty"`
	Chosen        *FlightOption  `json:"chosen,omitempty"`
	Seat          string         `json:"seat,omitempty"`
	PaymentMethod string         `json:"payment_method,omitempty"`
}
