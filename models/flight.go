package models

// Flight is a scheduled flight with live seat inventory.
// DepartureTime and ArrivalTime use the "2006-01-02 15:04" layout so the
// leading 10 characters are the departure day.
type Flight struct {
	FlightID       int64   `bson:"flight_id" json:"flight_id"`
	FlightNumber   string  `bson:"flight_number" json:"flight_number"`
	Airline        string  `bson:"airline" json:"airline"`
	Origin         string  `bson:"origin" json:"origin"`
	Destination    string  `bson:"destination" json:"destination"`
	DepartureTime  string  `bson:"departure_time" json:"departure_time"`
	ArrivalTime    string  `bson:"arrival_time" json:"arrival_time"`
	Price          float64 `bson:"price" json:"price"`
	AvailableSeats int     `bson:"available_seats" json:"available_seats"`
	AircraftType   string  `bson:"aircraft_type" json:"aircraft_type,omitempty"`
	FlightType     string  `bson:"flight_type" json:"flight_type"`
}
