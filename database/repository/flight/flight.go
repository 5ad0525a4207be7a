package flightRepo

import "skyline/models"

// FlightRepository answers flight availability questions for the assistant.
type FlightRepository interface {
	// Search returns up to five seat-available flights whose origin and
	// destination contain the given tokens (case-insensitive) and whose
	// departure day equals date, ordered by departure time ascending.
	Search(originToken, destinationToken, date string) ([]models.Flight, error)

	// GetByNumber looks a flight up by its flight number, case-insensitively.
	GetByNumber(flightNumber string) (*models.Flight, error)
}
