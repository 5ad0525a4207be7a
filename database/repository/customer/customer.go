package customerRepo

import "skyline/models"

// CustomerRepository reads customer accounts. Mutation happens through the
// seed path only; the assistant never writes customer records.
type CustomerRepository interface {
	// GetByEmail returns the customer with the given email, or (nil, nil).
	GetByEmail(email string) (*models.Customer, error)

	// GetByID returns the customer with the given id, or (nil, nil).
	GetByID(customerID int64) (*models.Customer, error)
}
