package customer

import (
	customerRepo "skyline/database/repository/customer"
	"skyline/models"
)

// CustomerService authenticates customers and exposes their accounts.
type CustomerService interface {
	Authenticate(email, password string) (*models.LoginResponse, error)
	GetByID(customerID int64) (*models.Customer, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}
