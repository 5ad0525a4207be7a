package customer

import (
	"fmt"
	"time"

	"skyline/config"
	"skyline/models"
	"skyline/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so the
// login response never reveals which one it was.
var ErrInvalidCredentials = fmt.Errorf("invalid email or password")

// Authenticate verifies the password and issues a JWT for the customer.
func (s *DefaultCustomerService) Authenticate(email, password string) (*models.LoginResponse, error) {
	cust, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch customer", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if cust == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiry := time.Duration(config.AppConfig.TokenExpiryHrs) * time.Hour
	token, err := utils.GenerateToken(cust.CustomerID, cust.Email, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.LoginResponse{
		Token:      token,
		CustomerID: cust.CustomerID,
		Name:       cust.Name,
		Email:      cust.Email,
		Message:    fmt.Sprintf("Welcome back, %s!", cust.Name),
	}, nil
}

// GetByID exposes the account record for handlers that already hold a
// verified customer id.
func (s *DefaultCustomerService) GetByID(customerID int64) (*models.Customer, error) {
	return s.Repo.GetByID(customerID)
}
