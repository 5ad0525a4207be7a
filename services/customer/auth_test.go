package customer

import (
	"fmt"
	"testing"

	"skyline/config"
	"skyline/models"
	"skyline/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeCustomerRepo struct {
	customer *models.Customer
	err      error
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.customer != nil && f.customer.Email == email {
		return f.customer, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByID(customerID int64) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.customer != nil && f.customer.CustomerID == customerID {
		return f.customer, nil
	}
	return nil, nil
}

func testCustomer(t *testing.T, password string) *models.Customer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Customer{
		CustomerID:   7,
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Status:       "Active",
	}
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.TokenExpiryHrs = 1

	svc := &DefaultCustomerService{Repo: &fakeCustomerRepo{customer: testCustomer(t, "s3cret")}}

	resp, err := svc.Authenticate("asha@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, "Welcome back, Asha Rao!", resp.Message)

	id, err := utils.ExtractCustomerIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := &DefaultCustomerService{Repo: &fakeCustomerRepo{customer: testCustomer(t, "s3cret")}}

	_, err := svc.Authenticate("asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := &DefaultCustomerService{Repo: &fakeCustomerRepo{}}

	_, err := svc.Authenticate("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateRepoFailureIsOpaque(t *testing.T) {
	svc := &DefaultCustomerService{Repo: &fakeCustomerRepo{err: fmt.Errorf("primary unreachable")}}

	_, err := svc.Authenticate("asha@example.com", "s3cret")
	require.Error(t, err)
	// Infrastructure failures never read as bad credentials.
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
