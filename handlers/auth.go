package handlers

import (
	"errors"
	"net/http"

	"skyline/models"
	"skyline/services/customer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var customerService customer.CustomerService

// SetCustomerService wires the customer service used by the auth handlers.
func SetCustomerService(svc customer.CustomerService) {
	customerService = svc
}

// LoginHandler authenticates a customer and returns a JWT.
func LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := customerService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
