package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler returns the authenticated customer's account record.
func ProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	idVal, exists := c.Get("customerID")
	customerID, ok := idVal.(int64)
	if !exists || !ok || customerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	cust, err := customerService.GetByID(customerID)
	if err != nil {
		logger.Error("Profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Profile lookup failed"})
		return
	}
	if cust == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, cust)
}
