// File: services/assistant/format.go
package assistant

import "fmt"

// formatINR renders a fare in whole rupees.
func formatINR(amount float64) string {
	return fmt.Sprintf("Rs.%.0f", amount)
}
