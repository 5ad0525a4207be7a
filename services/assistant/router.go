// File: services/assistant/router.go
package assistant

import (
	"context"
	"strings"
	"unicode"

	"skyline/utils"

	"go.uber.org/zap"
)

// Tool names the router can resolve to. These are the dispatcher's switch
// labels and the only values a classifier verdict is allowed to take.
const (
	ToolNone          = "none"
	ToolSearchFlights = "search_flights"
	ToolBookFlight    = "book_flight"
	ToolCheckBooking  = "check_booking"
	ToolManageBooking = "manage_booking"
	ToolCustomerInfo  = "customer_info"
	ToolComplaint     = "complaint"
	ToolFlightDetails = "flight_details"
	ToolRAG           = "rag"
)

// classifierTools is the closed vocabulary a model verdict must fall into.
// flight_details is deliberately absent: it is reachable only through the
// deterministic phrase override.
var classifierTools = map[string]bool{
	ToolNone:          true,
	ToolSearchFlights: true,
	ToolBookFlight:    true,
	ToolCheckBooking:  true,
	ToolManageBooking: true,
	ToolCustomerInfo:  true,
	ToolComplaint:     true,
	ToolRAG:           true,
}

// Router picks one tool per utterance. Deterministic keyword overrides run
// first so core flows never depend on model availability; the classifier
// covers the ambiguous remainder, with keyword fallback rules behind it.
type Router struct {
	Classifier IntentClassifier // optional; nil routes by keywords alone
}

func containsAny(txt string, words []string) bool {
	for _, w := range words {
		if strings.Contains(txt, w) {
			return true
		}
	}
	return false
}

func containsAnyWord(txt string, words []string) bool {
	fields := strings.FieldsFunc(txt, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				return true
			}
		}
	}
	return false
}

// Route returns the tool name for one utterance. It never fails: classifier
// errors degrade to the keyword rules.
func (r *Router) Route(ctx context.Context, text string) string {
	txt := strings.ToLower(text)

	// Phrase overrides, most specific first.
	if containsAny(txt, flightDetailPhrases) {
		return ToolFlightDetails
	}
	if containsAny(txt, bookingStatusPhrases) {
		return ToolCheckBooking
	}
	if containsAny(txt, profilePhrases) {
		return ToolCustomerInfo
	}

	hasCity := containsAny(txt, routerCities)
	hasRoute := (strings.Contains(txt, "from") && strings.Contains(txt, "to")) ||
		strings.Contains(txt, " to ")
	hasBookWord := containsAny(txt, bookingIntentWords)

	// A city with search wording or a route shape is a search, unless a
	// booking verb is present: "book a flight from delhi to mumbai" must
	// reach the booking flow, not the search flow.
	if hasCity && (containsAny(txt, searchIntentWords) || hasRoute) && !hasBookWord {
		return ToolSearchFlights
	}
	if (hasCity || hasRoute) && hasBookWord {
		return ToolBookFlight
	}

	if r.Classifier != nil {
		tool, err := r.Classifier.Classify(ctx, text)
		if err != nil {
			utils.GetLogger().Warn("router: classifier unavailable", zap.Error(err))
		} else if classifierTools[tool] {
			return tool
		}
	}

	return r.fallback(txt)
}

// fallback is the pure keyword classifier used when no model verdict is
// usable.
func (r *Router) fallback(txt string) string {
	if containsAnyWord(txt, greetingWords) || containsAny(txt, greetingPhrases) {
		return ToolNone
	}
	if containsAny(txt, fallbackSearchWords) &&
		(strings.Contains(txt, "from") || strings.Contains(txt, "to") || strings.Contains(txt, "flight")) {
		return ToolSearchFlights
	}
	if containsAny(txt, fallbackBookWords) {
		return ToolBookFlight
	}
	if containsAny(txt, fallbackCheckWords) {
		return ToolCheckBooking
	}
	if containsAny(txt, fallbackManageWords) {
		return ToolManageBooking
	}
	if containsAny(txt, fallbackAccountWords) {
		return ToolCustomerInfo
	}
	if containsAny(txt, complaintWords) {
		return ToolComplaint
	}
	return ToolRAG
}
