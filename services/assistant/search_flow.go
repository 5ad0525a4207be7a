// File: services/assistant/search_flow.go
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	flightRepo "skyline/database/repository/flight"
	"skyline/utils"

	"go.uber.org/zap"
)

// Search flow prompts, in the fixed missing-slot order.
const (
	promptBothCities  = "Where are you flying from and to? You can say 'from Delhi to Mumbai'."
	promptDestination = "Noted your origin. Which destination city?"
	promptOrigin      = "Got your destination. What's your departure city?"
	promptDate        = "What date are you traveling? (e.g., 2025-12-05 or 'tomorrow')"

	msgNoMatches   = "No flights match that route/date. Try a different date or cities."
	msgSearchError = "Sorry, I couldn't search flights just now. Please try again."
)

// SearchFlow fills origin, destination and date over as many turns as it
// takes, then runs one query and forgets everything.
type SearchFlow struct {
	Contexts ContextStore
	Flights  flightRepo.FlightRepository
	Now      func() time.Time // test seam; defaults to time.Now
}

func (f *SearchFlow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Handle processes one search-flow turn and returns the reply text. It never
// returns an error: collaborator failures become user-visible warnings and
// leave the context untouched so the next turn retries the same query.
func (f *SearchFlow) Handle(ctx context.Context, sessionID, text string) string {
	sc, err := f.Contexts.Search(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("search flow: context load failed", zap.Error(err))
		return msgSearchError
	}

	// Which slot was the previous prompt asking for? A solitary city in the
	// answer lands in that slot, regardless of how the extractor labeled it
	// (it defaults lone mentions to "destination").
	askingForOrigin := sc.Destination != "" && sc.Origin == ""
	askingForDest := sc.Origin != "" && sc.Destination == ""

	pair := ExtractCities(text)
	switch {
	case askingForOrigin && pair.Destination != "":
		sc.Origin = pair.Destination
	case askingForDest && pair.Destination != "":
		sc.Destination = pair.Destination
	default:
		if pair.Origin != "" {
			sc.Origin = pair.Origin
		}
		if pair.Destination != "" {
			sc.Destination = pair.Destination
		}
	}

	if d := ExtractDate(text, f.now()); d != "" {
		sc.Date = d
	}

	if err := f.Contexts.PutSearch(ctx, sessionID, sc); err != nil {
		utils.GetLogger().Error("search flow: context save failed", zap.Error(err))
		return msgSearchError
	}

	// Prompt for the first missing slot, in fixed order.
	switch {
	case sc.Origin == "" && sc.Destination == "":
		return promptBothCities
	case sc.Origin != "" && sc.Destination == "":
		return promptDestination
	case sc.Destination != "" && sc.Origin == "":
		return promptOrigin
	case sc.Date == "":
		return promptDate
	}

	flights, err := f.Flights.Search(sc.Origin, sc.Destination, sc.Date)
	if err != nil {
		// Context stays "ready" so the next turn retries the same filters.
		utils.GetLogger().Warn("search flow: flight lookup failed", zap.Error(err))
		return msgSearchError
	}

	// The context never survives a completed query, match or no match, so
	// stale slots cannot bleed into an unrelated next turn.
	if err := f.Contexts.ClearSearch(ctx, sessionID); err != nil {
		utils.GetLogger().Error("search flow: context clear failed", zap.Error(err))
	}

	if len(flights) == 0 {
		return msgNoMatches
	}

	var b strings.Builder
	b.WriteString("Matching flights (top results):\n")
	for _, fl := range flights {
		fmt.Fprintf(&b, "\n- %s %s | %s -> %s | Dep: %s | Fare: %s",
			fl.Airline, fl.FlightNumber, fl.Origin, fl.Destination, fl.DepartureTime, formatINR(fl.Price))
	}
	b.WriteString("\n\nTo book, just say: 'book this' or 'book first one'.")
	return b.String()
}
