// File: services/assistant/booking_flow.go
package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	bookingRepo "skyline/database/repository/booking"
	flightRepo "skyline/database/repository/flight"
	"skyline/models"
	"skyline/utils"

	"go.uber.org/zap"
)

const (
	msgLoginRequired = "You must be logged in to book flights."

	promptBookRoute = "To book, tell me where you're flying from and to."
	promptChoose    = "Please choose which option to book (e.g., 'book first')."
	promptSeat      = "What seat would you like (e.g., 12A)?"
	promptSeatAgain = "Please provide a seat like 12A, 15C, etc."
	promptPayment   = "Great. Which payment method? (UPI / Credit Card / Debit Card / Net Banking)"
	promptPayAgain  = "Choose a payment method: UPI, Credit Card, Debit Card, or Net Banking."

	msgNoAvailability = "No flights available for that route/date. Try another date."
	msgNothingChosen  = "No flight selected. Please choose an option to book."
	msgCommitError    = "Sorry, the booking could not be completed just now. Please try again."
	msgBookingRestart = "Let's start your booking. Tell me the flight number (e.g., AI101)."
)

var (
	reSeat  = regexp.MustCompile(`\b(\d{1,2}[a-f])\b`)
	reBookN = regexp.MustCompile(`book\s+(\d)`)
)

// BookingNotifier is told about confirmed bookings, e.g. to queue an
// itinerary email. Failures are logged, never surfaced to the customer.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, bookingID, customerID int64, pnr string) error
}

// BookingFlow walks a session through collect, choose, seat and payment.
// Each stage only advances on satisfying input; anything else re-prompts
// without moving, and collaborator failures leave the stage untouched so the
// customer can retry the same step.
type BookingFlow struct {
	Contexts ContextStore
	Flights  flightRepo.FlightRepository
	Bookings bookingRepo.BookingRepository
	Notifier BookingNotifier // optional
	Now      func() time.Time
}

func (f *BookingFlow) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Handle processes one booking-flow turn. customerID zero means the caller
// is not authenticated, which is a terminal reject distinct from all stage
// logic.
func (f *BookingFlow) Handle(ctx context.Context, sessionID, text string, customerID int64) string {
	if customerID == 0 {
		return msgLoginRequired
	}

	bc, err := f.Contexts.Booking(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("booking flow: context load failed", zap.Error(err))
		return msgCommitError
	}
	if bc == nil {
		bc = &models.BookingContext{Stage: models.StageCollect}
	}

	txt := strings.ToLower(strings.TrimSpace(text))

	switch bc.Stage {
	case models.StageCollect:
		return f.handleCollect(ctx, sessionID, txt, bc)
	case models.StageChoose:
		return f.handleChoose(ctx, sessionID, txt, bc)
	case models.StageSeat:
		return f.handleSeat(ctx, sessionID, txt, bc)
	case models.StagePayment:
		return f.handlePayment(ctx, sessionID, txt, bc, customerID)
	}

	// Unexpected stage value: reset rather than fail. Safety net for
	// corrupted state; must never panic.
	bc = &models.BookingContext{Stage: models.StageStart}
	if err := f.Contexts.PutBooking(ctx, sessionID, bc); err != nil {
		utils.GetLogger().Error("booking flow: context reset failed", zap.Error(err))
	}
	return msgBookingRestart
}

func (f *BookingFlow) handleCollect(ctx context.Context, sessionID, txt string, bc *models.BookingContext) string {
	// Same slot-merge heuristic as the search flow: a lone city answers
	// whichever slot the previous prompt asked for.
	askingForOrigin := bc.Destination != "" && bc.Origin == ""
	askingForDest := bc.Origin != "" && bc.Destination == ""

	pair := ExtractCities(txt)
	switch {
	case askingForOrigin && pair.Destination != "":
		bc.Origin = pair.Destination
	case askingForDest && pair.Destination != "":
		bc.Destination = pair.Destination
	default:
		if pair.Origin != "" {
			bc.Origin = pair.Origin
		}
		if pair.Destination != "" {
			bc.Destination = pair.Destination
		}
	}

	if d := ExtractDate(txt, f.now()); d != "" {
		bc.Date = d
	}

	if err := f.Contexts.PutBooking(ctx, sessionID, bc); err != nil {
		utils.GetLogger().Error("booking flow: context save failed", zap.Error(err))
		return msgCommitError
	}

	switch {
	case bc.Origin == "" && bc.Destination == "":
		return promptBookRoute
	case bc.Destination != "" && bc.Origin == "":
		return promptOrigin
	case bc.Origin != "" && bc.Destination == "":
		return promptDestination
	case bc.Date == "":
		return promptDate
	}

	flights, err := f.Flights.Search(bc.Origin, bc.Destination, bc.Date)
	if err != nil {
		// Stage and slots stay as they are; the next turn retries.
		utils.GetLogger().Warn("booking flow: flight lookup failed", zap.Error(err))
		return msgSearchError
	}
	if len(flights) == 0 {
		return msgNoAvailability
	}

	bc.Options = bc.Options[:0]
	for _, fl := range flights {
		bc.Options = append(bc.Options, models.FlightOption{
			FlightID:      fl.FlightID,
			FlightNumber:  fl.FlightNumber,
			Airline:       fl.Airline,
			Origin:        fl.Origin,
			Destination:   fl.Destination,
			DepartureTime: fl.DepartureTime,
			Price:         fl.Price,
		})
	}
	bc.Stage = models.StageChoose
	if err := f.Contexts.PutBooking(ctx, sessionID, bc); err != nil {
		utils.GetLogger().Error("booking flow: context save failed", zap.Error(err))
		return msgCommitError
	}

	var b strings.Builder
	b.WriteString("Available flights:\n")
	for i, opt := range bc.Options {
		fmt.Fprintf(&b, "\n%d. %s %s | %s -> %s | Dep: %s | Fare: %s",
			i+1, opt.Airline, opt.FlightNumber, opt.Origin, opt.Destination, opt.DepartureTime, formatINR(opt.Price))
	}
	b.WriteString("\n\nReply 'book first', 'book second', or 'book this'.")
	return b.String()
}

func (f *BookingFlow) handleChoose(ctx context.Context, sessionID, txt string, bc *models.BookingContext) string {
	idx := 0
	parsed := false
	switch {
	case strings.Contains(txt, "first"):
		idx, parsed = 1, true
	case strings.Contains(txt, "second"):
		idx, parsed = 2, true
	default:
		if m := reBookN.FindStringSubmatch(txt); m != nil {
			idx, _ = strconv.Atoi(m[1])
			parsed = true
		}
	}
	// A bare "book"/"book this" defaults to the first option, but a parsed
	// index is taken literally: "book 0" stays 0 and fails the bounds check.
	if !parsed && strings.Contains(txt, "book") {
		idx = 1
	}
	if idx < 1 || idx > len(bc.Options) {
		return promptChoose
	}

	chosen := bc.Options[idx-1]
	bc.Chosen = &chosen
	bc.Stage = models.StageSeat
	if err := f.Contexts.PutBooking(ctx, sessionID, bc); err != nil {
		utils.GetLogger().Error("booking flow: context save failed", zap.Error(err))
		return msgCommitError
	}
	return promptSeat
}

func (f *BookingFlow) handleSeat(ctx context.Context, sessionID, txt string, bc *models.BookingContext) string {
	m := reSeat.FindStringSubmatch(txt)
	if m == nil {
		return promptSeatAgain
	}
	bc.Seat = strings.ToUpper(m[1])
	bc.Stage = models.StagePayment
	if err := f.Contexts.PutBooking(ctx, sessionID, bc); err != nil {
		utils.GetLogger().Error("booking flow: context save failed", zap.Error(err))
		return msgCommitError
	}
	return promptPayment
}

func (f *BookingFlow) handlePayment(ctx context.Context, sessionID, txt string, bc *models.BookingContext, customerID int64) string {
	var method string
	for _, pm := range paymentMethods {
		if strings.Contains(txt, pm.Fragment) {
			method = pm.Method
			break
		}
	}
	if method == "" {
		return promptPayAgain
	}

	if bc.Chosen == nil {
		// Options were cleared underneath us; treat like invalid stage input.
		return msgNothingChosen
	}

	chosen := *bc.Chosen
	pnr := ReferenceCode(sessionID, chosen.FlightID)

	bookingID, err := f.Bookings.Commit(bookingRepo.CommitInput{
		CustomerID:    customerID,
		FlightID:      chosen.FlightID,
		Seat:          bc.Seat,
		Price:         chosen.Price,
		PaymentMethod: method,
		PNR:           pnr,
	})
	if err != nil {
		// Stage and context are untouched so the same turn can be retried.
		utils.GetLogger().Error("booking flow: commit failed", zap.Error(err))
		return msgCommitError
	}

	if err := f.Contexts.ClearBooking(ctx, sessionID); err != nil {
		utils.GetLogger().Error("booking flow: context clear failed", zap.Error(err))
	}

	if f.Notifier != nil {
		if err := f.Notifier.BookingConfirmed(ctx, bookingID, customerID, pnr); err != nil {
			utils.GetLogger().Warn("booking flow: itinerary notification failed", zap.Error(err))
		}
	}

	return fmt.Sprintf(
		"Booking Confirmed\n"+
			"Booking ID: %d | PNR: %s\n"+
			"Flight: %s %s | %s -> %s | Dep: %s\n"+
			"Seat: %s | Payment: %s | Fare: %s\n"+
			"Have a great trip!",
		bookingID, pnr,
		chosen.Airline, chosen.FlightNumber, chosen.Origin, chosen.Destination, chosen.DepartureTime,
		bc.Seat, method, formatINR(chosen.Price),
	)
}
