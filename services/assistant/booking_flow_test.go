package assistant

import (
	"context"
	"fmt"
	"testing"

	"skyline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingFlow(flights *fakeFlightRepo, bookings *fakeBookingRepo) (*BookingFlow, *MemoryContextStore) {
	store := NewMemoryContextStore()
	return &BookingFlow{
		Contexts: store,
		Flights:  flights,
		Bookings: bookings,
		Now:      fixedNow,
	}, store
}

func TestBookingFlowRequiresLogin(t *testing.T) {
	t.Parallel()

	flow, store := newBookingFlow(&fakeFlightRepo{}, &fakeBookingRepo{})
	reply := flow.Handle(context.Background(), "s1", "book delhi to mumbai", 0)
	assert.Equal(t, msgLoginRequired, reply)

	// The refusal must not create any state.
	bc, err := store.Booking(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, bc)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	t.Parallel()

	flights := &fakeFlightRepo{flights: []models.Flight{testFlight()}}
	bookings := &fakeBookingRepo{}
	flow, store := newBookingFlow(flights, bookings)
	ctx := context.Background()

	reply := flow.Handle(ctx, "s1", "Delhi to Mumbai", 7)
	assert.Equal(t, promptDate, reply)

	reply = flow.Handle(ctx, "s1", "2025-12-20", 7)
	assert.Contains(t, reply, "1. Air India AI101")
	assert.Contains(t, reply, "Rs.5500")

	reply = flow.Handle(ctx, "s1", "book first", 7)
	assert.Equal(t, promptSeat, reply)

	reply = flow.Handle(ctx, "s1", "12A", 7)
	assert.Equal(t, promptPayment, reply)

	reply = flow.Handle(ctx, "s1", "UPI", 7)
	assert.Contains(t, reply, "Booking Confirmed")
	assert.Contains(t, reply, "Booking ID: 1")
	assert.Contains(t, reply, ReferenceCode("s1", 42))
	assert.Contains(t, reply, "Seat: 12A")
	assert.Contains(t, reply, "UPI")
	assert.Contains(t, reply, "5500")

	require.Len(t, bookings.commits, 1)
	commit := bookings.commits[0]
	assert.Equal(t, int64(7), commit.CustomerID)
	assert.Equal(t, int64(42), commit.FlightID)
	assert.Equal(t, "12A", commit.Seat)
	assert.Equal(t, "UPI", commit.PaymentMethod)
	assert.Equal(t, float64(5500), commit.Price)

	// A BookingContext never survives a successful commit.
	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, bc)
}

func TestBookingFlowChooseOrdinals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantFlight int64
		reprompt   bool
	}{
		{"book second selects index two", "book second", 43, false},
		{"book N literal", "book 2", 43, false},
		{"bare book defaults to first", "book", 42, false},
		{"book this defaults to first", "book this one", 42, false},
		{"out of range re-prompts", "book 9", 0, true},
		{"book zero re-prompts", "book 0", 0, true},
		{"unparseable re-prompts", "the blue one", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flow, store := newBookingFlow(&fakeFlightRepo{}, &fakeBookingRepo{})
			ctx := context.Background()

			options := []models.FlightOption{
				{FlightID: 42, FlightNumber: "AI101"},
				{FlightID: 43, FlightNumber: "6E203"},
			}
			require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
				Stage:   models.StageChoose,
				Options: options,
			}))

			reply := flow.Handle(ctx, "s1", tt.input, 7)

			bc, err := store.Booking(ctx, "s1")
			require.NoError(t, err)
			require.NotNil(t, bc)

			if tt.reprompt {
				assert.Equal(t, promptChoose, reply)
				assert.Equal(t, models.StageChoose, bc.Stage)
				assert.Nil(t, bc.Chosen)
				return
			}
			assert.Equal(t, promptSeat, reply)
			assert.Equal(t, models.StageSeat, bc.Stage)
			require.NotNil(t, bc.Chosen)
			assert.Equal(t, tt.wantFlight, bc.Chosen.FlightID)
		})
	}
}

func TestBookingFlowSeatStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantSeat string
	}{
		{"plain seat", "12A", "12A"},
		{"lowercase normalized", "seat 15c please", "15C"},
		{"no seat token re-prompts", "somewhere nice", ""},
		{"row out of pattern re-prompts", "123A", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flow, store := newBookingFlow(&fakeFlightRepo{}, &fakeBookingRepo{})
			ctx := context.Background()

			chosen := models.FlightOption{FlightID: 42, FlightNumber: "AI101", Price: 5500}
			require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
				Stage:  models.StageSeat,
				Chosen: &chosen,
			}))

			reply := flow.Handle(ctx, "s1", tt.input, 7)

			bc, err := store.Booking(ctx, "s1")
			require.NoError(t, err)
			require.NotNil(t, bc)

			if tt.wantSeat == "" {
				assert.Equal(t, promptSeatAgain, reply)
				assert.Equal(t, models.StageSeat, bc.Stage)
				return
			}
			assert.Equal(t, promptPayment, reply)
			assert.Equal(t, models.StagePayment, bc.Stage)
			assert.Equal(t, tt.wantSeat, bc.Seat)
		})
	}
}

func TestBookingFlowPaymentMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"upi please", "UPI"},
		{"credit card", "Credit Card"},
		{"my debit card", "Debit Card"},
		{"net banking", "Net Banking"},
		{"bank transfer", "Net Banking"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			flights := &fakeFlightRepo{}
			bookings := &fakeBookingRepo{}
			flow, store := newBookingFlow(flights, bookings)
			ctx := context.Background()

			chosen := models.FlightOption{FlightID: 42, FlightNumber: "AI101", Price: 5500}
			require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
				Stage:  models.StagePayment,
				Seat:   "12A",
				Chosen: &chosen,
			}))

			reply := flow.Handle(ctx, "s1", tt.input, 7)
			assert.Contains(t, reply, "Booking Confirmed")

			require.Len(t, bookings.commits, 1)
			assert.Equal(t, tt.want, bookings.commits[0].PaymentMethod)
		})
	}
}

func TestBookingFlowCommitFailureKeepsStage(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{commitErr: fmt.Errorf("write conflict")}
	flow, store := newBookingFlow(&fakeFlightRepo{}, bookings)
	ctx := context.Background()

	chosen := models.FlightOption{FlightID: 42, FlightNumber: "AI101", Price: 5500}
	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
		Stage:  models.StagePayment,
		Seat:   "12A",
		Chosen: &chosen,
	}))

	reply := flow.Handle(ctx, "s1", "upi", 7)
	assert.Equal(t, msgCommitError, reply)

	// Stage and context are untouched so the same turn can be retried.
	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, bc)
	assert.Equal(t, models.StagePayment, bc.Stage)

	bookings.commitErr = nil
	reply = flow.Handle(ctx, "s1", "upi", 7)
	assert.Contains(t, reply, "Booking Confirmed")
	require.Len(t, bookings.commits, 1)
}

func TestBookingFlowCommitOnlyOncePerTransition(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{}
	flow, store := newBookingFlow(&fakeFlightRepo{}, bookings)
	ctx := context.Background()

	chosen := models.FlightOption{FlightID: 42, FlightNumber: "AI101", Price: 5500}
	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
		Stage:  models.StagePayment,
		Seat:   "12A",
		Chosen: &chosen,
	}))

	first := flow.Handle(ctx, "s1", "upi", 7)
	assert.Contains(t, first, "Booking Confirmed")

	// The context is gone, so a duplicate payment turn starts a fresh
	// collect instead of committing a second booking.
	second := flow.Handle(ctx, "s1", "upi", 7)
	assert.NotContains(t, second, "Booking Confirmed")
	assert.Len(t, bookings.commits, 1)
}

func TestBookingFlowZeroResultsStaysInCollect(t *testing.T) {
	t.Parallel()

	flow, store := newBookingFlow(&fakeFlightRepo{}, &fakeBookingRepo{})
	ctx := context.Background()

	reply := flow.Handle(ctx, "s1", "from Delhi to Mumbai on 2025-12-20", 7)
	assert.Equal(t, msgNoAvailability, reply)

	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, bc)
	assert.Equal(t, models.StageCollect, bc.Stage)
	assert.Equal(t, "delhi", bc.Origin)
	assert.Equal(t, "mumbai", bc.Destination)
}

func TestBookingFlowCorruptedStageResets(t *testing.T) {
	t.Parallel()

	flow, store := newBookingFlow(&fakeFlightRepo{}, &fakeBookingRepo{})
	ctx := context.Background()

	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{Stage: "warp"}))

	reply := flow.Handle(ctx, "s1", "anything", 7)
	assert.Equal(t, msgBookingRestart, reply)

	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, bc)
	assert.Equal(t, models.StageStart, bc.Stage)
}
