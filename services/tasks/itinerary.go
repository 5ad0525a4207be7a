package tasks

import (
	"context"
	"encoding/json"

	"skyline/models"

	"github.com/hibiken/asynq"
)

const TypeSendItinerary = "itinerary:send"

func NewItineraryTask(payload models.ItineraryPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendItinerary, b), nil
}

// ItineraryNotifier enqueues itinerary delivery for a confirmed booking.
type ItineraryNotifier struct {
	Client *asynq.Client
}

func (n *ItineraryNotifier) BookingConfirmed(ctx context.Context, bookingID, customerID int64, pnr string) error {
	task, err := NewItineraryTask(models.ItineraryPayload{
		BookingID:  bookingID,
		CustomerID: customerID,
		PNR:        pnr,
	})
	if err != nil {
		return err
	}
	_, err = n.Client.EnqueueContext(ctx, task)
	return err
}
