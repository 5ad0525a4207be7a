package assistant

import (
	"context"

	"skyline/models"
)

// Service is the conversational assistant: one call per chat turn.
type Service interface {
	// HandleTurn routes the utterance to a tool, executes it and returns the
	// reply. customerID is zero for anonymous callers; a blank session id
	// starts a new session.
	HandleTurn(ctx context.Context, req models.ChatRequest, customerID int64) (*models.ChatResponse, error)
}
