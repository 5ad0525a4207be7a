// File: services/assistant/service.go
package assistant

import (
	"context"
	"fmt"
	"sync"

	"skyline/models"
	"skyline/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAssistantService is the production implementation. Turns within one
// session run serialized so the flows see a consistent context; different
// sessions proceed in parallel.
type DefaultAssistantService struct {
	Router     *Router
	Search     *SearchFlow
	Booking    *BookingFlow
	Responders *Responders
	History    ChatHistory

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAssistantService(router *Router, search *SearchFlow, booking *BookingFlow, resp *Responders, history ChatHistory) *DefaultAssistantService {
	return &DefaultAssistantService{
		Router:     router,
		Search:     search,
		Booking:    booking,
		Responders: resp,
		History:    history,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (s *DefaultAssistantService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

func (s *DefaultAssistantService) HandleTurn(ctx context.Context, req models.ChatRequest, customerID int64) (*models.ChatResponse, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("empty message")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	s.record(ctx, sessionID, "user", req.Message)

	tool := s.Router.Route(ctx, req.Message)

	// A turn that only reaches the generic responder while a flow is pending
	// is almost always an answer to that flow's last prompt (a bare date, a
	// seat code, a payment method), so the pending flow wins over rag.
	// Explicit intents still route normally through the overrides above.
	if tool == ToolRAG {
		if bc, err := s.Booking.Contexts.Booking(ctx, sessionID); err == nil && bc != nil {
			tool = ToolBookFlight
		} else if sc, err := s.Search.Contexts.Search(ctx, sessionID); err == nil && !sc.Empty() {
			tool = ToolSearchFlights
		}
	}

	utils.GetLogger().Debug("assistant: routed turn",
		zap.String("session_id", sessionID), zap.String("tool", tool))

	var reply string
	switch tool {
	case ToolNone:
		reply = s.Responders.Greeting()
	case ToolSearchFlights:
		reply = s.Search.Handle(ctx, sessionID, req.Message)
	case ToolBookFlight:
		reply = s.Booking.Handle(ctx, sessionID, req.Message, customerID)
	case ToolCheckBooking:
		reply = s.Responders.CheckBooking(req.Message, customerID)
	case ToolManageBooking:
		reply = s.Responders.ManageBooking()
	case ToolCustomerInfo:
		reply = s.Responders.CustomerInfo(req.Message, customerID)
	case ToolComplaint:
		reply = s.Responders.Complaint(req.Message)
	case ToolFlightDetails:
		reply = s.Responders.FlightDetails(req.Message)
	default:
		reply = s.Responders.Policy(req.Message)
	}

	s.record(ctx, sessionID, "assistant", reply)

	return &models.ChatResponse{
		UserInput: req.Message,
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

// record appends a history turn; history failures never break a turn.
func (s *DefaultAssistantService) record(ctx context.Context, sessionID, role, text string) {
	if s.History == nil {
		return
	}
	if err := s.History.Append(ctx, sessionID, models.ChatTurn{Role: role, Text: text}); err != nil {
		utils.GetLogger().Warn("assistant: history append failed",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}
