// File: services/assistant/classifier.go
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// IntentClassifier maps one utterance to a tool name.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string) (string, error)
}

const routingPrompt = `You are a routing agent for an airline customer service chatbot.
Rules:
1. If small talk/greeting (hi, hello, how are you) -> {"tool": "none"}.
2. Otherwise, pick ONE tool based on intent:
   - search_flights: user wants to search/find/see available flights or mentions city names with travel intent
   - book_flight: user wants to book/purchase/reserve a ticket
   - check_booking: user wants to check/view booking status or details
   - manage_booking: user wants to cancel/modify/change a booking
   - customer_info: user asks about their profile, account, or previous bookings
   - complaint: user has a complaint or issue to report
   - rag: general questions about policies, baggage, etc.
Reply with JSON ONLY, format: {"tool": "<tool>"}

Utterance: `

// GeminiClassifier asks Gemini for a routing verdict.
type GeminiClassifier struct {
	model *genai.GenerativeModel
}

func NewGeminiClassifier(apiKey string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClassifier{model: model}, nil
}

func (g *GeminiClassifier) Classify(ctx context.Context, utterance string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(routingPrompt+utterance))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
		break
	}
	return parseToolVerdict(sb.String())
}

// parseToolVerdict reads {"tool": "..."} out of the model reply, tolerating
// code fences and surrounding prose.
func parseToolVerdict(reply string) (string, error) {
	var verdict struct {
		Tool string `json:"tool"`
	}
	content := strings.TrimSpace(reply)
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start < 0 || end <= start {
			return "", fmt.Errorf("no JSON object in classifier reply")
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &verdict); err != nil {
			return "", fmt.Errorf("malformed classifier reply: %w", err)
		}
	}
	if verdict.Tool == "" {
		return "", fmt.Errorf("classifier reply missing tool")
	}
	return verdict.Tool, nil
}
