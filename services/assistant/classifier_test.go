package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolVerdict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   string
		want    string
		wantErr bool
	}{
		{"clean json", `{"tool": "search_flights"}`, "search_flights", false},
		{"surrounding whitespace", "  {\"tool\": \"none\"}\n", "none", false},
		{"code fence", "```json\n{\"tool\": \"book_flight\"}\n```", "book_flight", false},
		{"prose around the object", `Sure! The answer is {"tool": "complaint"} based on the utterance.`, "complaint", false},
		{"no json at all", "I cannot decide.", "", true},
		{"missing tool field", `{"verdict": "rag"}`, "", true},
		{"empty tool", `{"tool": ""}`, "", true},
		{"broken json inside braces", `{"tool": `, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseToolVerdict(tt.reply)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
