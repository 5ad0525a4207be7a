package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractCities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		origin      string
		destination string
	}{
		{"from-to pattern", "from Delhi to Mumbai", "delhi", "mumbai"},
		{"bare to pattern", "Mumbai to Pune", "mumbai", "pune"},
		{"going to names destination only", "I am going to Dubai next week", "", "dubai"},
		{"bare to with destination", "fly to Singapore", "", "singapore"},
		{"intent words swallow the bare-to pattern", "I want to fly to Singapore", "", ""},
		{"from only also falls back to destination", "leaving from Chennai", "chennai", "chennai"},
		{"iata codes", "from DEL to BOM", "del", "bom"},
		{"fallback two mentions in order", "delhi mumbai please", "delhi", "mumbai"},
		{"fallback single mention is destination", "anything in kolkata?", "", "kolkata"},
		{"embedded iata code is not a second mention", "hyderabad please", "", "hyderabad"},
		{"fallback lone mention with code inside", "delhi", "", "delhi"},
		{"no vocabulary city", "I like trains", "", ""},
		{"empty input", "", "", ""},
		{"token inside vocabulary name", "bang to hyd", "bangalore", "hyderabad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractCities(tt.text)
			assert.Equal(t, tt.origin, got.Origin)
			assert.Equal(t, tt.destination, got.Destination)
		})
	}
}

func TestExtractCitiesFirstPatternWinsEvenWhenEmpty(t *testing.T) {
	t.Parallel()

	// "from A to B" matches structurally but neither phrase maps to a
	// vocabulary city; the early return means the fallback scan never runs,
	// so the city after the comma is ignored.
	got := ExtractCities("from nowhere to somewhere, though delhi is lovely")
	assert.Equal(t, "", got.Origin)
	assert.Equal(t, "", got.Destination)
}

func TestExtractDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.November, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"iso date", "flights on 2025-12-05 please", "2025-12-05"},
		{"on day month", "on 5 Dec", "2025-12-05"},
		{"on day full month name", "travel on 17 december", "2025-12-17"},
		{"tomorrow", "tomorrow works", "2025-12-01"},
		{"today", "leave today", "2025-11-30"},
		{"iso beats tomorrow", "tomorrow or 2025-12-20", "2025-12-20"},
		{"nothing", "no date here", ""},
		{"unknown month", "on 5 xyz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExtractDate(tt.text, now))
		})
	}
}

func TestReferenceCodeDeterministic(t *testing.T) {
	t.Parallel()

	a := ReferenceCode("session-1", 42)
	b := ReferenceCode("session-1", 42)
	assert.Equal(t, a, b)
	assert.Regexp(t, `^PNR\d{6}$`, a)

	assert.NotEqual(t, a, ReferenceCode("session-2", 42))
	assert.NotEqual(t, a, ReferenceCode("session-1", 43))
}

func TestComplaintReferenceFormat(t *testing.T) {
	t.Parallel()

	ref := ComplaintReference("my bag was lost")
	assert.Regexp(t, `^COMP-\d{5}$`, ref)
	assert.Equal(t, ref, ComplaintReference("my bag was lost"))
}
