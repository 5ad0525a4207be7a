// File: services/assistant/extract.go
package assistant

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CityPair is the extractor's verdict on one utterance. Either field may be
// empty; both empty means no vocabulary city was recognized.
type CityPair struct {
	Origin      string
	Destination string
}

var (
	reFromTo   = regexp.MustCompile(`from\s+([a-z ]+?)\s+to\s+([a-z ]+)`)
	reBareTo   = regexp.MustCompile(`([a-z]+)\s+to\s+([a-z]+)`)
	reGoTo     = regexp.MustCompile(`(?:need to go|going to|go to|visit|fly to|travel to)\s+([a-z]+)`)
	reToOnly   = regexp.MustCompile(`to\s+([a-z]+)`)
	reFromOnly = regexp.MustCompile(`from\s+([a-z]+)`)

	reISODate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	reOnDay   = regexp.MustCompile(`on\s+(\d{1,2})\s+([a-z]{3,})`)
)

// cityInPhrase returns the first vocabulary city occurring anywhere inside
// the captured phrase.
func cityInPhrase(phrase string) string {
	for _, c := range cityVocabulary {
		if strings.Contains(phrase, c) {
			return c
		}
	}
	return ""
}

// cityFromToken accepts an exact vocabulary entry or a token contained in
// one ("bang" resolves to "bangalore").
func cityFromToken(token string) string {
	for _, c := range cityVocabulary {
		if c == token || strings.Contains(c, token) {
			return c
		}
	}
	return ""
}

// ExtractCities pulls an origin/destination pair out of free-form text.
// Patterns are tried in priority order and the first structural match wins,
// even when its vocabulary mapping comes up empty; the bare "to X"/"from X"
// forms and the whole-text scan only fill slots still missing.
func ExtractCities(text string) CityPair {
	txt := strings.ToLower(strings.TrimSpace(text))
	var pair CityPair

	// Pattern 1: "from A to B".
	if m := reFromTo.FindStringSubmatch(txt); m != nil {
		pair.Origin = cityInPhrase(strings.TrimSpace(m[1]))
		pair.Destination = cityInPhrase(strings.TrimSpace(m[2]))
		return pair
	}

	// Pattern 2: "A to B" without "from".
	if m := reBareTo.FindStringSubmatch(txt); m != nil {
		pair.Origin = cityFromToken(strings.TrimSpace(m[1]))
		pair.Destination = cityFromToken(strings.TrimSpace(m[2]))
		return pair
	}

	// Pattern 3: "going to X" and friends name a destination only.
	if m := reGoTo.FindStringSubmatch(txt); m != nil {
		pair.Destination = cityFromToken(strings.TrimSpace(m[1]))
		return pair
	}

	// Patterns 4 and 5: isolated "to X" / "from X" candidates. These do not
	// end the search; the fallback scan below may still fill the other slot.
	if m := reToOnly.FindStringSubmatch(txt); m != nil {
		pair.Destination = cityFromToken(strings.TrimSpace(m[1]))
	}
	if m := reFromOnly.FindStringSubmatch(txt); m != nil {
		pair.Origin = cityFromToken(strings.TrimSpace(m[1]))
	}

	// Fallback: every vocabulary city mentioned anywhere, in order of first
	// appearance. Two mentions fill an empty pair; a single mention is taken
	// as the destination. A code embedded in a name it already matched
	// ("del" inside "delhi", "hyd" inside "hyderabad") is the same mention,
	// not a second city.
	if pair.Origin == "" || pair.Destination == "" {
		type mention struct {
			idx  int
			city string
		}
		var found []mention
		for _, c := range cityVocabulary {
			idx := strings.Index(txt, c)
			if idx < 0 {
				continue
			}
			overlap := false
			for _, m := range found {
				if idx < m.idx+len(m.city) && m.idx < idx+len(c) {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			found = append(found, mention{idx, c})
		}
		sort.SliceStable(found, func(i, j int) bool { return found[i].idx < found[j].idx })

		switch {
		case len(found) >= 2:
			if pair.Origin == "" && pair.Destination == "" {
				pair.Origin = found[0].city
				pair.Destination = found[1].city
			}
		case len(found) == 1:
			if pair.Destination == "" {
				pair.Destination = found[0].city
			}
		}
	}

	return pair
}

// ExtractDate finds a travel date in the text and returns it as an ISO day
// string, or "" when nothing parses. Relative forms resolve against now.
func ExtractDate(text string, now time.Time) string {
	t := strings.ToLower(text)

	if m := reISODate.FindString(t); m != "" {
		return m
	}

	if m := reOnDay.FindStringSubmatch(t); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil {
			if month, ok := monthTable[m[2][:3]]; ok {
				return fmt.Sprintf("%04d-%02d-%02d", now.Year(), month, day)
			}
		}
	}

	if strings.Contains(t, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	if strings.Contains(t, "today") {
		return now.Format("2006-01-02")
	}
	return ""
}
