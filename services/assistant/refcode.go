// File: services/assistant/refcode.go
package assistant

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

// ReferenceCode derives a stable PNR from the session and flight identity.
// FNV-1a keeps the code reproducible across platforms and process restarts,
// unlike a language-native hash.
func ReferenceCode(sessionID string, flightID int64) string {
	h := fnv.New64a()
	h.Write([]byte(sessionID))
	h.Write([]byte(strconv.FormatInt(flightID, 10)))
	return fmt.Sprintf("PNR%06d", h.Sum64()%1000000)
}

// ComplaintReference derives a ticket number from the complaint text.
func ComplaintReference(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return fmt.Sprintf("COMP-%05d", h.Sum64()%100000)
}
