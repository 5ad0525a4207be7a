package assistant

import (
	"context"
	"fmt"
	"testing"
	"time"

	"skyline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.December, 1, 9, 0, 0, 0, time.UTC)
}

func newSearchFlow(repo *fakeFlightRepo) (*SearchFlow, *MemoryContextStore) {
	store := NewMemoryContextStore()
	return &SearchFlow{Contexts: store, Flights: repo, Now: fixedNow}, store
}

func TestSearchFlowPromptsForBothCities(t *testing.T) {
	t.Parallel()

	flow, _ := newSearchFlow(&fakeFlightRepo{})
	reply := flow.Handle(context.Background(), "s1", "hello")
	assert.Equal(t, promptBothCities, reply)
}

func TestSearchFlowSlotFillingAcrossTurns(t *testing.T) {
	t.Parallel()

	repo := &fakeFlightRepo{flights: []models.Flight{testFlight()}}
	flow, store := newSearchFlow(repo)
	ctx := context.Background()

	// Destination only: the flow asks for the origin next.
	reply := flow.Handle(ctx, "s1", "fly to Mumbai")
	assert.Equal(t, promptOrigin, reply)

	// A solitary city answers the slot being prompted for, even though the
	// extractor labels lone mentions as destinations.
	reply = flow.Handle(ctx, "s1", "delhi")
	assert.Equal(t, promptDate, reply)

	sc, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "delhi", sc.Origin)
	assert.Equal(t, "mumbai", sc.Destination)

	reply = flow.Handle(ctx, "s1", "2025-12-20")
	assert.Contains(t, reply, "AI101")
	assert.Contains(t, reply, "Rs.5500")

	require.Len(t, repo.queries, 1)
	assert.Equal(t, [3]string{"delhi", "mumbai", "2025-12-20"}, repo.queries[0])

	// The context never survives a completed query.
	sc, err = store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sc.Empty())
}

func TestSearchFlowNoMatchesStillClearsContext(t *testing.T) {
	t.Parallel()

	flow, store := newSearchFlow(&fakeFlightRepo{})
	ctx := context.Background()

	reply := flow.Handle(ctx, "s1", "from Delhi to Mumbai on 2025-12-20")
	assert.Equal(t, msgNoMatches, reply)

	sc, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sc.Empty())
}

func TestSearchFlowLookupFailureKeepsContextForRetry(t *testing.T) {
	t.Parallel()

	repo := &fakeFlightRepo{err: fmt.Errorf("connection reset")}
	flow, store := newSearchFlow(repo)
	ctx := context.Background()

	reply := flow.Handle(ctx, "s1", "from Delhi to Mumbai on 2025-12-20")
	assert.Equal(t, msgSearchError, reply)

	// Slots stay "ready" so the next turn retries the same filters.
	sc, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sc.Complete())

	repo.err = nil
	repo.flights = []models.Flight{testFlight()}
	reply = flow.Handle(ctx, "s1", "please retry")
	assert.Contains(t, reply, "AI101")
}

func TestSearchFlowMergeNeverOverwritesWithAbsence(t *testing.T) {
	t.Parallel()

	flow, store := newSearchFlow(&fakeFlightRepo{})
	ctx := context.Background()

	flow.Handle(ctx, "s1", "from Delhi to Mumbai")
	flow.Handle(ctx, "s1", "no date yet, checking")

	sc, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "delhi", sc.Origin)
	assert.Equal(t, "mumbai", sc.Destination)
}
