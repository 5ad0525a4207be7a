package assistant

import (
	"context"
	"testing"

	"skyline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryContextStoreSearchLifecycle(t *testing.T) {
	t.Parallel()

	store := NewMemoryContextStore()
	ctx := context.Background()

	sc, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sc.Empty())

	sc.Origin = "delhi"
	require.NoError(t, store.PutSearch(ctx, "s1", sc))

	got, err := store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "delhi", got.Origin)

	// Other sessions stay untouched.
	other, err := store.Search(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.Empty())

	require.NoError(t, store.ClearSearch(ctx, "s1"))
	got, err = store.Search(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestMemoryContextStoreBookingLifecycle(t *testing.T) {
	t.Parallel()

	store := NewMemoryContextStore()
	ctx := context.Background()

	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, bc)

	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{Stage: models.StageChoose}))

	got, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StageChoose, got.Stage)

	// The store hands out copies; mutating a loaded context must not leak
	// back into stored state.
	got.Stage = models.StagePayment
	again, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StageChoose, again.Stage)

	// The copy is deep: truncating Options or rewriting Chosen on a loaded
	// context leaves the stored snapshot intact.
	chosen := models.FlightOption{FlightID: 42, FlightNumber: "AI101"}
	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{
		Stage:   models.StageChoose,
		Options: []models.FlightOption{{FlightID: 42, FlightNumber: "AI101"}, {FlightID: 43, FlightNumber: "6E203"}},
		Chosen:  &chosen,
	}))
	loaded, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	loaded.Options = append(loaded.Options[:0], models.FlightOption{FlightID: 99})
	loaded.Chosen.FlightID = 99

	stored, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, stored.Options, 2)
	assert.Equal(t, int64(42), stored.Options[0].FlightID)
	assert.Equal(t, int64(42), stored.Chosen.FlightID)

	require.NoError(t, store.ClearBooking(ctx, "s1"))
	gone, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMemoryContextStoreNamespacesAreIndependent(t *testing.T) {
	t.Parallel()

	store := NewMemoryContextStore()
	ctx := context.Background()

	require.NoError(t, store.PutSearch(ctx, "s1", models.SearchContext{Origin: "delhi"}))
	require.NoError(t, store.PutBooking(ctx, "s1", &models.BookingContext{Stage: models.StageSeat}))

	require.NoError(t, store.ClearSearch(ctx, "s1"))

	bc, err := store.Booking(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, bc)
	assert.Equal(t, models.StageSeat, bc.Stage)
}
