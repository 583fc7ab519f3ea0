package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingEvents_HorizonCutoff(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedRestaurant(t, db, 40)

	now := time.Now().UTC()
	soon := now.AddDate(0, 0, 10).Format("2006-01-02T15:04:05")
	far := now.AddDate(0, 0, 60).Format("2006-01-02T15:04:05")
	require.NoError(t, db.InsertEvent(ctx, id, "Chef Special Evening", soon, "tasting menu"))
	require.NoError(t, db.InsertEvent(ctx, id, "Wine Pairing", far, "sommelier night"))

	events, err := db.UpcomingEvents(ctx, "", now.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Chef Special Evening", events[0].EventName)
}

// Minute-resolution dates must be compared against the horizon, not kept
// as if they were unparsable.
func TestUpcomingEvents_MinuteResolutionDateBeyondHorizonDropped(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedRestaurant(t, db, 40)

	now := time.Now().UTC()
	far := now.AddDate(0, 0, 60).Format("2006-01-02T15:04")
	require.NoError(t, db.InsertEvent(ctx, id, "Far Future Gala", far, "save the date"))

	events, err := db.UpcomingEvents(ctx, "", now.AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpcomingEvents_MinuteResolutionDateWithinHorizonKept(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedRestaurant(t, db, 40)

	now := time.Now().UTC()
	soon := now.AddDate(0, 0, 5).Format("2006-01-02T15:04")
	require.NoError(t, db.InsertEvent(ctx, id, "Sunday Brunch", soon, "buffet"))

	events, err := db.UpcomingEvents(ctx, "", now.AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Sunday Brunch", events[0].EventName)
	assert.Equal(t, "Tandoor Tales", events[0].RestaurantName)
}

func TestUpcomingEvents_PastEventsExcluded(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedRestaurant(t, db, 40)

	require.NoError(t, db.InsertEvent(ctx, id, "Bygone Night", "2020-01-01T19:00:00", "long over"))

	events, err := db.UpcomingEvents(ctx, "", time.Now().UTC().AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpcomingEvents_CityScope(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	blr := seedRestaurant(t, db, 40) // Bangalore per seedRestaurant
	mum, err := db.InsertRestaurant(ctx, Restaurant{
		Name: "Bandra Bistro", Cuisine: "Goan", City: "Mumbai", Neighborhood: "Bandra",
		Rating: 4.1, PriceLabel: "₹₹", PriceInINR: 700, Capacity: 30,
	})
	require.NoError(t, err)

	soon := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02T15:04:05")
	require.NoError(t, db.InsertEvent(ctx, blr, "Live Ghazal Night", soon, "music"))
	require.NoError(t, db.InsertEvent(ctx, mum, "Sunday Brunch", soon, "buffet"))

	events, err := db.UpcomingEvents(ctx, "mumbai", time.Now().UTC().AddDate(0, 0, 30))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Bandra Bistro", events[0].RestaurantName)
	assert.Equal(t, "Mumbai", events[0].City)
}

func TestParseEventDate_Layouts(t *testing.T) {
	for _, s := range []string{
		"2026-10-25T16:43:00",
		"2026-10-25T16:43",
		"2026-10-25T16:43:00Z",
		"2026-10-25T16:43+05:30",
		"2026-10-25",
	} {
		_, ok := parseEventDate(s)
		assert.True(t, ok, "input %q", s)
	}
	_, ok := parseEventDate("sometime next month")
	assert.False(t, ok)
}
