package tools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodfoods/goodfoods/internal/store"
)

func TestGetMenu_SignatureFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedVenue(t, db, 30)

	require.NoError(t, db.InsertMenuItem(ctx, id, store.MenuItem{ItemName: "Korma", Category: "Main", Price: 380}))
	require.NoError(t, db.InsertMenuItem(ctx, id, store.MenuItem{ItemName: "Galouti Kebab", Category: "Starter", Price: 420, IsSignature: true}))

	tool := &GetMenu{DB: db}
	out, err := tool.Execute(ctx, map[string]any{"restaurant_id": float64(id)})
	require.NoError(t, err)

	var items []store.MenuItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Galouti Kebab", items[0].ItemName)
	assert.True(t, items[0].IsSignature)
}

func TestGetMenu_CategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedVenue(t, db, 30)

	require.NoError(t, db.InsertMenuItem(ctx, id, store.MenuItem{ItemName: "Shahi Paneer", Category: "Main", Price: 340}))
	require.NoError(t, db.InsertMenuItem(ctx, id, store.MenuItem{ItemName: "Lassi", Category: "Beverage", Price: 90}))

	tool := &GetMenu{DB: db}
	out, err := tool.Execute(ctx, map[string]any{"restaurant_id": float64(id), "category": "Beverage"})
	require.NoError(t, err)

	var items []store.MenuItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Lassi", items[0].ItemName)
}

func TestGetMenu_MissingRestaurantID(t *testing.T) {
	db := setupTestDB(t)
	tool := &GetMenu{DB: db}

	_, err := tool.Execute(context.Background(), map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restaurant_id")
}

func TestGetMenu_EmptyMenuReturnsEmptyList(t *testing.T) {
	db := setupTestDB(t)
	id := seedVenue(t, db, 30)

	tool := &GetMenu{DB: db}
	out, err := tool.Execute(context.Background(), map[string]any{"restaurant_id": float64(id)})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestListUpcomingEvents_DefaultHorizonIsThirtyDays(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedVenue(t, db, 30)

	now := time.Now().UTC()
	soon := now.AddDate(0, 0, 10).Format("2006-01-02T15:04:05")
	far := now.AddDate(0, 0, 60).Format("2006-01-02T15:04")
	require.NoError(t, db.InsertEvent(ctx, id, "Chef Special Evening", soon, "tasting"))
	require.NoError(t, db.InsertEvent(ctx, id, "Wine Pairing", far, "sommelier"))

	tool := &ListUpcomingEvents{DB: db}
	out, err := tool.Execute(ctx, map[string]any{})
	require.NoError(t, err)

	var events []store.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Chef Special Evening", events[0].EventName)
}

func TestListUpcomingEvents_WiderHorizonIncludesLaterEvents(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	id := seedVenue(t, db, 30)

	far := time.Now().UTC().AddDate(0, 0, 60).Format("2006-01-02T15:04:05")
	require.NoError(t, db.InsertEvent(ctx, id, "Wine Pairing", far, "sommelier"))

	tool := &ListUpcomingEvents{DB: db}
	out, err := tool.Execute(ctx, map[string]any{"within_days": float64(90)})
	require.NoError(t, err)

	var events []store.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	assert.Len(t, events, 1)
}

func TestListUpcomingEvents_CityScope(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	delhi := seedVenue(t, db, 30) // Delhi per seedVenue
	chennai, err := db.InsertRestaurant(ctx, store.Restaurant{
		Name: "Adyar Kitchen", Cuisine: "South Indian", City: "Chennai", Neighborhood: "Adyar",
		Rating: 4.2, PriceLabel: "₹", PriceInINR: 250, Capacity: 40,
	})
	require.NoError(t, err)

	soon := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02T15:04:05")
	require.NoError(t, db.InsertEvent(ctx, delhi, "Live Ghazal Night", soon, "music"))
	require.NoError(t, db.InsertEvent(ctx, chennai, "Sunday Brunch", soon, "buffet"))

	tool := &ListUpcomingEvents{DB: db}
	out, err := tool.Execute(ctx, map[string]any{"city": "chennai"})
	require.NoError(t, err)

	var events []store.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Adyar Kitchen", events[0].RestaurantName)
}

func TestListUpcomingEvents_NoEventsReturnsEmptyList(t *testing.T) {
	db := setupTestDB(t)
	tool := &ListUpcomingEvents{DB: db}

	out, err := tool.Execute(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
