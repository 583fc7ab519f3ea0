package tools

import (
	"context"
	"time"

	"github.com/goodfoods/goodfoods/internal/store"
)

// SyntheticRestaurantID is the sentinel for venues the model invented via
// synthetic_restaurant_info. Bookings against it always confirm and never
// touch the real store.
const SyntheticRestaurantID = 999999

// minuteLayouts are the timestamp shapes we normalize; offset-bearing inputs
// keep their offset so distinct literal notations stay distinct slots.
var minuteLayoutsOffset = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

var minuteLayoutsNaive = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeMinute reduces an ISO-8601 timestamp to minute resolution.
// Unrecognized formats come back unchanged: a booking is never rejected
// solely because the normalizer doesn't know the format, and availability
// then keys on the raw string.
func NormalizeMinute(s string) string {
	for _, layout := range minuteLayoutsNaive {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04")
		}
	}
	for _, layout := range minuteLayoutsOffset {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04Z07:00")
		}
	}
	return s
}

// BookTable is the sole mutating reservation tool: admission check plus
// insert, committed as one conditional statement in the store.
type BookTable struct {
	DB *store.DB
}

func (t *BookTable) Name() string { return "book_table" }

func (t *BookTable) Schema() map[string]string {
	return map[string]string{
		"restaurant_id": "number",
		"customer_name": "string",
		"time":          "string",
		"party_size":    "number",
	}
}

func (t *BookTable) Execute(ctx context.Context, args map[string]any) (string, error) {
	restaurantID, err := requireInt64(args, "restaurant_id")
	if err != nil {
		return "", err
	}
	customerName, err := requireString(args, "customer_name")
	if err != nil {
		return "", err
	}
	rawTime, err := requireString(args, "time")
	if err != nil {
		return "", err
	}
	partySize, err := requireInt64(args, "party_size")
	if err != nil {
		return "", err
	}
	timeISO := NormalizeMinute(rawTime)

	if restaurantID == SyntheticRestaurantID {
		return toJSON(map[string]any{
			"success":       true,
			"message":       "Booking confirmed at imported restaurant for " + customerName,
			"restaurant_id": restaurantID,
			"time":          timeISO,
			"party_size":    partySize,
		}), nil
	}

	committed, snap, err := t.DB.CommitBooking(ctx, store.Booking{
		RestaurantID: restaurantID,
		CustomerName: customerName,
		Time:         timeISO,
		PartySize:    partySize,
		Source:       "agent",
	})
	if err != nil {
		return "", err
	}
	if !committed {
		return toJSON(map[string]any{
			"success":         false,
			"reason":          "Not enough seats",
			"available_seats": snap.AvailableSeats,
		}), nil
	}
	return toJSON(map[string]any{
		"success":       true,
		"message":       "Booking confirmed",
		"restaurant_id": restaurantID,
		"time":          timeISO,
		"party_size":    partySize,
	}), nil
}
