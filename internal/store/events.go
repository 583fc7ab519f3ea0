package store

import (
	"context"
	"time"
)

// Event is a one-off happening at a restaurant (chef special, live music).
type Event struct {
	ID             int64  `json:"id"`
	RestaurantID   int64  `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	EventName      string `json:"event_name"`
	EventDate      string `json:"event_date"`
	Description    string `json:"description"`
	City           string `json:"city"`
}

// eventDateLayouts are the ISO shapes an event_date row may carry. Dates in
// any of these forms are compared against the horizon cutoff; genuinely
// unparsable dates are kept, as the row's format is not contractually
// guaranteed.
var eventDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
}

func parseEventDate(s string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// UpcomingEvents returns future events joined with restaurant name and city,
// soonest first. city "" matches everywhere. Events beyond the until cutoff
// are filtered out when their date parses; unparsable dates are kept.
func (db *DB) UpcomingEvents(ctx context.Context, city string, until time.Time) ([]Event, error) {
	query := `SELECT e.id, e.restaurant_id, e.event_name, e.event_date, e.description, r.name, r.city
		FROM events e
		JOIN restaurants r ON r.id = e.restaurant_id
		WHERE datetime(e.event_date) >= datetime('now')`
	var args []interface{}
	if city != "" {
		query += ` AND r.city LIKE ?`
		args = append(args, "%"+city+"%")
	}
	query += ` ORDER BY e.event_date ASC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.RestaurantID, &e.EventName, &e.EventDate, &e.Description, &e.RestaurantName, &e.City); err != nil {
			return nil, err
		}
		if d, ok := parseEventDate(e.EventDate); ok && d.After(until) {
			continue
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertEvent adds one event row (seeder and tests).
func (db *DB) InsertEvent(ctx context.Context, restaurantID int64, name, date, description string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO events (restaurant_id, event_name, event_date, description) VALUES (?,?,?,?)`,
		restaurantID, name, date, description,
	)
	return err
}
