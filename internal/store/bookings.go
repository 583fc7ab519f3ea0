package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Booking is one committed reservation. Rows are append-only: the agent
// never updates or deletes them.
type Booking struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	CustomerName string `json:"customer_name"`
	Time         string `json:"time"` // minute-resolution ISO string
	PartySize    int64  `json:"party_size"`
	Source       string `json:"source"`
}

// AvailabilitySnapshot is derived, never persisted:
// AvailableSeats = max(Capacity - Booked, 0).
type AvailabilitySnapshot struct {
	Capacity       int64 `json:"capacity"`
	Booked         int64 `json:"booked"`
	AvailableSeats int64 `json:"available_seats"`
}

// BookedSeats sums party_size over bookings whose restaurant_id and time
// match exactly. Times that differ by a minute or use a different literal
// offset notation are distinct slots; there is no bucketing tolerance.
func (db *DB) BookedSeats(ctx context.Context, restaurantID int64, timeISO string) (int64, error) {
	var used sql.NullInt64
	err := db.QueryRowContext(ctx,
		`SELECT SUM(party_size) FROM bookings WHERE restaurant_id = ? AND time = ?`,
		restaurantID, timeISO,
	).Scan(&used)
	if err != nil {
		return 0, err
	}
	return used.Int64, nil
}

// AvailabilitySnapshot computes remaining seats for the restaurant at the
// exact time slot. Unknown restaurant yields zero available seats
// (fail-closed: it can never be booked).
func (db *DB) AvailabilitySnapshot(ctx context.Context, restaurantID int64, timeISO string) (AvailabilitySnapshot, error) {
	capacity, ok, err := db.RestaurantCapacity(ctx, restaurantID)
	if err != nil {
		return AvailabilitySnapshot{}, err
	}
	if !ok {
		return AvailabilitySnapshot{}, nil
	}
	booked, err := db.BookedSeats(ctx, restaurantID, timeISO)
	if err != nil {
		return AvailabilitySnapshot{}, err
	}
	available := capacity - booked
	if available < 0 {
		available = 0
	}
	return AvailabilitySnapshot{Capacity: capacity, Booked: booked, AvailableSeats: available}, nil
}

// CommitBooking runs the admission check and the insert as a single
// conditional INSERT, so two concurrent requests for the same slot cannot
// both pass the check and overbook: the read-then-write race from the naive
// snapshot-check-insert sequence is closed at the statement level.
// committed is false with a valid snapshot when the party does not fit or
// the restaurant is unknown; no row is written in either case.
func (db *DB) CommitBooking(ctx context.Context, b Booking) (committed bool, snap AvailabilitySnapshot, err error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO bookings (restaurant_id, customer_name, time, party_size, source)
		 SELECT ?, ?, ?, ?, ?
		 WHERE (SELECT capacity FROM restaurants WHERE id = ?)
		       - COALESCE((SELECT SUM(party_size) FROM bookings WHERE restaurant_id = ? AND time = ?), 0)
		       >= ?`,
		b.RestaurantID, b.CustomerName, b.Time, b.PartySize, b.Source,
		b.RestaurantID,
		b.RestaurantID, b.Time,
		b.PartySize,
	)
	if err != nil {
		return false, AvailabilitySnapshot{}, fmt.Errorf("committing booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, AvailabilitySnapshot{}, err
	}
	snap, err = db.AvailabilitySnapshot(ctx, b.RestaurantID, b.Time)
	if err != nil {
		return n > 0, snap, err
	}
	return n > 0, snap, nil
}

// InsertBooking appends one booking row without an admission check
// (seeder and tests only).
func (db *DB) InsertBooking(ctx context.Context, b Booking) (int64, error) {
	res, err := db.ExecContext(ctx,
		`INSERT INTO bookings (restaurant_id, customer_name, time, party_size, source) VALUES (?,?,?,?,?)`,
		b.RestaurantID, b.CustomerName, b.Time, b.PartySize, b.Source,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// CountBookings returns the number of booking rows (test helper for the
// "denial writes nothing" property).
func (db *DB) CountBookings(ctx context.Context) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}
