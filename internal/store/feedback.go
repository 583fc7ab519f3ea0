package store

import (
	"context"
	"time"
)

// InsertFeedback records one piece of customer feedback.
func (db *DB) InsertFeedback(ctx context.Context, restaurantID int64, customerName string, rating float64, comments string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO feedback (restaurant_id, customer_name, rating, comments, created_at) VALUES (?,?,?,?,?)`,
		restaurantID, customerName, rating, comments, time.Now().UTC().Format("2006-01-02T15:04:05"),
	)
	return err
}

// CountFeedback returns the number of feedback rows (test helper).
func (db *DB) CountFeedback(ctx context.Context) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&n)
	return n, err
}
