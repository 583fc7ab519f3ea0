package store

import (
	"context"
)

// MenuItem is one dish on a restaurant's menu.
type MenuItem struct {
	ItemName    string  `json:"item_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsSignature bool    `json:"is_signature"`
}

// MenuItems returns a restaurant's menu, signature dishes first, then by
// price ascending. category "" returns all categories.
func (db *DB) MenuItems(ctx context.Context, restaurantID int64, category string) ([]MenuItem, error) {
	query := `SELECT item_name, category, price, is_signature FROM menus WHERE restaurant_id = ?`
	args := []interface{}{restaurantID}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY is_signature DESC, price ASC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		var sig int
		if err := rows.Scan(&m.ItemName, &m.Category, &m.Price, &sig); err != nil {
			return nil, err
		}
		m.IsSignature = sig != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertMenuItem adds one menu row (seeder and tests).
func (db *DB) InsertMenuItem(ctx context.Context, restaurantID int64, m MenuItem) error {
	sig := 0
	if m.IsSignature {
		sig = 1
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO menus (restaurant_id, item_name, category, price, is_signature) VALUES (?,?,?,?,?)`,
		restaurantID, m.ItemName, m.Category, m.Price, sig,
	)
	return err
}
