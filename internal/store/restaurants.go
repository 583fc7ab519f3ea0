package store

import (
	"context"
	"database/sql"
)

// Restaurant is immutable reference data as far as the agent is concerned;
// only the seeder writes this table.
type Restaurant struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	City         string  `json:"city"`
	Neighborhood string  `json:"neighborhood"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Rating       float64 `json:"rating"`
	PriceLabel   string  `json:"price_label"`
	PriceInINR   int64   `json:"price_in_inr"`
	Capacity     int64   `json:"capacity"`
	VegOnly      bool    `json:"veg_only"`
}

// RestaurantFilter holds the optional search facets. Zero values mean
// "not filtered"; MinRating and VegOnly use pointers so 0/false are
// expressible filters.
type RestaurantFilter struct {
	Cuisine      string
	City         string
	Neighborhood string
	PriceLabel   string
	MinRating    *float64
	VegOnly      *bool
}

const restaurantCols = `id, name, cuisine, city, neighborhood, address, phone, rating, price_label, price_in_inr, capacity, veg_only`

func scanRestaurant(rows *sql.Rows) (Restaurant, error) {
	var r Restaurant
	var vegOnly int
	err := rows.Scan(&r.ID, &r.Name, &r.Cuisine, &r.City, &r.Neighborhood, &r.Address, &r.Phone,
		&r.Rating, &r.PriceLabel, &r.PriceInINR, &r.Capacity, &vegOnly)
	r.VegOnly = vegOnly != 0
	return r, err
}

// SearchRestaurants returns restaurants matching the filter, best rated
// first, cheaper first within a rating. Limit 0 means no limit.
func (db *DB) SearchRestaurants(ctx context.Context, f RestaurantFilter, limit int) ([]Restaurant, error) {
	query := `SELECT ` + restaurantCols + ` FROM restaurants WHERE 1=1`
	var args []interface{}
	if f.Cuisine != "" {
		query += ` AND cuisine LIKE ?`
		args = append(args, "%"+f.Cuisine+"%")
	}
	if f.City != "" {
		query += ` AND city LIKE ?`
		args = append(args, "%"+f.City+"%")
	}
	if f.Neighborhood != "" {
		query += ` AND neighborhood LIKE ?`
		args = append(args, "%"+f.Neighborhood+"%")
	}
	if f.PriceLabel != "" {
		query += ` AND price_label = ?`
		args = append(args, f.PriceLabel)
	}
	if f.MinRating != nil {
		query += ` AND rating >= ?`
		args = append(args, *f.MinRating)
	}
	if f.VegOnly != nil {
		query += ` AND veg_only = ?`
		if *f.VegOnly {
			args = append(args, 1)
		} else {
			args = append(args, 0)
		}
	}
	query += ` ORDER BY rating DESC, price_in_inr ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RestaurantCapacity returns the seating capacity for id. ok is false when
// the restaurant does not exist.
func (db *DB) RestaurantCapacity(ctx context.Context, id int64) (capacity int64, ok bool, err error) {
	var c sql.NullInt64
	err = db.QueryRowContext(ctx, `SELECT capacity FROM restaurants WHERE id = ?`, id).Scan(&c)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c.Int64, true, nil
}

// InsertRestaurant adds one restaurant row (used by the seeder and tests).
func (db *DB) InsertRestaurant(ctx context.Context, r Restaurant) (int64, error) {
	vegOnly := 0
	if r.VegOnly {
		vegOnly = 1
	}
	res, err := db.ExecContext(ctx,
		`INSERT INTO restaurants (name, cuisine, city, neighborhood, address, phone, price_label, price_in_inr, rating, capacity, veg_only)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		r.Name, r.Cuisine, r.City, r.Neighborhood, r.Address, r.Phone, r.PriceLabel, r.PriceInINR, r.Rating, r.Capacity, vegOnly,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
