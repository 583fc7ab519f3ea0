package store

import (
	"context"
	"database/sql"
)

// LoyaltyCustomer is a member of the loyalty program.
type LoyaltyCustomer struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Tier            string `json:"tier"`
	FavoriteCuisine string `json:"favorite_cuisine"`
	PreferredCity   string `json:"preferred_city"`
}

// LoyaltyByPhone returns the first loyalty customer whose phone contains the
// fragment, or nil when there is no match.
func (db *DB) LoyaltyByPhone(ctx context.Context, phone string) (*LoyaltyCustomer, error) {
	return db.loyaltyWhere(ctx, "phone", phone)
}

// LoyaltyByName returns the first loyalty customer whose name contains the
// fragment, or nil when there is no match.
func (db *DB) LoyaltyByName(ctx context.Context, name string) (*LoyaltyCustomer, error) {
	return db.loyaltyWhere(ctx, "name", name)
}

func (db *DB) loyaltyWhere(ctx context.Context, column, fragment string) (*LoyaltyCustomer, error) {
	var c LoyaltyCustomer
	err := db.QueryRowContext(ctx,
		`SELECT id, name, phone, tier, favorite_cuisine, preferred_city FROM loyalty_customers WHERE `+column+` LIKE ? LIMIT 1`,
		"%"+fragment+"%",
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Tier, &c.FavoriteCuisine, &c.PreferredCity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertLoyaltyCustomer adds one loyalty row (seeder and tests).
func (db *DB) InsertLoyaltyCustomer(ctx context.Context, c LoyaltyCustomer) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO loyalty_customers (name, phone, tier, favorite_cuisine, preferred_city) VALUES (?,?,?,?,?)`,
		c.Name, c.Phone, c.Tier, c.FavoriteCuisine, c.PreferredCity,
	)
	return err
}
