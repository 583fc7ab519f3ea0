package tools

import (
	"context"
	"time"

	"github.com/goodfoods/goodfoods/internal/store"
)

// defaultMaxResults caps how many venues a search returns to the model.
const defaultMaxResults = 6

// SearchRestaurants filters the catalog and annotates each hit with an
// availability snapshot for the requested (or current) time slot.
type SearchRestaurants struct {
	DB *store.DB
}

func (t *SearchRestaurants) Name() string { return "search_restaurants" }

func (t *SearchRestaurants) Schema() map[string]string {
	return map[string]string{
		"cuisine":      "string",
		"city":         "string",
		"neighborhood": "string",
		"price_label":  "string",
		"min_rating":   "number",
		"veg_only":     "boolean",
		"party_size":   "number",
		"time":         "string",
	}
}

type searchResult struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Cuisine             string  `json:"cuisine"`
	City                string  `json:"city"`
	Neighborhood        string  `json:"neighborhood"`
	Address             string  `json:"address"`
	Phone               string  `json:"phone"`
	Rating              float64 `json:"rating"`
	PriceLabel          string  `json:"price_label"`
	AvgPriceInINR       int64   `json:"avg_price_in_inr"`
	Capacity            int64   `json:"capacity"`
	AvailableSeats      int64   `json:"available_seats"`
	CanAccommodateParty bool    `json:"can_accommodate_party"`
	VegOnly             bool    `json:"veg_only"`
}

func (t *SearchRestaurants) Execute(ctx context.Context, args map[string]any) (string, error) {
	var f store.RestaurantFilter
	var err error
	if f.Cuisine, _, err = argString(args, "cuisine"); err != nil {
		return "", err
	}
	if f.City, _, err = argString(args, "city"); err != nil {
		return "", err
	}
	if f.Neighborhood, _, err = argString(args, "neighborhood"); err != nil {
		return "", err
	}
	if f.PriceLabel, _, err = argString(args, "price_label"); err != nil {
		return "", err
	}
	if minRating, ok, err := argFloat64(args, "min_rating"); err != nil {
		return "", err
	} else if ok {
		f.MinRating = &minRating
	}
	if vegOnly, ok, err := argBool(args, "veg_only"); err != nil {
		return "", err
	} else if ok {
		f.VegOnly = &vegOnly
	}
	partySize, hasParty, err := argInt64(args, "party_size")
	if err != nil {
		return "", err
	}
	checkTime, hasTime, err := argString(args, "time")
	if err != nil {
		return "", err
	}
	if !hasTime || checkTime == "" {
		checkTime = time.Now().UTC().Format("2006-01-02T15:04")
	} else {
		checkTime = NormalizeMinute(checkTime)
	}

	restaurants, err := t.DB.SearchRestaurants(ctx, f, defaultMaxResults)
	if err != nil {
		return "", err
	}

	results := make([]searchResult, 0, len(restaurants))
	for _, r := range restaurants {
		snap, err := t.DB.AvailabilitySnapshot(ctx, r.ID, checkTime)
		if err != nil {
			return "", err
		}
		results = append(results, searchResult{
			ID:                  r.ID,
			Name:                r.Name,
			Cuisine:             r.Cuisine,
			City:                r.City,
			Neighborhood:        r.Neighborhood,
			Address:             r.Address,
			Phone:               r.Phone,
			Rating:              r.Rating,
			PriceLabel:          r.PriceLabel,
			AvgPriceInINR:       r.PriceInINR,
			Capacity:            r.Capacity,
			AvailableSeats:      snap.AvailableSeats,
			CanAccommodateParty: !hasParty || snap.AvailableSeats >= partySize,
			VegOnly:             r.VegOnly,
		})
	}
	return toJSON(results), nil
}
