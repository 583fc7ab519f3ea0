package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/goodfoods/goodfoods/internal/store"
)

// RecommendRestaurants returns the top three venues that can seat the party,
// with a short "why" line the model can quote.
type RecommendRestaurants struct {
	DB *store.DB
}

func (t *RecommendRestaurants) Name() string { return "recommend_restaurants" }

func (t *RecommendRestaurants) Schema() map[string]string {
	return map[string]string{
		"city":       "string",
		"cuisine":    "string",
		"time":       "string",
		"party_size": "number",
	}
}

type recommendation struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Neighborhood  string  `json:"neighborhood"`
	Cuisine       string  `json:"cuisine"`
	Rating        float64 `json:"rating"`
	AvgPriceInINR int64   `json:"avg_price_in_inr"`
	VegOnly       bool    `json:"veg_only"`
	Why           string  `json:"why"`
}

func (t *RecommendRestaurants) Execute(ctx context.Context, args map[string]any) (string, error) {
	var f store.RestaurantFilter
	var err error
	if f.City, _, err = argString(args, "city"); err != nil {
		return "", err
	}
	if f.Cuisine, _, err = argString(args, "cuisine"); err != nil {
		return "", err
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

	restaurants, err := t.DB.SearchRestaurants(ctx, f, 0)
	if err != nil {
		return "", err
	}

	flavor := f.Cuisine
	if flavor == "" {
		flavor = "local tastes"
	}
	recs := make([]recommendation, 0, 3)
	for _, r := range restaurants {
		if hasParty {
			snap, err := t.DB.AvailabilitySnapshot(ctx, r.ID, checkTime)
			if err != nil {
				return "", err
			}
			if snap.AvailableSeats < partySize {
				continue
			}
		}
		recs = append(recs, recommendation{
			ID:            r.ID,
			Name:          r.Name,
			City:          r.City,
			Neighborhood:  r.Neighborhood,
			Cuisine:       r.Cuisine,
			Rating:        r.Rating,
			AvgPriceInINR: r.PriceInINR,
			VegOnly:       r.VegOnly,
			Why:           fmt.Sprintf("Rated %.1f · Good fit for %s · Avg spend ~₹%d", r.Rating, flavor, r.PriceInINR),
		})
		if len(recs) >= 3 {
			break
		}
	}
	return toJSON(recs), nil
}
