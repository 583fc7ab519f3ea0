package tools

import (
	"context"
)

// SyntheticRestaurantInfo does not generate anything: the model invents the
// venue details and passes them here; this tool echoes them back under the
// sentinel id so downstream booking bypasses the real catalog.
type SyntheticRestaurantInfo struct{}

func (t *SyntheticRestaurantInfo) Name() string { return "synthetic_restaurant_info" }

func (t *SyntheticRestaurantInfo) Schema() map[string]string {
	return map[string]string{
		"name": "string",
		"city": "string",
		"data": "object",
	}
}

func (t *SyntheticRestaurantInfo) Execute(ctx context.Context, args map[string]any) (string, error) {
	name, err := requireString(args, "name")
	if err != nil {
		return "", err
	}
	city, hasCity, err := argString(args, "city")
	if err != nil {
		return "", err
	}
	if !hasCity || city == "" {
		city = "Unknown"
	}
	data, _, err := argObject(args, "data")
	if err != nil {
		return "", err
	}
	if data == nil {
		data = map[string]any{}
	}

	str := func(key, fallback string) string {
		if s, ok := data[key].(string); ok && s != "" {
			return s
		}
		return fallback
	}
	num := func(key string, fallback float64) float64 {
		if f, ok := data[key].(float64); ok {
			return f
		}
		return fallback
	}
	boolean := func(key string, fallback bool) bool {
		if b, ok := data[key].(bool); ok {
			return b
		}
		return fallback
	}

	dummy := map[string]any{
		"id":               SyntheticRestaurantID,
		"name":             str("name", name) + " (Imported)",
		"city":             city,
		"neighborhood":     str("neighborhood", "Unknown"),
		"address":          str("address", ""),
		"phone":            str("phone", ""),
		"rating":           num("rating", 4.2),
		"price_label":      str("price_label", "₹₹"),
		"avg_price_in_inr": num("avg_price_in_inr", 600),
		"capacity":         num("capacity", 50),
		"veg_only":         boolean("veg_only", false),
		"cuisine":          str("cuisine", "Indian"),
	}
	return toJSON(dummy), nil
}
