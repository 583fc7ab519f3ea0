package tools

import (
	"context"

	"github.com/goodfoods/goodfoods/internal/store"
)

// LogFeedback records a customer rating and optional comments. Mutating;
// one call is one committed row.
type LogFeedback struct {
	DB *store.DB
}

func (t *LogFeedback) Name() string { return "log_feedback" }

func (t *LogFeedback) Schema() map[string]string {
	return map[string]string{
		"restaurant_id": "number",
		"customer_name": "string",
		"rating":        "number",
		"comments":      "string",
	}
}

func (t *LogFeedback) Execute(ctx context.Context, args map[string]any) (string, error) {
	restaurantID, err := requireInt64(args, "restaurant_id")
	if err != nil {
		return "", err
	}
	customerName, err := requireString(args, "customer_name")
	if err != nil {
		return "", err
	}
	rating, err := requireFloat64(args, "rating")
	if err != nil {
		return "", err
	}
	comments, _, err := argString(args, "comments")
	if err != nil {
		return "", err
	}
	if err := t.DB.InsertFeedback(ctx, restaurantID, customerName, rating, comments); err != nil {
		return "", err
	}
	return toJSON(map[string]any{"success": true, "message": "Feedback recorded."}), nil
}
