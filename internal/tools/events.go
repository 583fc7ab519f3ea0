package tools

import (
	"context"
	"time"

	"github.com/goodfoods/goodfoods/internal/store"
)

// ListUpcomingEvents returns future events, optionally scoped to a city and
// a horizon in days (default 30).
type ListUpcomingEvents struct {
	DB *store.DB
}

func (t *ListUpcomingEvents) Name() string { return "list_upcoming_events" }

func (t *ListUpcomingEvents) Schema() map[string]string {
	return map[string]string{
		"city":        "string",
		"within_days": "number",
	}
}

func (t *ListUpcomingEvents) Execute(ctx context.Context, args map[string]any) (string, error) {
	city, _, err := argString(args, "city")
	if err != nil {
		return "", err
	}
	withinDays, ok, err := argInt64(args, "within_days")
	if err != nil {
		return "", err
	}
	if !ok || withinDays <= 0 {
		withinDays = 30
	}
	until := time.Now().UTC().AddDate(0, 0, int(withinDays))
	events, err := t.DB.UpcomingEvents(ctx, city, until)
	if err != nil {
		return "", err
	}
	if events == nil {
		events = []store.Event{}
	}
	return toJSON(events), nil
}
