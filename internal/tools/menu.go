package tools

import (
	"context"

	"github.com/goodfoods/goodfoods/internal/store"
)

// GetMenu lists a restaurant's dishes, signature items first.
type GetMenu struct {
	DB *store.DB
}

func (t *GetMenu) Name() string { return "get_menu" }

func (t *GetMenu) Schema() map[string]string {
	return map[string]string{
		"restaurant_id": "number",
		"category":      "string",
	}
}

func (t *GetMenu) Execute(ctx context.Context, args map[string]any) (string, error) {
	restaurantID, err := requireInt64(args, "restaurant_id")
	if err != nil {
		return "", err
	}
	category, _, err := argString(args, "category")
	if err != nil {
		return "", err
	}
	items, err := t.DB.MenuItems(ctx, restaurantID, category)
	if err != nil {
		return "", err
	}
	if items == nil {
		items = []store.MenuItem{}
	}
	return toJSON(items), nil
}
