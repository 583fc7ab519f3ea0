package tools

import (
	"context"

	"github.com/goodfoods/goodfoods/internal/store"
)

// GetLoyaltyProfile looks up a loyalty member by phone or name fragment.
// No match (or no lookup key at all) returns an empty object, not an error.
type GetLoyaltyProfile struct {
	DB *store.DB
}

func (t *GetLoyaltyProfile) Name() string { return "get_loyalty_profile" }

func (t *GetLoyaltyProfile) Schema() map[string]string {
	return map[string]string{
		"phone": "string",
		"name":  "string",
	}
}

func (t *GetLoyaltyProfile) Execute(ctx context.Context, args map[string]any) (string, error) {
	phone, hasPhone, err := argString(args, "phone")
	if err != nil {
		return "", err
	}
	name, hasName, err := argString(args, "name")
	if err != nil {
		return "", err
	}

	var c *store.LoyaltyCustomer
	switch {
	case hasPhone && phone != "":
		c, err = t.DB.LoyaltyByPhone(ctx, phone)
	case hasName && name != "":
		c, err = t.DB.LoyaltyByName(ctx, name)
	default:
		return "{}", nil
	}
	if err != nil {
		return "", err
	}
	if c == nil {
		return "{}", nil
	}
	return toJSON(c), nil
}
