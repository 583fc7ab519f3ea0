package tools

import (
	"context"
)

// TriggerFollowupSMS simulates queueing a follow-up text. No network I/O;
// the agent presents the confirmation behaviorally.
type TriggerFollowupSMS struct{}

func (t *TriggerFollowupSMS) Name() string { return "trigger_followup_sms" }

func (t *TriggerFollowupSMS) Schema() map[string]string {
	return map[string]string{
		"phone_number": "string",
		"message":      "string",
	}
}

func (t *TriggerFollowupSMS) Execute(ctx context.Context, args map[string]any) (string, error) {
	phone, err := requireString(args, "phone_number")
	if err != nil {
		return "", err
	}
	message, err := requireString(args, "message")
	if err != nil {
		return "", err
	}
	return toJSON(map[string]any{
		"success":   true,
		"simulated": true,
		"message":   "SMS queued to " + phone,
		"body":      message,
	}), nil
}
