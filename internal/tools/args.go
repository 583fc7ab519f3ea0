package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Argument extraction from the decoded ARGS object. The model emits JSON
// numbers as float64 and occasionally numerics as strings ("4"); the
// coercions here accept both. A present value of the wrong kind is a
// validation failure the executor turns into an {"error": ...} payload.

func argString(args map[string]any, key string) (string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("argument %q must be a string", key)
	}
	return s, true, nil
}

func argInt64(args map[string]any, key string) (int64, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("argument %q must be an integer", key)
		}
		return i, true, nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("argument %q must be an integer", key)
		}
		return i, true, nil
	default:
		return 0, false, fmt.Errorf("argument %q must be an integer", key)
	}
}

func argFloat64(args map[string]any, key string) (float64, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	switch n := v.(type) {
	case float64:
		return n, true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("argument %q must be a number", key)
		}
		return f, true, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false, fmt.Errorf("argument %q must be a number", key)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("argument %q must be a number", key)
	}
}

func argBool(args map[string]any, key string) (bool, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, fmt.Errorf("argument %q must be a boolean", key)
	}
	return b, true, nil
}

func argObject(args map[string]any, key string) (map[string]any, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false, fmt.Errorf("argument %q must be an object", key)
	}
	return m, true, nil
}

func requireString(args map[string]any, key string) (string, error) {
	s, ok, err := argString(args, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return s, nil
}

func requireInt64(args map[string]any, key string) (int64, error) {
	i, ok, err := argInt64(args, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("missing required argument %q", key)
	}
	return i, nil
}

func requireFloat64(args map[string]any, key string) (float64, error) {
	f, ok, err := argFloat64(args, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("missing required argument %q", key)
	}
	return f, nil
}

// toJSON serializes v; the agent expects every tool result to be a string.
func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		eb, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(eb)
	}
	return string(b)
}
