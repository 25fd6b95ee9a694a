package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

// timeArg parses an optional RFC3339 timestamp argument. A missing or
// empty value yields nil without error.
func timeArg(args map[string]any, key string) (*time.Time, error) {
	raw, ok := args[key].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp: %v", key, err)
	}
	return &t, nil
}

// stringSliceArg coerces a JSON array argument into its string elements.
func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
