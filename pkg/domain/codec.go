package domain

import (
	"encoding/json"
	"fmt"
)

// EncodeFunnel serializes a funnel into the persisted record format.
// Timestamps render as RFC 3339 via the standard time.Time codec.
func EncodeFunnel(f *Funnel) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to encode funnel %s: %w", f.ID, err)
	}
	return data, nil
}

// DecodeFunnel parses a persisted record and normalizes it. Malformed
// records return an error; deciding what to do about that (typically
// falling back to a seed funnel) is the caller's concern.
func DecodeFunnel(data []byte) (*Funnel, error) {
	var f Funnel
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode funnel record: %w", err)
	}
	f.Normalize()
	return &f, nil
}
