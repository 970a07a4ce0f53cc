package service

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/ericogr/lingjing-idle/internal/engine"
)

var ErrInvalidSeed = errors.New("seed must be a string or an integer")

// ParseSeed decodes a JSON seed: a string is hashed, an integer is folded,
// null or absent yields nil.
func ParseSeed(raw json.RawMessage) (*engine.Seed, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, ErrInvalidSeed
		}
		seed := engine.SeedFromString(s)
		return &seed, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, ErrInvalidSeed
	}
	seed := engine.SeedFromInt(n)
	return &seed, nil
}
