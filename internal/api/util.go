package api

import (
	"encoding/json"
	"strconv"
)

// gormKeys maps the untagged gorm.Model fields to the snake_case keys the
// rest of the API uses. DeletedAt is never exposed.
var gormKeys = map[string]string{
	"ID":        "id",
	"CreatedAt": "created_at",
	"UpdatedAt": "updated_at",
}

// normalizeKeys recursively renames gorm.Model keys so clients consistently
// receive snake_case fields.
func normalizeKeys(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeKeys(val)
		}
		for from, to := range gormKeys {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		delete(vv, "DeletedAt")
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeKeys(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeKeys marshals v into JSON, decodes it into an
// interface{} and normalizes gorm's keys to snake_case.
func MarshalIntoSnakeKeys(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeKeys(out), nil
}

// parsePositive parses a positive integer query or path value. Empty input
// yields def.
func parsePositive(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
