package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// IDList is an ordered set of integer ids stored as a JSON array.
type IDList []int

// Contains reports whether id is present.
func (l IDList) Contains(id int) bool {
	return slices.Contains(l, id)
}

// Merge appends ids not already present, preserving first-seen order.
func (l IDList) Merge(ids ...int) IDList {
	out := append(IDList(nil), l...)
	for _, id := range ids {
		if !out.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// Value serializes the list to JSON.
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal([]int(l))
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan decodes a JSON array.
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return fmt.Errorf("id list: %w", err)
	}
	var decoded []int
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("id list: %w", err)
	}
	*l = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
