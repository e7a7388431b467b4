package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is an ordered list of strings persisted as JSON text.
//
// On the API side it accepts either a JSON array or a single
// comma-separated string; entries are trimmed and empty ones dropped,
// so `"React, TypeScript, "` becomes ["React","TypeScript"].
type StringList []string

// UnmarshalJSON implements the lenient input form described above.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return fmt.Errorf("technologies must be an array or a comma-separated string")
		}
		items = strings.Split(joined, ",")
	}
	*l = normalizeList(items)
	return nil
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Value stores the list as a JSON text column.
func (l StringList) Value() (driver.Value, error) {
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan restores the list from its JSON text form.
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// GormDataType tells GORM to use a text column.
func (StringList) GormDataType() string {
	return "text"
}

// JSONText holds opaque JSON stored verbatim in a text column. The
// application never interprets the content; it only round-trips it
// between the API and the database.
type JSONText []byte

// MarshalJSON emits the stored document unchanged.
func (j JSONText) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

// UnmarshalJSON keeps the raw bytes as-is.
func (j *JSONText) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Value stores the raw JSON as text.
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan restores the raw JSON from a text column.
func (j *JSONText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONText(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONText", src)
	}
}

// GormDataType tells GORM to use a text column.
func (JSONText) GormDataType() string {
	return "text"
}
