package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{
			name:  "comma-separated string with trailing comma",
			input: `"React, TypeScript, "`,
			want:  StringList{"React", "TypeScript"},
		},
		{
			name:  "array with whitespace and empty entries",
			input: `[" Go ", "", "WebGL"]`,
			want:  StringList{"Go", "WebGL"},
		},
		{
			name:  "plain array keeps order",
			input: `["C", "B", "A"]`,
			want:  StringList{"C", "B", "A"},
		},
		{
			name:  "empty string yields empty list",
			input: `""`,
			want:  StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			err := json.Unmarshal([]byte(tt.input), &got)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("non-string input is rejected", func(t *testing.T) {
		var got StringList
		err := json.Unmarshal([]byte(`42`), &got)
		assert.Error(t, err)
	})
}

func TestStringList_RoundTrip(t *testing.T) {
	value, err := StringList{"React", "TypeScript"}.Value()
	assert.NoError(t, err)

	var restored StringList
	assert.NoError(t, restored.Scan(value))
	assert.Equal(t, StringList{"React", "TypeScript"}, restored)
}

func TestJSONText_PassesThroughVerbatim(t *testing.T) {
	raw := `{"x":1,"y":2,"z":3}`

	var transform JSONText
	assert.NoError(t, json.Unmarshal([]byte(raw), &transform))

	out, err := json.Marshal(transform)
	assert.NoError(t, err)
	assert.JSONEq(t, raw, string(out))

	value, err := transform.Value()
	assert.NoError(t, err)

	var restored JSONText
	assert.NoError(t, restored.Scan(value))
	assert.JSONEq(t, raw, string(restored))
}

func TestJSONText_EmptyMarshalsAsNull(t *testing.T) {
	var transform JSONText
	out, err := json.Marshal(transform)
	assert.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
