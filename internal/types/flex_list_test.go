package types

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestFlexList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []item
	}{
		{name: "array", input: `[{"name":"a"},{"name":"b"}]`, want: []item{{Name: "a"}, {Name: "b"}}},
		{name: "single object", input: ` {"name":"a"}`, want: []item{{Name: "a"}}},
		{name: "empty array", input: `[]`, want: []item{}},
		{name: "null", input: `null`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list FlexList[item]
			require.NoError(t, json.Unmarshal([]byte(tt.input), &list))
			assert.Equal(t, tt.want, list.Slice())
		})
	}
}

func TestFlexListRejectsScalars(t *testing.T) {
	var list FlexList[item]
	assert.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestCustomError(t *testing.T) {
	err := Forbidden("nope", "data.authorization")
	assert.Equal(t, 403, err.Code)
	assert.Contains(t, err.Error(), "nope")

	assert.Equal(t, 400, BadRequest("bad", "data.validation.input").Code)
}
