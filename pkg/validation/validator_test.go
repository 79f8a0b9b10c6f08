package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string   `json:"username" validate:"required,username"`
	Email    string   `json:"email" validate:"required,email"`
	Theme    string   `json:"theme" validate:"omitempty,theme"`
	Tags     []string `json:"tags" validate:"dive,max=3"`
}

func TestStruct_Details(t *testing.T) {
	err := Struct(sample{Username: "ab", Email: "nope", Theme: "blue", Tags: []string{"long-tag"}})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be between 3 and 20 characters long", details["username"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be one of: light, dark, cyan", details["theme"])
	assert.Equal(t, "must be at most 3 characters long", details["tags[0]"])
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Username: "amy", Email: "amy@x.com"}))
}

func TestToDetails_JSONErrors(t *testing.T) {
	var v map[string]any
	err := json.Unmarshal([]byte("{bad"), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
