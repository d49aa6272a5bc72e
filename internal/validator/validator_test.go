package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordPayload struct {
	Latitude  float64 `json:"latitude" validate:"geo_lat"`
	Longitude float64 `json:"longitude" validate:"geo_lng"`
}

type statusPayload struct {
	Status string `json:"status" validate:"omitempty,is-task-status"`
}

func TestValidator_GeoRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&coordPayload{Latitude: 43.2, Longitude: 76.9}))
	assert.NoError(t, v.Validate(&coordPayload{Latitude: -90, Longitude: 180}))

	err := v.Validate(&coordPayload{Latitude: 91, Longitude: 0})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "latitude")

	err = v.Validate(&coordPayload{Latitude: 0, Longitude: -181})
	require.Error(t, err)
	vErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "longitude")
}

func TestValidator_TaskStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"", "NEW", "IN_PROGRESS", "DONE"} {
		assert.NoError(t, v.Validate(&statusPayload{Status: status}), "status %q", status)
	}

	err := v.Validate(&statusPayload{Status: "OPEN"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidator_UsesJSONTagNames(t *testing.T) {
	type payload struct {
		DisplayName string `json:"display_name" validate:"required"`
	}

	err := New().Validate(&payload{})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "display_name")
}
