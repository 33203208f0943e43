package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Success - US number defaults", func(t *testing.T) {
		e164, err := Normalize("(310) 555-1234", "")
		require.NoError(t, err)
		assert.Equal(t, "+13105551234", e164)
	})

	t.Run("Success - explicit country code", func(t *testing.T) {
		e164, err := Normalize("020 7946 0958", "GB")
		require.NoError(t, err)
		assert.Equal(t, "+442079460958", e164)
	})

	t.Run("Success - already E.164", func(t *testing.T) {
		e164, err := Normalize("+13105551234", "US")
		require.NoError(t, err)
		assert.Equal(t, "+13105551234", e164)
	})

	t.Run("Error - empty", func(t *testing.T) {
		_, err := Normalize("", "US")
		require.Error(t, err)
	})

	t.Run("Error - not a phone number", func(t *testing.T) {
		_, err := Normalize("call me maybe", "US")
		require.Error(t, err)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("(310) 555-1234", ""))
	assert.False(t, IsValid("123", "US"))
}
