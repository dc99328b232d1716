package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_LocalMexicanNumber(t *testing.T) {
	got, err := Normalize("222 123 4567", "MX")
	require.NoError(t, err)
	assert.Equal(t, "+522221234567", got)
}

func TestNormalize_AlreadyInternational(t *testing.T) {
	got, err := Normalize(" +52 (222) 123-4567 ", "MX")
	require.NoError(t, err)
	assert.Equal(t, "+522221234567", got)
}

func TestNormalize_ForeignNumberKeepsCountry(t *testing.T) {
	got, err := Normalize("+1 201 555 0123", "MX")
	require.NoError(t, err)
	assert.Equal(t, "+12015550123", got)
}

func TestNormalize_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "12", "not a phone"} {
		_, err := Normalize(raw, "MX")
		assert.ErrorIs(t, err, ErrInvalid, raw)
	}
}
