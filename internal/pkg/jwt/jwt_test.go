package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-1", "editor", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "editor", claims.Role)
}

func TestParseExpired(t *testing.T) {
	token, err := Sign("user-1", "reader", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not.a.token")
	assert.Error(t, err)
}
