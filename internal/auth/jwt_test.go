package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssueAndValidate(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "datalab-api", 30*time.Minute)
	token, expiresAt, err := issuer.Issue("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "datalab-api", claims.Issuer)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := auth.NewTokenIssuer("secret", "datalab-api", -time.Minute)
	token, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.True(t, errors.Is(err, auth.ErrExpiredToken))
}

func TestTokenIssuer_WrongIssuer(t *testing.T) {
	token, _, err := auth.NewTokenIssuer("secret", "someone-else", time.Hour).Issue("admin")
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("secret", "datalab-api", time.Hour).Validate(token)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestTokenIssuer_Disabled(t *testing.T) {
	issuer := auth.NewTokenIssuer("", "datalab-api", time.Hour)
	assert.False(t, issuer.Enabled())

	_, _, err := issuer.Issue("admin")
	assert.Error(t, err)
}
