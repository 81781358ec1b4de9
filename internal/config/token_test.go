package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewTokenConfigRequiresHash(t *testing.T) {
	t.Setenv("API_TOKEN_HASH", "")
	_, err := NewTokenConfig()
	assert.Error(t, err)
}

func TestNewTokenConfigDefaults(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-token"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("API_TOKEN_HASH", string(hash))
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewTokenConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewTokenConfigRejectsBadCost(t *testing.T) {
	t.Setenv("API_TOKEN_HASH", "some-hash")
	t.Setenv("BCRYPT_COST", "3")
	_, err := NewTokenConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "not-a-number")
	_, err = NewTokenConfig()
	assert.Error(t, err)
}

func TestNewTokenConfigForHashing(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewTokenConfigForHashing(0)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)

	cfg, err = NewTokenConfigForHashing(10)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)

	t.Setenv("BCRYPT_COST", "13")
	cfg, err = NewTokenConfigForHashing(0)
	require.NoError(t, err)
	assert.Equal(t, 13, cfg.BcryptCost)

	_, err = NewTokenConfigForHashing(99)
	assert.Error(t, err)
}

func TestVerifyToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-token"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &TokenConfig{BcryptCost: 12, TokenHash: string(hash)}
	assert.True(t, cfg.VerifyToken("secret-token"))
	assert.False(t, cfg.VerifyToken("wrong-token"))
	assert.False(t, cfg.VerifyToken(""))
}

func TestHashTokenRoundTrip(t *testing.T) {
	cfg := &TokenConfig{BcryptCost: 10}
	hash, err := cfg.HashToken("my-token")
	require.NoError(t, err)

	verifier := &TokenConfig{BcryptCost: 10, TokenHash: hash}
	assert.True(t, verifier.VerifyToken("my-token"))
}
