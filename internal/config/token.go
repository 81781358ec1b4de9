package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// TokenConfig holds configuration for verifying the shared API access token.
// The token itself is never stored; only its bcrypt hash is configured.
type TokenConfig struct {
	BcryptCost int
	TokenHash  string
}

// NewTokenConfig creates a token configuration from environment variables.
// It reads API_TOKEN_HASH (required for auth-enabled deployments) and
// BCRYPT_COST (default: 12).
func NewTokenConfig() (*TokenConfig, error) {
	hash := os.Getenv("API_TOKEN_HASH")
	if hash == "" {
		return nil, fmt.Errorf("API_TOKEN_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	cfg := &TokenConfig{
		BcryptCost: cost,
		TokenHash:  hash,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewTokenConfigForHashing creates a token configuration for hash generation
// only; no configured hash is required. A non-positive cost falls back to
// BCRYPT_COST or the default of 12.
func NewTokenConfigForHashing(cost int) (*TokenConfig, error) {
	if cost <= 0 {
		cost = 12
		if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
			parsed, err := strconv.Atoi(costStr)
			if err != nil {
				return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
			}
			cost = parsed
		}
	}

	cfg := &TokenConfig{BcryptCost: cost}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *TokenConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashToken hashes an access token using bcrypt. Used by tooling to produce
// the API_TOKEN_HASH value.
func (c *TokenConfig) HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hash), nil
}

// VerifyToken verifies a presented access token against the configured hash.
func (c *TokenConfig) VerifyToken(token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.TokenHash), []byte(token)) == nil
}
