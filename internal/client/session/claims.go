package session

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"

	"github.com/physiofit/clinic/internal/client/models"
)

// DecodeClaims reads the identity claims from an access token without
// verifying its signature.
func DecodeClaims(token string) (*models.Claims, error) {
	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return claims, nil
}

// decodeStored parses a persisted credential and the claims of its access token.
func decodeStored(raw []byte) (*models.Credential, *models.Claims, error) {
	var cred models.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, nil, fmt.Errorf("stored credential: %w", err)
	}
	if cred.Access == "" {
		return nil, nil, fmt.Errorf("stored credential: %w: empty access token", ErrMalformedToken)
	}
	claims, err := DecodeClaims(cred.Access)
	if err != nil {
		return nil, nil, fmt.Errorf("stored credential: %w", err)
	}
	return &cred, claims, nil
}
