package service

//go:generate mockgen -destination=../../mocks/mock_token_verifier.go -package=mocks github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service TokenVerifier

import (
	"crypto/subtle"
)

type TokenVerifier interface {
	Verify(authorization string) bool
}

// StaticTokenService accepts a single configured Authorization header value.
type StaticTokenService struct {
	expected string
}

func NewStaticTokenService(expectedAuthorization string) *StaticTokenService {
	return &StaticTokenService{expected: expectedAuthorization}
}

// Verify reports whether authorization equals the configured value exactly.
// An empty configured value never matches.
func (ts *StaticTokenService) Verify(authorization string) bool {
	if ts.expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(authorization), []byte(ts.expected)) == 1
}
