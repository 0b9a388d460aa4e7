package auth

import (
	"context"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// SecurityHeaders carries the two tokens every upstream case-management call
// requires: the citizen's bearer token and the service-to-service token.
type SecurityHeaders struct {
	UserToken    string
	ServiceToken string
}

// UserDetails is the identity resolved from a bearer token.
type UserDetails struct {
	UID        string
	GivenName  string
	FamilyName string
	Email      string
}

// Provider resolves the full header set for a user token. Implementations
// cache the service token, so calls are cheap on the hot path.
type Provider interface {
	Headers(ctx context.Context, userToken string) (SecurityHeaders, error)
	UserDetails(ctx context.Context, userToken string) (*UserDetails, error)
}

type provider struct {
	idam *IdamClient
	s2s  *S2SClient
}

func NewProvider(idam *IdamClient, s2s *S2SClient) Provider {
	return &provider{idam: idam, s2s: s2s}
}

func (p *provider) Headers(ctx context.Context, userToken string) (SecurityHeaders, error) {
	serviceToken, err := p.s2s.Token(ctx)
	if err != nil {
		return SecurityHeaders{}, err
	}
	return SecurityHeaders{
		UserToken:    userToken,
		ServiceToken: serviceToken,
	}, nil
}

func (p *provider) UserDetails(ctx context.Context, userToken string) (*UserDetails, error) {
	return p.idam.UserDetails(ctx, userToken)
}
