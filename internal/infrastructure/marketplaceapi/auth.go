package marketplaceapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Login exchanges credentials for a session. The returned time is the
// token expiry.
func (c *Client) Login(ctx context.Context, email, password string) (identity.Session, time.Time, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return identity.Session{}, time.Time{}, shared.ErrInvalidInput.WithMessage("Email and password are required")
	}

	var out wireLogin
	err := c.do(ctx, identity.Session{}, call{
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      map[string]string{"email": email, "password": password},
		anonymous: true,
	}, &out)
	if err != nil {
		return identity.Session{}, time.Time{}, err
	}
	if out.AccessToken == "" {
		return identity.Session{}, time.Time{}, shared.ErrUpstreamUnavailable.WithMessage("Login response carried no token")
	}

	session := identity.NewSession(out.AccessToken, parseID(out.User.ID), parseID(out.User.ActorID), out.User.Role)
	return session, out.ExpiresAt, nil
}

// Me resolves the identity behind the session's token
func (c *Client) Me(ctx context.Context, session identity.Session) (Profile, error) {
	var out wireProfile
	if err := c.do(ctx, session, call{method: http.MethodGet, path: "/me"}, &out); err != nil {
		return Profile{}, err
	}
	return out.toProfile(), nil
}

// Resume completes a session built from a bare token by asking the server
// who it belongs to.
func (c *Client) Resume(ctx context.Context, token string) (identity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return identity.Session{}, shared.ErrUnauthenticated.WithMessage("No session token; log in first")
	}
	p, err := c.Me(ctx, identity.Session{Token: token})
	if err != nil {
		return identity.Session{}, err
	}
	return identity.NewSession(token, p.UserID, p.ActorID, p.Role), nil
}
