package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"go.uber.org/zap"
)

type stubResolver struct {
	token   string
	session identity.Session
}

func (r stubResolver) ResolveSession(_ context.Context, token string) (identity.Session, error) {
	if token != r.token {
		return identity.Session{}, errors.New("bad token")
	}
	return r.session, nil
}

func TestAuthenticate(t *testing.T) {
	session := identity.NewSession("tok", uuid.New(), uuid.New(), identity.RoleSupplier)
	r := gin.New()
	r.Use(RequestID(), Authenticate(stubResolver{token: "tok", session: session}, zap.NewNop()))
	r.GET("/who", func(c *gin.Context) {
		s, err := GetSession(c)
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, s.ActorID.String())
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dG9rOg==", http.StatusUnauthorized},
		{"unknown token", "Bearer other", http.StatusUnauthorized},
		{"valid token", "Bearer tok", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, session.ActorID.String(), w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), shared.CodeUnauthenticated)
			}
		})
	}
}

func TestGetSession_NotAuthenticated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetSession(c)
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)

	c.Set(SessionKey, "not a session")
	_, err = GetSession(c)
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}
