package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/logger"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	// SessionKey holds the resolved identity.Session in the gin context
	SessionKey = "session"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// SessionResolver turns a bearer token into a session
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (identity.Session, error)
}

// Authenticate requires a valid bearer token and stores the resolved
// session for handlers. Handlers receive the session explicitly through
// GetSession; nothing below the handler reads it from the context.
func Authenticate(resolver SessionResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderKey)
		if header == "" {
			abortUnauthenticated(c, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthenticated(c, "Invalid authorization header format")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		session, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			log.Debug("Token rejected",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err))
			abortUnauthenticated(c, "Invalid or expired token")
			return
		}

		c.Set(SessionKey, session)
		c.Request = c.Request.WithContext(logger.WithActor(
			c.Request.Context(),
			session.UserID.String(),
			session.ActorID.String(),
			session.Role.String(),
		))
		c.Next()
	}
}

// GetSession returns the session stored by Authenticate, or an
// unauthenticated error when the route was not behind it
func GetSession(c *gin.Context) (identity.Session, error) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return identity.Session{}, shared.ErrUnauthenticated
	}
	session, ok := v.(identity.Session)
	if !ok || !session.IsAuthenticated() {
		return identity.Session{}, shared.ErrUnauthenticated
	}
	return session, nil
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthenticated, message, GetRequestID(c)))
}
