package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader lets a client make a POST safe to resend
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// Idempotency rejects a POST whose Idempotency-Key was already seen for the
// same caller and route. Requests without the header pass through. Store
// failures let the request through; the domain rules still hold.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInvalidInput, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		scope := "anonymous"
		if session, err := GetSession(c); err == nil {
			scope = session.ActorID.String()
		}
		storeKey := "http:" + scope + ":" + c.FullPath() + ":" + key

		fresh, err := store.MarkProcessed(c.Request.Context(), storeKey, ttl)
		if err != nil {
			log.Warn("Idempotency store unavailable, processing request",
				zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest, "This request was already submitted", GetRequestID(c)))
			return
		}
		c.Next()
	}
}
