package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/cache"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) MarkProcessed(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}
func (failingStore) IsProcessed(context.Context, string) (bool, error) { return false, nil }
func (failingStore) Close() error                                      { return nil }

func idempotentEngine(store shared.IdempotencyStore, actor *uuid.UUID, calls *int) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), func(c *gin.Context) {
		if actor != nil {
			c.Set(SessionKey, identity.NewSession("t", uuid.New(), *actor, identity.RoleSupermarket))
		}
		c.Next()
	}, Idempotency(store, time.Hour, zap.NewNop()))
	handler := func(c *gin.Context) {
		*calls++
		c.Status(http.StatusCreated)
	}
	r.POST("/orders", handler)
	r.PUT("/orders", handler)
	return r
}

func send(r *gin.Engine, method, key string) int {
	req := httptest.NewRequest(method, "/orders", strings.NewReader("{}"))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestIdempotency(t *testing.T) {
	t.Run("duplicate key is rejected", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore(0)
		defer store.Close()
		actor := uuid.New()
		calls := 0
		r := idempotentEngine(store, &actor, &calls)

		assert.Equal(t, http.StatusCreated, send(r, http.MethodPost, "k1"))
		assert.Equal(t, http.StatusConflict, send(r, http.MethodPost, "k1"))
		assert.Equal(t, http.StatusCreated, send(r, http.MethodPost, "k2"))
		assert.Equal(t, 2, calls)
	})

	t.Run("keys are scoped per actor", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore(0)
		defer store.Close()
		a, b := uuid.New(), uuid.New()
		calls := 0
		assert.Equal(t, http.StatusCreated, send(idempotentEngine(store, &a, &calls), http.MethodPost, "same"))
		assert.Equal(t, http.StatusCreated, send(idempotentEngine(store, &b, &calls), http.MethodPost, "same"))
		assert.Equal(t, 2, calls)
	})

	t.Run("no key and non-POST pass through", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore(0)
		defer store.Close()
		calls := 0
		r := idempotentEngine(store, nil, &calls)

		send(r, http.MethodPost, "")
		send(r, http.MethodPost, "")
		send(r, http.MethodPut, "k")
		send(r, http.MethodPut, "k")
		assert.Equal(t, 4, calls)
	})

	t.Run("oversized key", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore(0)
		defer store.Close()
		calls := 0
		r := idempotentEngine(store, nil, &calls)
		assert.Equal(t, http.StatusBadRequest, send(r, http.MethodPost, strings.Repeat("k", maxIdempotencyKeyLength+1)))
		assert.Zero(t, calls)
	})

	t.Run("store failure fails open", func(t *testing.T) {
		calls := 0
		r := idempotentEngine(failingStore{}, nil, &calls)
		assert.Equal(t, http.StatusCreated, send(r, http.MethodPost, "k"))
		assert.Equal(t, http.StatusCreated, send(r, http.MethodPost, "k"))
		assert.Equal(t, 2, calls)
	})
}
