package identity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

func TestSession_Require(t *testing.T) {
	actorID := uuid.New()

	t.Run("empty session is unauthenticated", func(t *testing.T) {
		err := Session{}.Require(RoleSupermarket)
		assert.True(t, errors.Is(err, shared.ErrUnauthenticated))
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		s := NewSession("tok", uuid.New(), actorID, RoleSupplier)
		err := s.Require(RoleSupermarket)
		assert.True(t, errors.Is(err, shared.ErrForbidden))
	})

	t.Run("matching role passes", func(t *testing.T) {
		s := NewSession("tok", uuid.New(), actorID, RoleSupermarket)
		assert.NoError(t, s.Require(RoleSupermarket))
		assert.True(t, s.IsSupermarket())
		assert.False(t, s.IsSupplier())
	})
}

func TestSession_RequireActor(t *testing.T) {
	actorID := uuid.New()
	s := NewSession("tok", uuid.New(), actorID, RoleSupplier)

	assert.NoError(t, s.RequireActor(RoleSupplier, actorID))
	assert.True(t, errors.Is(s.RequireActor(RoleSupplier, uuid.New()), shared.ErrForbidden))
	assert.True(t, errors.Is(s.RequireActor(RoleSupermarket, actorID), shared.ErrForbidden))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleSupplier.IsValid())
	assert.True(t, RoleSupermarket.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}
