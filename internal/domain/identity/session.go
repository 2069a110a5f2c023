package identity

import (
	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Session is the resolved identity of the caller. It is passed explicitly to
// every application operation; nothing reads the token or actor id from
// ambient state.
type Session struct {
	// Token is the bearer credential the session was resolved from
	Token string
	// UserID is the login account
	UserID uuid.UUID
	// ActorID is the supplier_id or supermarket_id bound to the account
	ActorID uuid.UUID
	Role    Role
}

// NewSession builds a session for an already verified credential
func NewSession(token string, userID, actorID uuid.UUID, role Role) Session {
	return Session{
		Token:   token,
		UserID:  userID,
		ActorID: actorID,
		Role:    role,
	}
}

// IsAuthenticated reports whether the session carries a resolved actor
func (s Session) IsAuthenticated() bool {
	return s.ActorID != uuid.Nil && s.Role.IsValid()
}

// Require checks that the session is authenticated and acts in the given role
func (s Session) Require(role Role) error {
	if !s.IsAuthenticated() {
		return shared.ErrUnauthenticated
	}
	if s.Role != role {
		return shared.ErrForbidden.WithMessage("This operation requires the " + role.String() + " role")
	}
	return nil
}

// RequireActor checks the role and that the session acts for actorID
func (s Session) RequireActor(role Role, actorID uuid.UUID) error {
	if err := s.Require(role); err != nil {
		return err
	}
	if s.ActorID != actorID {
		return shared.ErrForbidden.WithMessage("Cannot act on behalf of another " + role.String())
	}
	return nil
}

// IsSupplier reports whether the session belongs to a supplier
func (s Session) IsSupplier() bool {
	return s.Role == RoleSupplier
}

// IsSupermarket reports whether the session belongs to a supermarket
func (s Session) IsSupermarket() bool {
	return s.Role == RoleSupermarket
}
