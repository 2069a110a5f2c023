package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User is a login account. Each user acts as exactly one supplier or one
// supermarket, identified by ActorID.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	ActorID      uuid.UUID
	LastLoginAt  *time.Time
}

// NewUser creates a new user with a hashed password
func NewUser(email, name, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.ErrInvalidInput.WithMessage("Name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("Role must be supplier or supermarket")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.ErrInvalidInput.WithMessage("Failed to hash password").Wrap(err)
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      string(hash),
		Role:              role,
	}
	user.AddDomainEvent(NewUserRegisteredEvent(user))
	return user, nil
}

// BindActor links the account to its supplier or supermarket record
func (u *User) BindActor(actorID uuid.UUID) {
	u.ActorID = actorID
	u.Touch(time.Now())
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps a successful login
func (u *User) RecordLogin(now time.Time) {
	u.LastLoginAt = &now
	u.Touch(now)
}

func validateEmail(email string) error {
	if email == "" {
		return shared.ErrInvalidInput.WithMessage("Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.ErrInvalidInput.WithMessage("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.ErrInvalidInput.WithMessage("Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.ErrInvalidInput.WithMessage("Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.ErrInvalidInput.WithMessage("Password cannot exceed 72 characters")
	}
	return nil
}
