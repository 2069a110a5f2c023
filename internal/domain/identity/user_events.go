package identity

import "github.com/swiftora/marketplace/internal/domain/shared"

const (
	AggregateTypeUser       = "User"
	EventTypeUserRegistered = "UserRegistered"
)

// UserRegisteredEvent is raised when a new account signs up
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, u.ID),
		Email:           u.Email,
		Role:            u.Role,
	}
}
