package handler

import (
	"time"

	"github.com/google/uuid"
	appidentity "github.com/swiftora/marketplace/internal/application/identity"
	"github.com/swiftora/marketplace/internal/domain/identity"
)

// AuthUserResponse represents user data in auth responses
type AuthUserResponse struct {
	ID      uuid.UUID     `json:"id"`
	ActorID uuid.UUID     `json:"actor_id"`
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Role    identity.Role `json:"role"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   time.Time        `json:"expires_at"`
	TokenType   string           `json:"token_type"`
	User        AuthUserResponse `json:"user"`
}

func toAuthUserResponse(u appidentity.UserInfo) AuthUserResponse {
	return AuthUserResponse{
		ID:      u.ID,
		ActorID: u.ActorID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
	}
}
