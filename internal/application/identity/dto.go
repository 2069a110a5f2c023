package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
)

// RegisterRequest creates an account together with its supplier or
// supermarket record
type RegisterRequest struct {
	Email     string
	Password  string
	Name      string
	Role      identity.Role
	Contact   string
	Address   string
	Latitude  float64
	Longitude float64
}

// LoginRequest contains the credentials for a login
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult is a successful login
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	TokenType   string
	User        UserInfo
}

// UserInfo is the account summary returned to the caller
type UserInfo struct {
	ID      uuid.UUID
	ActorID uuid.UUID
	Email   string
	Name    string
	Role    identity.Role
}

// ProfileResponse is the caller's own supplier or supermarket profile
type ProfileResponse struct {
	UserID    uuid.UUID     `json:"user_id"`
	ActorID   uuid.UUID     `json:"actor_id"`
	Role      identity.Role `json:"role"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Contact   string        `json:"contact"`
	Address   string        `json:"address"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
}

// ToUserInfo converts a domain user
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:      u.ID,
		ActorID: u.ActorID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
	}
}

func toProfileResponse(s identity.Session, p partner.Profile) *ProfileResponse {
	return &ProfileResponse{
		UserID:    s.UserID,
		ActorID:   s.ActorID,
		Role:      s.Role,
		Name:      p.Name,
		Email:     p.Email,
		Contact:   p.Contact,
		Address:   p.Address,
		Latitude:  p.Location.Lat,
		Longitude: p.Location.Lng,
	}
}

func (r RegisterRequest) profile() partner.Profile {
	return partner.Profile{
		Name:     r.Name,
		Email:    r.Email,
		Contact:  r.Contact,
		Address:  r.Address,
		Location: partner.Location{Lat: r.Latitude, Lng: r.Longitude},
	}
}
