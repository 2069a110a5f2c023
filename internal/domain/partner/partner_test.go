package partner

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

func validProfile() Profile {
	return Profile{
		Name:     "Green Valley Foods",
		Email:    "sales@greenvalley.example",
		Contact:  "+91 98765 43210",
		Address:  "12 Market Road, Pune",
		Location: Location{Lat: 18.5204, Lng: 73.8567},
	}
}

func TestNewSupplier(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		userID := uuid.New()
		s, err := NewSupplier(userID, validProfile())
		require.NoError(t, err)
		assert.Equal(t, userID, s.UserID)
		assert.Equal(t, "Green Valley Foods", s.Name)
		assert.Equal(t, 1, s.Version)
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := NewSupplier(uuid.Nil, validProfile())
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("requires name", func(t *testing.T) {
		p := validProfile()
		p.Name = "  "
		_, err := NewSupplier(uuid.New(), p)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestSupermarket_UpdateProfile(t *testing.T) {
	s, err := NewSupermarket(uuid.New(), validProfile())
	require.NoError(t, err)

	t.Run("updates fields and version", func(t *testing.T) {
		loc := Location{Lat: 19.076, Lng: 72.8777}
		require.NoError(t, s.UpdateProfile("City Mart", "022-1234", "Andheri, Mumbai", loc))
		assert.Equal(t, "City Mart", s.Name)
		assert.Equal(t, "Andheri, Mumbai", s.Address)
		assert.Equal(t, loc, s.Location)
		assert.Equal(t, "sales@greenvalley.example", s.Email)
		assert.Equal(t, 2, s.Version)
	})

	t.Run("rejects invalid location and keeps previous profile", func(t *testing.T) {
		err := s.UpdateProfile("City Mart", "022-1234", "Nowhere", Location{Lat: 200})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, "Andheri, Mumbai", s.Address)
	})
}

func TestLocation(t *testing.T) {
	assert.True(t, Location{}.IsZero())
	assert.False(t, Location{Lat: 1}.IsZero())
	assert.Equal(t, Location{Lat: 18.5204, Lng: 73.8567}, Location{Lat: 18.52041234, Lng: 73.85669999}.Rounded(4))
	assert.Equal(t, "18.520400,73.856700", Location{Lat: 18.5204, Lng: 73.8567}.String())
}
