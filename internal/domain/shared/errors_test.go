package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("custom message still matches sentinel", func(t *testing.T) {
		err := ErrInsufficientStock.WithMessage("Quantity exceeds available stock (5)")
		assert.True(t, errors.Is(err, ErrInsufficientStock))
		assert.False(t, errors.Is(err, ErrInvalidQuantity))
		assert.Equal(t, "Quantity exceeds available stock (5)", err.Error())
	})

	t.Run("wrapped domain error matches through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("place order: %w", ErrIllegalTransition)
		assert.True(t, errors.Is(err, ErrIllegalTransition))
		assert.Equal(t, CodeIllegalTransition, CodeOf(err))
	})

	t.Run("wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := ErrUpstreamUnavailable.Wrap(cause)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	})

	t.Run("plain error has no code", func(t *testing.T) {
		assert.Equal(t, "", CodeOf(errors.New("boom")))
	})
}

func TestIsDomainRule(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrDuplicateRequest, true},
		{ErrInvalidQuantity, true},
		{ErrInsufficientStock, true},
		{ErrIllegalTransition, true},
		{ErrNotFound, false},
		{ErrUnauthenticated, false},
		{ErrUpstreamUnavailable, false},
		{errors.New("other"), false},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsDomainRule(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrUpstreamUnavailable))
	assert.True(t, IsRetryable(fmt.Errorf("save: %w", ErrConcurrencyConflict)))
	assert.False(t, IsRetryable(ErrIllegalTransition))
	assert.False(t, IsRetryable(nil))
}
