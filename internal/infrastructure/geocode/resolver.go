// Package geocode turns coordinates into display addresses and back.
// Results are for display only; callers substitute Placeholder on failure.
package geocode

import (
	"context"
	"errors"

	"github.com/swiftora/marketplace/internal/domain/partner"
)

// Placeholder is shown when an address cannot be resolved
const Placeholder = "Location not available"

// ErrNoResult is returned when the provider has no match
var ErrNoResult = errors.New("geocode: no result")

// Resolver converts between coordinates and human readable addresses
type Resolver interface {
	Reverse(ctx context.Context, loc partner.Location) (string, error)
	Forward(ctx context.Context, address string) (partner.Location, error)
}

// DisplayAddress resolves loc, falling back to the stored address and then
// to Placeholder. It never fails.
func DisplayAddress(ctx context.Context, r Resolver, loc partner.Location, stored string) string {
	if r != nil && !loc.IsZero() && loc.IsValid() {
		if addr, err := r.Reverse(ctx, loc); err == nil && addr != "" {
			return addr
		}
	}
	if stored != "" {
		return stored
	}
	return Placeholder
}

// NopResolver never resolves anything
type NopResolver struct{}

// Reverse implements Resolver
func (NopResolver) Reverse(context.Context, partner.Location) (string, error) {
	return "", ErrNoResult
}

// Forward implements Resolver
func (NopResolver) Forward(context.Context, string) (partner.Location, error) {
	return partner.Location{}, ErrNoResult
}
