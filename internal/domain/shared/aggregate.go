package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseAggregateRoot carries identity, timestamps, the optimistic lock version
// and the events an aggregate raised since it was loaded.
type BaseAggregateRoot struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`

	domainEvents []DomainEvent
}

// NewBaseAggregateRoot starts a fresh aggregate at version 1
func NewBaseAggregateRoot() BaseAggregateRoot {
	now := time.Now()
	return BaseAggregateRoot{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func (a *BaseAggregateRoot) GetID() uuid.UUID        { return a.ID }
func (a *BaseAggregateRoot) GetCreatedAt() time.Time { return a.CreatedAt }
func (a *BaseAggregateRoot) GetUpdatedAt() time.Time { return a.UpdatedAt }
func (a *BaseAggregateRoot) GetVersion() int         { return a.Version }

// Touch moves UpdatedAt without bumping the version. Use it for changes that
// are not guarded by the version column, such as a login timestamp.
func (a *BaseAggregateRoot) Touch(now time.Time) {
	a.UpdatedAt = now
}

// Modified records a state change: UpdatedAt moves to now and the version
// the repository compares against is bumped.
func (a *BaseAggregateRoot) Modified(now time.Time) {
	a.UpdatedAt = now
	a.Version++
}

// AddDomainEvent queues an event for publication after the aggregate is saved
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the queued events in the order they were raised
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
