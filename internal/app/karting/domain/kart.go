package domain

import "time"

// Kart is a vehicle in the fleet registry.
type Kart struct {
	id        string
	code      string
	available bool
	createdAt time.Time
	updatedAt time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewKart registers a kart. code is the human-readable identifier, e.g. "K001".
func NewKart(id, code string, available bool, now time.Time) (*Kart, error) {
	if code == "" {
		return nil, ErrEmptyName
	}

	k := &Kart{
		id:        id,
		code:      code,
		available: available,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
	k.changes.MarkDirty(FieldName, FieldAvailable)
	k.recordEvent(&KartRegisteredEvent{
		KartID:       k.id,
		Code:         k.code,
		Available:    k.available,
		RegisteredAt: now,
	})
	return k, nil
}

// ReconstructKart reconstitutes a Kart loaded from storage.
func ReconstructKart(id, code string, available bool, createdAt, updatedAt time.Time) *Kart {
	return &Kart{
		id:        id,
		code:      code,
		available: available,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
}

func (k *Kart) ID() string                  { return k.id }
func (k *Kart) Code() string                { return k.code }
func (k *Kart) Available() bool             { return k.available }
func (k *Kart) CreatedAt() time.Time        { return k.createdAt }
func (k *Kart) UpdatedAt() time.Time        { return k.updatedAt }
func (k *Kart) Changes() *ChangeTracker     { return k.changes }
func (k *Kart) DomainEvents() []DomainEvent { return k.events }

// SetAvailable takes the kart in or out of service. Setting the current
// value is a no-op.
func (k *Kart) SetAvailable(available bool, now time.Time) {
	if k.available == available {
		return
	}
	k.available = available
	k.updatedAt = now
	k.changes.MarkDirty(FieldAvailable)
	k.recordEvent(&KartAvailabilityChangedEvent{
		KartID:    k.id,
		Available: available,
		ChangedAt: now,
	})
}

// ClearEvents drops recorded events once they have been written to the outbox.
func (k *Kart) ClearEvents() {
	k.events = make([]DomainEvent, 0)
}

func (k *Kart) recordEvent(event DomainEvent) {
	k.events = append(k.events, event)
}
