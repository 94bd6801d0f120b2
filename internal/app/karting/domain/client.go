package domain

import "time"

// Field names for change tracking
const (
	FieldName        = "name"
	FieldCash        = "cash"
	FieldFrequency   = "frequency"
	FieldDateOfBirth = "date_of_birth"
	FieldAvailable   = "available"
)

// Client is the paying customer. Its cash balance and visit frequency are
// the shared counters every booking reads and updates.
type Client struct {
	id          string
	rut         string
	name        string
	cash        int64
	frequency   int64
	dateOfBirth time.Time
	version     int64
	createdAt   time.Time
	updatedAt   time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewClient creates a new Client aggregate with zero visits.
func NewClient(id, rut, name string, cash int64, dateOfBirth, now time.Time) (*Client, error) {
	if rut == "" {
		return nil, ErrEmptyRut
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if cash < 0 {
		return nil, ErrNegativeBalance
	}

	c := &Client{
		id:          id,
		rut:         rut,
		name:        name,
		cash:        cash,
		dateOfBirth: dateOfBirth,
		createdAt:   now,
		updatedAt:   now,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
	c.changes.MarkDirty(FieldName, FieldCash, FieldFrequency, FieldDateOfBirth)

	c.recordEvent(&ClientRegisteredEvent{
		ClientID:     c.id,
		Rut:          c.rut,
		Name:         c.name,
		Cash:         c.cash,
		DateOfBirth:  c.dateOfBirth,
		RegisteredAt: now,
	})

	return c, nil
}

// ReconstructClient reconstitutes a Client loaded from storage.
func ReconstructClient(
	id, rut, name string,
	cash, frequency int64,
	dateOfBirth time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:          id,
		rut:         rut,
		name:        name,
		cash:        cash,
		frequency:   frequency,
		dateOfBirth: dateOfBirth,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (c *Client) ID() string                  { return c.id }
func (c *Client) Rut() string                 { return c.rut }
func (c *Client) Name() string                { return c.name }
func (c *Client) Cash() int64                 { return c.cash }
func (c *Client) Frequency() int64            { return c.frequency }
func (c *Client) DateOfBirth() time.Time      { return c.dateOfBirth }
func (c *Client) Version() int64              { return c.version }
func (c *Client) CreatedAt() time.Time        { return c.createdAt }
func (c *Client) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Client) Changes() *ChangeTracker     { return c.changes }
func (c *Client) DomainEvents() []DomainEvent { return c.events }

// UpdateDetails replaces the editable profile fields. Frequency is only
// ever advanced by the Ledger.
func (c *Client) UpdateDetails(name string, cash int64, dateOfBirth, now time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	if cash < 0 {
		return ErrNegativeBalance
	}

	changed := false
	if name != c.name {
		c.name = name
		c.changes.MarkDirty(FieldName)
		changed = true
	}
	if cash != c.cash {
		c.cash = cash
		c.changes.MarkDirty(FieldCash)
		changed = true
	}
	if !dateOfBirth.Equal(c.dateOfBirth) {
		c.dateOfBirth = dateOfBirth
		c.changes.MarkDirty(FieldDateOfBirth)
		changed = true
	}
	if !changed {
		return nil
	}
	c.updatedAt = now

	c.recordEvent(&ClientUpdatedEvent{
		ClientID:    c.id,
		Name:        c.name,
		Cash:        c.cash,
		DateOfBirth: c.dateOfBirth,
		UpdatedAt:   now,
	})
	return nil
}

// ClearEvents drops recorded events once they have been written to the outbox.
func (c *Client) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Client) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}

func (c *Client) clone() *Client {
	cp := *c
	cp.changes = c.changes.Clone()
	cp.events = append(make([]DomainEvent, 0, len(c.events)), c.events...)
	return &cp
}
