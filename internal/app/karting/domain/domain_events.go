package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ClientRegisteredEvent is emitted when a client is created.
type ClientRegisteredEvent struct {
	ClientID     string
	Rut          string
	Name         string
	Cash         int64
	DateOfBirth  time.Time
	RegisteredAt time.Time
}

func (e *ClientRegisteredEvent) EventType() string   { return "client.registered" }
func (e *ClientRegisteredEvent) AggregateID() string { return e.ClientID }

// ClientUpdatedEvent is emitted when client details or balance are edited.
type ClientUpdatedEvent struct {
	ClientID    string
	Name        string
	Cash        int64
	DateOfBirth time.Time
	UpdatedAt   time.Time
}

func (e *ClientUpdatedEvent) EventType() string   { return "client.updated" }
func (e *ClientUpdatedEvent) AggregateID() string { return e.ClientID }

// ClientChargedEvent is emitted when the ledger debits a booking total.
type ClientChargedEvent struct {
	ClientID     string
	Rut          string
	Amount       int64
	CashAfter    int64
	FrequencyNow int64
	ChargedAt    time.Time
}

func (e *ClientChargedEvent) EventType() string   { return "client.charged" }
func (e *ClientChargedEvent) AggregateID() string { return e.ClientID }

// BookingCreatedEvent is emitted when a reservation is committed.
type BookingCreatedEvent struct {
	BookingID      string
	ClientRut      string
	FeeOption      int64
	Persons        int64
	StartTime      time.Time
	EndTime        time.Time
	DiscountTotal  float64
	TotalBeforeTax int64
	Tax            int64
	TotalCharged   int64
	CreatedAt      time.Time
}

func (e *BookingCreatedEvent) EventType() string   { return "booking.created" }
func (e *BookingCreatedEvent) AggregateID() string { return e.BookingID }

// BookingDeletedEvent is emitted when a reservation is removed.
type BookingDeletedEvent struct {
	BookingID string
	DeletedAt time.Time
}

func (e *BookingDeletedEvent) EventType() string   { return "booking.deleted" }
func (e *BookingDeletedEvent) AggregateID() string { return e.BookingID }

// KartRegisteredEvent is emitted when a kart joins the fleet.
type KartRegisteredEvent struct {
	KartID       string
	Code         string
	Available    bool
	RegisteredAt time.Time
}

func (e *KartRegisteredEvent) EventType() string   { return "kart.registered" }
func (e *KartRegisteredEvent) AggregateID() string { return e.KartID }

// KartAvailabilityChangedEvent is emitted when a kart is taken in or out of service.
type KartAvailabilityChangedEvent struct {
	KartID    string
	Available bool
	ChangedAt time.Time
}

func (e *KartAvailabilityChangedEvent) EventType() string   { return "kart.availability_changed" }
func (e *KartAvailabilityChangedEvent) AggregateID() string { return e.KartID }
