package domain

import "time"

// Reservation is what a customer asks for when booking track time.
type Reservation struct {
	ClientRut   string
	FeeOption   int64
	Persons     int64
	DateBooking time.Time
	StartTime   *time.Time
	SpecialDay  bool
	MainPerson  string
	Code        int64
}

// Booking is a committed reservation. It is immutable once created; the only
// transition left is deletion.
type Booking struct {
	id              string
	clientRut       string
	feeOption       int64
	persons         int64
	dateBooking     time.Time
	startTime       time.Time
	endTime         time.Time
	durationMinutes int64
	specialDay      bool
	mainPerson      string
	code            int64
	createdAt       time.Time

	events []DomainEvent
}

// NewBooking builds a booking from a priced reservation and its resolved window.
func NewBooking(id string, res Reservation, quote *Quote, window TimeWindow, now time.Time) (*Booking, error) {
	if res.Persons <= 0 {
		return nil, ErrInvalidNumberOfPersons
	}
	if window.Start.IsZero() {
		return nil, ErrMissingStartTime
	}

	b := &Booking{
		id:              id,
		clientRut:       res.ClientRut,
		feeOption:       quote.Rate.Option,
		persons:         res.Persons,
		dateBooking:     res.DateBooking,
		startTime:       window.Start,
		endTime:         window.End,
		durationMinutes: window.Minutes,
		specialDay:      res.SpecialDay,
		mainPerson:      res.MainPerson,
		code:            res.Code,
		createdAt:       now,
		events:          make([]DomainEvent, 0),
	}

	beforeTax, _ := quote.Total.BeforeTax.Int64()
	b.recordEvent(&BookingCreatedEvent{
		BookingID:      b.id,
		ClientRut:      b.clientRut,
		FeeOption:      b.feeOption,
		Persons:        b.persons,
		StartTime:      b.startTime,
		EndTime:        b.endTime,
		DiscountTotal:  quote.Discount.Fraction(),
		TotalBeforeTax: beforeTax,
		Tax:            quote.Total.TaxAmount(),
		TotalCharged:   quote.Total.ChargeAmount(),
		CreatedAt:      now,
	})

	return b, nil
}

// ReconstructBooking reconstitutes a Booking loaded from storage.
func ReconstructBooking(
	id, clientRut string,
	feeOption, persons int64,
	dateBooking, startTime, endTime time.Time,
	durationMinutes int64,
	specialDay bool,
	mainPerson string,
	code int64,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		clientRut:       clientRut,
		feeOption:       feeOption,
		persons:         persons,
		dateBooking:     dateBooking,
		startTime:       startTime,
		endTime:         endTime,
		durationMinutes: durationMinutes,
		specialDay:      specialDay,
		mainPerson:      mainPerson,
		code:            code,
		createdAt:       createdAt,
		events:          make([]DomainEvent, 0),
	}
}

// Getters
func (b *Booking) ID() string                  { return b.id }
func (b *Booking) ClientRut() string           { return b.clientRut }
func (b *Booking) FeeOption() int64            { return b.feeOption }
func (b *Booking) Persons() int64              { return b.persons }
func (b *Booking) DateBooking() time.Time      { return b.dateBooking }
func (b *Booking) StartTime() time.Time        { return b.startTime }
func (b *Booking) EndTime() time.Time          { return b.endTime }
func (b *Booking) DurationMinutes() int64      { return b.durationMinutes }
func (b *Booking) SpecialDay() bool            { return b.specialDay }
func (b *Booking) MainPerson() string          { return b.mainPerson }
func (b *Booking) Code() int64                 { return b.code }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) DomainEvents() []DomainEvent { return b.events }

// MarkDeleted records the deletion event. The row itself is removed by the repository.
func (b *Booking) MarkDeleted(now time.Time) {
	b.recordEvent(&BookingDeletedEvent{BookingID: b.id, DeletedAt: now})
}

// ClearEvents drops recorded events once they have been written to the outbox.
func (b *Booking) ClearEvents() {
	b.events = make([]DomainEvent, 0)
}

func (b *Booking) recordEvent(event DomainEvent) {
	b.events = append(b.events, event)
}
