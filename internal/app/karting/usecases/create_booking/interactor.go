package create_booking

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
	"github.com/light-bringer/karting-service/internal/pkg/lock"
)

// Request contains the data to book track time.
type Request struct {
	ClientRut string
	FeeOption int64
	Persons   int64
	// DateBooking defaults to now when nil.
	DateBooking *time.Time
	StartTime   *time.Time
	SpecialDay  bool
	MainPerson  string
	Code        int64
}

// Interactor handles the create booking use case.
type Interactor struct {
	clientRepo  contracts.ClientRepository
	bookingRepo contracts.BookingRepository
	outboxRepo  contracts.OutboxRepository
	committer   contracts.Committer
	locker      lock.Locker
	ledger      *domain.Ledger
	clock       clock.Clock
}

// NewInteractor creates a new create booking interactor.
func NewInteractor(
	clientRepo contracts.ClientRepository,
	bookingRepo contracts.BookingRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	locker lock.Locker,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		clientRepo:  clientRepo,
		bookingRepo: bookingRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		locker:      locker,
		ledger:      domain.NewLedger(),
		clock:       clock,
	}
}

// Execute prices the reservation, charges the client and stores the booking.
// Either every write lands in one commit or none does.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	// 1. Serialize bookings of the same client
	release, err := i.locker.Lock(ctx, "client:"+req.ClientRut)
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, domain.ErrLockNotAcquired
		}
		return nil, domain.NewStoreError(err)
	}
	defer release()

	// 2. Load client
	client, err := i.clientRepo.GetByRut(ctx, req.ClientRut)
	if err != nil {
		return nil, err
	}

	now := i.clock.Now()
	dateBooking := now
	if req.DateBooking != nil && !req.DateBooking.IsZero() {
		dateBooking = *req.DateBooking
	}

	// 3. Price against the client's current frequency
	quote, err := domain.QuoteBooking(req.FeeOption, req.Persons, dateBooking, req.SpecialDay, client)
	if err != nil {
		return nil, err
	}

	// 4. Resolve the track window
	window, err := domain.ResolveWindow(req.StartTime, quote.Rate.DurationMinutes)
	if err != nil {
		return nil, err
	}

	// 5. Charge
	charged, err := i.ledger.Charge(client, quote.Total.ChargeAmount(), now)
	if err != nil {
		return nil, err
	}

	booking, err := domain.NewBooking(uuid.New().String(), domain.Reservation{
		ClientRut:   client.Rut(),
		FeeOption:   req.FeeOption,
		Persons:     req.Persons,
		DateBooking: dateBooking,
		StartTime:   req.StartTime,
		SpecialDay:  req.SpecialDay,
		MainPerson:  req.MainPerson,
		Code:        req.Code,
	}, quote, window, now)
	if err != nil {
		return nil, err
	}

	// 6. Build the plan
	plan := committer.NewPlan()
	plan.Add(i.clientRepo.UpdateMut(charged))
	plan.Add(i.bookingRepo.InsertMut(booking))
	if err := txn.AddEvents(plan, i.outboxRepo, charged.DomainEvents()); err != nil {
		return nil, err
	}
	if err := txn.AddEvents(plan, i.outboxRepo, booking.DomainEvents()); err != nil {
		return nil, err
	}

	// 7. Commit, guarded by the version the charge was computed from
	check := committer.VersionCheck{
		Table:    m_client.TableName,
		Key:      spanner.Key{client.ID()},
		Column:   m_client.Version,
		Expected: client.Version(),
	}
	if err := i.committer.ApplyWithVersionCheck(ctx, check, plan); err != nil {
		log.Printf("create booking for client %s failed to commit: %v", client.ID(), err)
		return nil, txn.CommitError(err)
	}

	booking.ClearEvents()
	return booking, nil
}
