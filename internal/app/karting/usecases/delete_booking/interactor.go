package delete_booking

import (
	"context"
	"strings"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// Request identifies the booking to delete.
type Request struct {
	BookingID string
}

// Interactor handles the delete booking use case.
type Interactor struct {
	bookingRepo contracts.BookingRepository
	outboxRepo  contracts.OutboxRepository
	committer   contracts.Committer
	clock       clock.Clock
}

// NewInteractor creates a new delete booking interactor.
func NewInteractor(
	bookingRepo contracts.BookingRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		bookingRepo: bookingRepo,
		outboxRepo:  outboxRepo,
		committer:   committer,
		clock:       clock,
	}
}

// Execute removes a booking. The client's balance is not refunded.
func (i *Interactor) Execute(ctx context.Context, req *Request) (bool, error) {
	if req == nil || strings.TrimSpace(req.BookingID) == "" {
		return false, domain.ErrInvalidArgument
	}

	booking, err := i.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return false, err
	}

	booking.MarkDeleted(i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.bookingRepo.DeleteMut(booking.ID()))
	if err := txn.AddEvents(plan, i.outboxRepo, booking.DomainEvents()); err != nil {
		return false, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return false, txn.CommitError(err)
	}

	return true, nil
}
