package set_kart_availability

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// Request takes a kart in or out of service.
type Request struct {
	KartID    string
	Available bool
}

// Interactor handles the set kart availability use case.
type Interactor struct {
	repo       contracts.KartRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new set kart availability interactor.
func NewInteractor(
	repo contracts.KartRepository,
	outboxRepo contracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute flips availability. Setting the current value commits nothing.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Kart, error) {
	if req.KartID == "" {
		return nil, domain.ErrInvalidArgument
	}

	kart, err := i.repo.GetByID(ctx, req.KartID)
	if err != nil {
		return nil, err
	}

	kart.SetAvailable(req.Available, i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(kart))
	if plan.IsEmpty() {
		return kart, nil
	}
	if err := txn.AddEvents(plan, i.outboxRepo, kart.DomainEvents()); err != nil {
		return nil, err
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, txn.CommitError(err)
	}

	kart.ClearEvents()
	kart.Changes().Clear()
	return kart, nil
}
