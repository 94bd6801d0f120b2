package register_kart

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// Request contains the data to register a kart.
type Request struct {
	Code      string
	Available bool
}

// Interactor handles the register kart use case.
type Interactor struct {
	repo       contracts.KartRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new register kart interactor.
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

// Execute adds a kart to the fleet.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Kart, error) {
	kart, err := domain.NewKart(uuid.New().String(), req.Code, req.Available, i.clock.Now())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(kart))
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
