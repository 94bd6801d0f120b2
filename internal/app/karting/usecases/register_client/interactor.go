package register_client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// Request contains the data to register a client.
type Request struct {
	Rut         string
	Name        string
	Cash        int64
	DateOfBirth time.Time
}

// Interactor handles the register client use case.
type Interactor struct {
	repo       contracts.ClientRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new register client interactor.
func NewInteractor(
	repo contracts.ClientRepository,
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

// Execute creates a client with zero visits. RUTs are unique.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Client, error) {
	_, err := i.repo.GetByRut(ctx, req.Rut)
	switch {
	case err == nil:
		return nil, domain.ErrClientAlreadyExists
	case !errors.Is(err, domain.ErrClientNotFound):
		return nil, err
	}

	client, err := domain.NewClient(uuid.New().String(), req.Rut, req.Name, req.Cash, req.DateOfBirth, i.clock.Now())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(client))
	if err := txn.AddEvents(plan, i.outboxRepo, client.DomainEvents()); err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// Lost the race against another registration of the same RUT.
		if spanner.ErrCode(err) == codes.AlreadyExists {
			return nil, domain.ErrClientAlreadyExists
		}
		return nil, txn.CommitError(err)
	}

	client.ClearEvents()
	client.Changes().Clear()
	return client, nil
}
