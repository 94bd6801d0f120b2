package update_client

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/txn"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// Request contains the editable client fields. All of them are replaced.
type Request struct {
	ClientID    string
	Name        string
	Cash        int64
	DateOfBirth time.Time
}

// Interactor handles the update client use case.
type Interactor struct {
	repo       contracts.ClientRepository
	outboxRepo contracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update client interactor.
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

// Execute updates a client's profile, guarded by its version.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Client, error) {
	if req.ClientID == "" {
		return nil, domain.ErrInvalidArgument
	}

	client, err := i.repo.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	loadedVersion := client.Version()

	if err := client.UpdateDetails(req.Name, req.Cash, req.DateOfBirth, i.clock.Now()); err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(client))
	if plan.IsEmpty() {
		return client, nil
	}
	if err := txn.AddEvents(plan, i.outboxRepo, client.DomainEvents()); err != nil {
		return nil, err
	}

	check := committer.VersionCheck{
		Table:    m_client.TableName,
		Key:      spanner.Key{client.ID()},
		Column:   m_client.Version,
		Expected: loadedVersion,
	}
	if err := i.committer.ApplyWithVersionCheck(ctx, check, plan); err != nil {
		return nil, txn.CommitError(err)
	}

	client.ClearEvents()
	client.Changes().Clear()
	return domain.ReconstructClient(client.ID(), client.Rut(), client.Name(), client.Cash(), client.Frequency(),
		client.DateOfBirth(), loadedVersion+1, client.CreatedAt(), client.UpdatedAt()), nil
}
