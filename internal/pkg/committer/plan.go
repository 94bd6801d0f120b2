// Package committer applies batches of Spanner mutations atomically.
//
// Repositories never write. They return *spanner.Mutation values that a
// usecase collects into a CommitPlan together with the outbox rows for the
// aggregate's domain events, and the plan is applied in one transaction:
//
//	plan := committer.NewPlan()
//	plan.Add(clientRepo.UpdateMut(client))
//	plan.Add(bookingRepo.InsertMut(booking))
//	for _, event := range booking.DomainEvents() {
//	    plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	}
//	err := comm.ApplyWithVersionCheck(ctx, committer.VersionCheck{...}, plan)
//
// ApplyWithVersionCheck re-reads a version column inside the transaction and
// refuses to write when another writer got there first.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
)

// ErrVersionConflict is returned when the row's version no longer matches.
var ErrVersionConflict = errors.New("optimistic lock conflict")

// CommitPlan collects mutations to be applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// VersionCheck names the row and version column guarded by ApplyWithVersionCheck.
type VersionCheck struct {
	Table    string
	Key      spanner.Key
	Column   string
	Expected int64
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	// Store errors are returned unwrapped; callers surface them verbatim.
	_, err := c.client.Apply(ctx, plan.Mutations())
	return err
}

// ApplyWithVersionCheck executes the plan inside a read-write transaction
// after confirming check.Column still holds check.Expected.
// Returns an error wrapping ErrVersionConflict when it does not.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, check VersionCheck, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, check.Table, check.Key, []string{check.Column})
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				return fmt.Errorf("%s row %v disappeared: %w", check.Table, check.Key, ErrVersionConflict)
			}
			return err
		}

		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}

		if current != check.Expected {
			return fmt.Errorf("%s version expected %d, got %d: %w", check.Table, check.Expected, current, ErrVersionConflict)
		}

		return txn.BufferWrite(plan.Mutations())
	})
	return err
}
