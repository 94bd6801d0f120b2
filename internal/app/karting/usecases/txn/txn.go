// Package txn holds the plumbing every interactor shares when it turns an
// aggregate change into a commit plan.
package txn

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

// AddEvents serializes events and adds one outbox insert per event to plan.
func AddEvents(plan *committer.CommitPlan, outbox contracts.OutboxRepository, events []domain.DomainEvent) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event %s: %w", event.EventType(), err)
		}
		plan.Add(outbox.InsertMut(outbox.EnrichEvent(event, string(payload))))
	}
	return nil
}

// CommitError maps a committer failure onto the domain error model.
func CommitError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, committer.ErrVersionConflict) {
		return domain.ErrConcurrentModification
	}
	return domain.NewStoreError(err)
}
