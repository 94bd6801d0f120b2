package list_clients

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Query handles the list clients query use case.
type Query struct {
	repo contracts.ClientRepository
}

// NewQuery creates a new list clients query.
func NewQuery(repo contracts.ClientRepository) *Query {
	return &Query{repo: repo}
}

// Execute returns every client ordered by name.
func (q *Query) Execute(ctx context.Context) ([]*domain.Client, error) {
	return q.repo.List(ctx)
}
