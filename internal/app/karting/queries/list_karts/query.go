package list_karts

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Request filters the fleet listing.
type Request struct {
	OnlyAvailable bool
}

// Query handles the list karts query use case.
type Query struct {
	repo contracts.KartRepository
}

// NewQuery creates a new list karts query.
func NewQuery(repo contracts.KartRepository) *Query {
	return &Query{repo: repo}
}

// Execute returns the fleet ordered by code.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*domain.Kart, error) {
	karts, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !req.OnlyAvailable {
		return karts, nil
	}

	available := make([]*domain.Kart, 0, len(karts))
	for _, k := range karts {
		if k.Available() {
			available = append(available, k)
		}
	}
	return available, nil
}
