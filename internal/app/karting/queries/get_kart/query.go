package get_kart

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Request contains the kart ID to retrieve.
type Request struct {
	KartID string
}

// Query handles the get kart query use case.
type Query struct {
	repo contracts.KartRepository
}

// NewQuery creates a new get kart query.
func NewQuery(repo contracts.KartRepository) *Query {
	return &Query{repo: repo}
}

// Execute retrieves a kart by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Kart, error) {
	if req.KartID == "" {
		return nil, domain.ErrInvalidArgument
	}
	return q.repo.GetByID(ctx, req.KartID)
}
