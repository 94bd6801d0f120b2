package get_client

import (
	"context"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// Request looks a client up by id or, when ClientID is empty, by RUT.
type Request struct {
	ClientID string
	Rut      string
}

// Query handles the get client query use case.
type Query struct {
	repo contracts.ClientRepository
}

// NewQuery creates a new get client query.
func NewQuery(repo contracts.ClientRepository) *Query {
	return &Query{repo: repo}
}

// Execute retrieves a single client.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Client, error) {
	switch {
	case req.ClientID != "":
		return q.repo.GetByID(ctx, req.ClientID)
	case req.Rut != "":
		return q.repo.GetByRut(ctx, req.Rut)
	default:
		return nil, domain.ErrInvalidArgument
	}
}
