package list_rates

import "github.com/light-bringer/karting-service/internal/app/karting/domain"

// Query exposes the rate catalog.
type Query struct{}

// NewQuery creates a new list rates query.
func NewQuery() *Query {
	return &Query{}
}

// Execute returns the catalog ordered by fee option.
func (q *Query) Execute() []domain.Rate {
	return domain.Rates()
}
