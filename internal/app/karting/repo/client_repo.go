package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/pkg/query"
)

// ClientRepo implements ClientRepository for Spanner.
type ClientRepo struct {
	client *spanner.Client
	model  *m_client.Model
}

// NewClientRepo creates a new ClientRepo.
func NewClientRepo(client *spanner.Client) contracts.ClientRepository {
	return &ClientRepo{
		client: client,
		model:  m_client.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new client.
func (r *ClientRepo) InsertMut(c *domain.Client) *spanner.Mutation {
	return r.model.InsertMut(clientToData(c))
}

// UpdateMut creates a mutation for the dirty fields of c and increments its version.
func (r *ClientRepo) UpdateMut(c *domain.Client) *spanner.Mutation {
	changes := c.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if changes.Dirty(domain.FieldName) {
		updates[m_client.Name] = c.Name()
	}
	if changes.Dirty(domain.FieldCash) {
		updates[m_client.Cash] = c.Cash()
	}
	if changes.Dirty(domain.FieldFrequency) {
		updates[m_client.Frequency] = c.Frequency()
	}
	if changes.Dirty(domain.FieldDateOfBirth) {
		updates[m_client.DateOfBirth] = nullTime(c.DateOfBirth())
	}
	if len(updates) == 0 {
		return nil
	}

	updates[m_client.Version] = c.Version() + 1

	return r.model.UpdateMut(c.ID(), updates)
}

// GetByID loads a client by primary key.
func (r *ClientRepo) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	row, err := r.client.Single().ReadRow(ctx, m_client.TableName, spanner.Key{clientID}, m_client.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrClientNotFound
		}
		return nil, domain.NewStoreError(err)
	}
	return rowToClient(row)
}

// GetByRut loads a client by legal id through the unique rut index.
func (r *ClientRepo) GetByRut(ctx context.Context, rut string) (*domain.Client, error) {
	stmt := query.From(m_client.TableName).
		Select(m_client.Columns...).
		Where(query.Eq(m_client.Rut, rut)).
		Limit(1).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrClientNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError(err)
	}
	return rowToClient(row)
}

// List returns all clients ordered by name.
func (r *ClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	stmt := query.From(m_client.TableName).
		Select(m_client.Columns...).
		OrderBy(m_client.Name, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	clients := make([]*domain.Client, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domain.NewStoreError(err)
		}
		c, err := rowToClient(row)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func rowToClient(row *spanner.Row) (*domain.Client, error) {
	var data m_client.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, domain.NewStoreError(err)
	}
	return domain.ReconstructClient(
		data.ClientID,
		data.Rut,
		data.Name,
		data.Cash,
		data.Frequency,
		data.DateOfBirth.Time,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}

func clientToData(c *domain.Client) *m_client.Data {
	return &m_client.Data{
		ClientID:    c.ID(),
		Rut:         c.Rut(),
		Name:        c.Name(),
		Cash:        c.Cash(),
		Frequency:   c.Frequency(),
		DateOfBirth: nullTime(c.DateOfBirth()),
		Version:     c.Version(),
	}
}
