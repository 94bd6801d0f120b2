package m_client

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the clients table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a client row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.ClientID,
		data.Rut,
		data.Name,
		data.Cash,
		data.Frequency,
		data.DateOfBirth,
		data.Version,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateMut creates a mutation updating the given columns of a client.
// updated_at is always set to the commit timestamp.
func (m *Model) UpdateMut(clientID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)
	columns = append(columns, ClientID)
	values = append(values, clientID)
	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}
	return spanner.Update(TableName, columns, values)
}
