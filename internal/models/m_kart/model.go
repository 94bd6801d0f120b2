package m_kart

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the karts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a kart row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.KartID,
		data.Code,
		data.Available,
		spanner.CommitTimestamp,
		spanner.CommitTimestamp,
	})
}

// UpdateAvailabilityMut creates a mutation flipping a kart's availability.
func (m *Model) UpdateAvailabilityMut(kartID string, available bool) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{KartID, Available, UpdatedAt},
		[]interface{}{kartID, available, spanner.CommitTimestamp},
	)
}
