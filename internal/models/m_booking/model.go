package m_booking

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the bookings table.
// Bookings are never updated in place, so there is no UpdateMut.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting a booking row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.BookingID,
		data.ClientRut,
		data.FeeOption,
		data.Persons,
		data.DateBooking,
		data.StartTime,
		data.EndTime,
		data.DurationMinutes,
		data.SpecialDay,
		data.MainPerson,
		data.Code,
		spanner.CommitTimestamp,
	})
}

// DeleteMut creates a mutation deleting a booking (hard delete).
func (m *Model) DeleteMut(bookingID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{bookingID})
}
