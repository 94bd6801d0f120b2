package m_outbox

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the outbox_events table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation inserting an outbox event.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(TableName, Columns, []interface{}{
		data.EventID,
		data.EventType,
		data.AggregateID,
		data.Payload,
		data.Status,
		spanner.CommitTimestamp,
		data.ProcessedAt,
		data.RetryCount,
		data.ErrorMessage,
	})
}

// MarkCompletedMut flags an event as delivered.
func (m *Model) MarkCompletedMut(eventID string) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{EventID, Status, ProcessedAt, ErrorMessage},
		[]interface{}{eventID, StatusCompleted, spanner.CommitTimestamp, spanner.NullString{}},
	)
}

// MarkRetryMut records a failed delivery attempt. status stays pending while
// retries remain; a failed event gets processed_at so cleanup can age it out.
func (m *Model) MarkRetryMut(eventID, status string, retryCount int64, errMsg string) *spanner.Mutation {
	var processedAt interface{} = spanner.NullTime{}
	if status == StatusFailed {
		processedAt = spanner.CommitTimestamp
	}
	return spanner.Update(TableName,
		[]string{EventID, Status, RetryCount, ErrorMessage, ProcessedAt},
		[]interface{}{eventID, status, retryCount, spanner.NullString{StringVal: errMsg, Valid: true}, processedAt},
	)
}
