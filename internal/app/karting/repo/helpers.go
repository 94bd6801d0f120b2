package repo

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/spanner"
)

func nullTime(t time.Time) spanner.NullTime {
	if t.IsZero() {
		return spanner.NullTime{}
	}
	return spanner.NullTime{Time: t, Valid: true}
}

// jsonValue decodes a JSON document so Spanner stores it as a JSON value
// rather than a JSON string.
func jsonValue(payload string) interface{} {
	if payload == "" {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return payload
	}
	return v
}
