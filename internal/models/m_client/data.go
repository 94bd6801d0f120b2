package m_client

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the clients table.
type Data struct {
	ClientID    string           `spanner:"client_id"`
	Rut         string           `spanner:"rut"`
	Name        string           `spanner:"name"`
	Cash        int64            `spanner:"cash"`
	Frequency   int64            `spanner:"frequency"`
	DateOfBirth spanner.NullTime `spanner:"date_of_birth"`
	Version     int64            `spanner:"version"`
	CreatedAt   time.Time        `spanner:"created_at"`
	UpdatedAt   time.Time        `spanner:"updated_at"`
}
