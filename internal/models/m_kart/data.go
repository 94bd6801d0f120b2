package m_kart

import "time"

// Data represents the database model for the karts table.
type Data struct {
	KartID    string    `spanner:"kart_id"`
	Code      string    `spanner:"code"`
	Available bool      `spanner:"available"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
