package m_booking

import "time"

// Data represents the database model for the bookings table.
type Data struct {
	BookingID       string    `spanner:"booking_id"`
	ClientRut       string    `spanner:"client_rut"`
	FeeOption       int64     `spanner:"fee_option"`
	Persons         int64     `spanner:"persons"`
	DateBooking     time.Time `spanner:"date_booking"`
	StartTime       time.Time `spanner:"start_time"`
	EndTime         time.Time `spanner:"end_time"`
	DurationMinutes int64     `spanner:"duration_minutes"`
	SpecialDay      bool      `spanner:"special_day"`
	MainPerson      string    `spanner:"main_person"`
	Code            int64     `spanner:"code"`
	CreatedAt       time.Time `spanner:"created_at"`
}
