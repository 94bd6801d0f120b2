package m_booking

// Field name constants for the bookings table.
const (
	TableName = "bookings"

	BookingID       = "booking_id"
	ClientRut       = "client_rut"
	FeeOption       = "fee_option"
	Persons         = "persons"
	DateBooking     = "date_booking"
	StartTime       = "start_time"
	EndTime         = "end_time"
	DurationMinutes = "duration_minutes"
	SpecialDay      = "special_day"
	MainPerson      = "main_person"
	Code            = "code"
	CreatedAt       = "created_at"
)

// Columns lists every column in Data field order.
var Columns = []string{
	BookingID, ClientRut, FeeOption, Persons, DateBooking, StartTime,
	EndTime, DurationMinutes, SpecialDay, MainPerson, Code, CreatedAt,
}
