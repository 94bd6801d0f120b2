package m_client

// Field name constants for the clients table.
const (
	TableName = "clients"
	RutIndex  = "clients_by_rut"

	ClientID    = "client_id"
	Rut         = "rut"
	Name        = "name"
	Cash        = "cash"
	Frequency   = "frequency"
	DateOfBirth = "date_of_birth"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
)

// Columns lists every column in Data field order.
var Columns = []string{ClientID, Rut, Name, Cash, Frequency, DateOfBirth, Version, CreatedAt, UpdatedAt}
