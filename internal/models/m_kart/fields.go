package m_kart

// Field name constants for the karts table.
const (
	TableName = "karts"

	KartID    = "kart_id"
	Code      = "code"
	Available = "available"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)

// Columns lists every column in Data field order.
var Columns = []string{KartID, Code, Available, CreatedAt, UpdatedAt}
