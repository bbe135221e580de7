package monday

// Board describes a Monday.com board as returned by the GraphQL API.
type Board struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	State       string   `json:"state"`
	Columns     []Column `json:"columns,omitempty"`
}

type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// ColumnValue is one cell of an item. Text carries the display value,
// Value the raw serialized column payload.
type ColumnValue struct {
	ID     string `json:"id"`
	Column Column `json:"column"`
	Text   string `json:"text"`
	Value  string `json:"value"`
}

// Item is a raw board record with its column values. It is owned by the
// external service and treated as read-only here.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
	State        string        `json:"state"`
	ColumnValues []ColumnValue `json:"column_values"`
}
