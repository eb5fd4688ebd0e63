package repository

import (
	"gorm.io/gorm"
)

// DataAgent executes raw lookup queries and returns them as generic tables.
// The datainfo dispatch endpoint hands clients column-shaped results whose
// layout is decided by the query, not by a Go struct.
type DataAgent struct {
	db *gorm.DB
}

// NewDataAgent creates a new data agent
func NewDataAgent(db *gorm.DB) *DataAgent {
	return &DataAgent{db: db}
}

// Ensure DataAgent implements DataAgentInterface
var _ DataAgentInterface = (*DataAgent)(nil)

// Fill runs the query and materializes every row keyed by the column aliases
// the query declares. Byte-slice values are normalized to strings so the
// result marshals the same on sqlite and postgres.
func (a *DataAgent) Fill(query string, args ...interface{}) (*DataTable, error) {
	rows, err := a.db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := &DataTable{
		Columns: columns,
		Rows:    []map[string]any{},
	}
	values := make([]any, len(columns))
	scanTargets := make([]any, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				row[col] = string(v)
			default:
				row[col] = v
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
