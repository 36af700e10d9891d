package sqlite

// SchemaDescription is the static description of the sample schema
// served to clients for display. It is documentation, not
// introspection: it is never derived from a live engine instance.
type SchemaDescription struct {
	Tables []TableDescription `json:"tables"`
}

// TableDescription describes one sample table.
type TableDescription struct {
	Name    string              `json:"name"`
	Columns []ColumnDescription `json:"columns"`
}

// ColumnDescription describes one column of a sample table.
type ColumnDescription struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Constraint string `json:"constraint"`
}

var schemaDescription = SchemaDescription{
	Tables: []TableDescription{
		{
			Name: "employees",
			Columns: []ColumnDescription{
				{Name: "id", Type: "INTEGER", Constraint: "PRIMARY KEY"},
				{Name: "name", Type: "TEXT", Constraint: "NOT NULL"},
				{Name: "department", Type: "TEXT", Constraint: ""},
				{Name: "salary", Type: "INTEGER", Constraint: ""},
				{Name: "hire_date", Type: "TEXT", Constraint: ""},
			},
		},
		{
			Name: "departments",
			Columns: []ColumnDescription{
				{Name: "id", Type: "INTEGER", Constraint: "PRIMARY KEY"},
				{Name: "name", Type: "TEXT", Constraint: "NOT NULL"},
				{Name: "location", Type: "TEXT", Constraint: ""},
			},
		},
	},
}

// DescribeSchema returns the static sample-schema description.
func DescribeSchema() SchemaDescription {
	return schemaDescription
}
