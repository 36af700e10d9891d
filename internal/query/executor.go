package query

import (
	"context"
	"database/sql"
	"time"

	"github.com/playsql/playground/internal/sqlite"
)

var (
	// QueryTimeout bounds the Execute step. The original playground
	// let statements run unbounded; see DESIGN.md.
	QueryTimeout = 5 * time.Second
)

// Result is the harvested outcome of one sandboxed statement: column
// names in engine order and rows as ordered tuples of engine-native
// values, passed through uncoerced.
type Result struct {
	Columns  []string
	Rows     [][]any
	RowCount int
}

// Executor runs guard-approved statements, each inside its own
// ephemeral seeded engine instance. It holds no state and is safe
// under unbounded concurrent use.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Run provisions a fresh in-memory engine, seeds it with the sample
// data, executes sqlText as a single statement, harvests the result
// set, and tears the engine down. The engine is released on every
// exit path.
func (e *Executor) Run(sqlText string) (*Result, error) {
	engine, err := sqlite.Provision()
	if err != nil {
		return nil, sqlite.NewInternalError()
	}
	defer engine.Close()

	ctx, cancel := context.WithTimeout(context.Background(), QueryTimeout)
	defer cancel()

	if err := sqlite.Seed(ctx, engine.DB()); err != nil {
		return nil, sqlite.NewInternalError()
	}

	rows, err := engine.DB().QueryContext(ctx, sqlText)
	if err != nil {
		return nil, sqlite.TranslateQueryError(err)
	}
	defer rows.Close()

	result, err := harvestRows(rows)
	if err != nil {
		return nil, sqlite.TranslateQueryError(err)
	}

	return result, nil
}

// harvestRows reads column names and all result rows in engine order.
// A statement with no result set yields empty columns and rows.
func harvestRows(rows *sql.Rows) (*Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if columns == nil {
		columns = []string{}
	}

	results := make([][]any, 0)

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		results = append(results, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Result{
		Columns:  columns,
		Rows:     results,
		RowCount: len(results),
	}, nil
}
