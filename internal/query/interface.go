package query

// QueryRunner defines the interface for running sandboxed SQL queries
type QueryRunner interface {
	Run(sql string) (*Result, error)
}

// Ensure Executor implements QueryRunner
var _ QueryRunner = (*Executor)(nil)
