package query

import (
	"strings"

	"github.com/playsql/playground/internal/sqlite"
)

// forbiddenKeywords are the mutating operations the playground blocks,
// tested in this order; the first match wins.
var forbiddenKeywords = []string{
	"DROP", "DELETE", "UPDATE", "INSERT", "ALTER", "CREATE", "TRUNCATE",
}

// ValidateQuery rejects queries that are empty after trimming. It runs
// before CheckPolicy; the guard never sees an empty statement.
func ValidateQuery(sqlText string) error {
	if strings.TrimSpace(sqlText) == "" {
		return sqlite.NewPlayError(
			sqlite.ErrorCodeEmptyQuery,
			"Query cannot be empty",
		)
	}
	return nil
}

// CheckPolicy rejects statements that textually contain a forbidden
// operation keyword.
//
// This is a lexical substring check on the uppercased query, not a
// tokenizer: a keyword is matched anywhere in the text, including
// inside identifiers (a column named updated_at trips UPDATE), string
// literals, and comments. That over-breadth is the documented policy
// and is preserved as-is.
func CheckPolicy(sqlText string) error {
	upperSQL := strings.ToUpper(sqlText)

	for _, keyword := range forbiddenKeywords {
		if strings.Contains(upperSQL, keyword) {
			return sqlite.NewPlayError(
				sqlite.ErrorCodeForbiddenKeyword,
				keyword+" operations are not allowed in this playground",
			)
		}
	}

	return nil
}
