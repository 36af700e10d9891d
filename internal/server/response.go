package server

import (
	"encoding/json"
	"net/http"

	"github.com/playsql/playground/internal/query"
)

// QueryRequest represents an incoming SQL query request
type QueryRequest struct {
	Query string `json:"query"`
}

// SuccessResponse is the envelope for a statement that executed.
// Columns and Rows are always present, even when empty.
type SuccessResponse struct {
	Success  bool     `json:"success"`
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
}

// ErrorResponse is the envelope for any failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewSuccessResponse creates a successful query response
func NewSuccessResponse(result *query.Result) *SuccessResponse {
	columns := result.Columns
	if columns == nil {
		columns = []string{}
	}
	rows := result.Rows
	if rows == nil {
		rows = [][]any{}
	}

	return &SuccessResponse{
		Success:  true,
		Columns:  columns,
		Rows:     rows,
		RowCount: result.RowCount,
	}
}

// WriteJSON writes a response body as JSON to the HTTP response writer
func WriteJSON(w http.ResponseWriter, statusCode int, response any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	encoder := json.NewEncoder(w)
	return encoder.Encode(response)
}

// WriteSuccess writes a successful query response with 200 OK status
func WriteSuccess(w http.ResponseWriter, result *query.Result) error {
	return WriteJSON(w, http.StatusOK, NewSuccessResponse(result))
}

// WriteFailure writes a failure envelope. Domain failures always go
// out with 200 OK; the outcome lives in the body's success field.
func WriteFailure(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, &ErrorResponse{
		Success: false,
		Error:   message,
	})
}
