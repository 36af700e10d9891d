package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/playsql/playground/internal/query"
)

// envelope covers both response shapes for decoding in tests.
type envelope struct {
	Success  bool     `json:"success"`
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
	Error    string   `json:"error"`
}

func newTestHandler() *Handler {
	return NewHandler(query.NewExecutor())
}

func postExecute(t *testing.T, handler *Handler, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/execute", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.HandleExecute(w, req)

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return w, resp
}

func TestHandleExecute_Success(t *testing.T) {
	handler := newTestHandler()

	w, resp := postExecute(t, handler, `{"query": "SELECT * FROM employees WHERE department = 'Engineering' ORDER BY id"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !resp.Success {
		t.Fatalf("Expected success=true, got error: %s", resp.Error)
	}

	wantColumns := []string{"id", "name", "department", "salary", "hire_date"}
	if len(resp.Columns) != len(wantColumns) {
		t.Fatalf("Expected %d columns, got %v", len(wantColumns), resp.Columns)
	}
	for i, col := range wantColumns {
		if resp.Columns[i] != col {
			t.Errorf("Expected column %d to be %q, got %q", i, col, resp.Columns[i])
		}
	}

	if resp.RowCount != 2 {
		t.Errorf("Expected row_count 2, got %d", resp.RowCount)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(resp.Rows))
	}
	if resp.Rows[0][1] != "John Doe" || resp.Rows[1][1] != "Bob Johnson" {
		t.Errorf("Unexpected row order or contents: %v", resp.Rows)
	}
}

func TestHandleExecute_EmptyQuery(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty string", body: `{"query": ""}`},
		{name: "whitespace only", body: `{"query": "   \n\t  "}`},
		{name: "missing field", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := postExecute(t, handler, tt.body)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if resp.Success {
				t.Error("Expected success=false")
			}
			if resp.Error != "Query cannot be empty" {
				t.Errorf("Expected exact empty-query message, got %q", resp.Error)
			}
		})
	}
}

func TestHandleExecute_ForbiddenKeyword(t *testing.T) {
	handler := newTestHandler()

	w, resp := postExecute(t, handler, `{"query": "DROP TABLE employees"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if resp.Success {
		t.Error("Expected success=false")
	}
	if resp.Error != "DROP operations are not allowed in this playground" {
		t.Errorf("Expected DROP rejection message, got %q", resp.Error)
	}

	// The denylist must fire before any engine is provisioned, so the
	// table is intact for a following request.
	_, resp = postExecute(t, handler, `{"query": "SELECT COUNT(*) FROM employees"}`)
	if !resp.Success {
		t.Fatalf("Expected follow-up query to succeed, got error: %s", resp.Error)
	}
	if count := resp.Rows[0][0].(float64); count != 5 {
		t.Errorf("Expected 5 employees after rejected DROP, got %v", count)
	}
}

func TestHandleExecute_SQLError(t *testing.T) {
	handler := newTestHandler()

	w, resp := postExecute(t, handler, `{"query": "SELECT * FROM nonexistent_table"}`)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if resp.Success {
		t.Error("Expected success=false")
	}
	if !strings.HasPrefix(resp.Error, "SQL Error: ") {
		t.Errorf("Expected 'SQL Error: ' prefix, got %q", resp.Error)
	}
}

func TestHandleExecute_InvalidJSON(t *testing.T) {
	handler := newTestHandler()

	w, resp := postExecute(t, handler, `{"query": `)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if resp.Success {
		t.Error("Expected success=false")
	}
	if resp.Error != "An unexpected error occurred" {
		t.Errorf("Expected generic message, got %q", resp.Error)
	}
}

func TestHandleExecute_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/execute", nil)
	w := httptest.NewRecorder()

	handler.HandleExecute(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}

	var resp envelope
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false")
	}
}

func TestHandleSchema(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()

	handler.HandleSchema(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var schema struct {
		Tables []struct {
			Name    string `json:"name"`
			Columns []struct {
				Name       string `json:"name"`
				Type       string `json:"type"`
				Constraint string `json:"constraint"`
			} `json:"columns"`
		} `json:"tables"`
	}
	if err := json.NewDecoder(w.Body).Decode(&schema); err != nil {
		t.Fatalf("Failed to decode schema: %v", err)
	}

	if len(schema.Tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(schema.Tables))
	}
	if schema.Tables[0].Name != "employees" || schema.Tables[1].Name != "departments" {
		t.Errorf("Unexpected table names: %+v", schema.Tables)
	}
}

func TestHandleSchema_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/schema", nil)
	w := httptest.NewRecorder()

	handler.HandleSchema(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestHandleSchema_UnaffectedByExecute(t *testing.T) {
	handler := newTestHandler()

	fetchSchema := func() string {
		req := httptest.NewRequest(http.MethodGet, "/schema", nil)
		w := httptest.NewRecorder()
		handler.HandleSchema(w, req)
		return w.Body.String()
	}

	before := fetchSchema()

	postExecute(t, handler, `{"query": "SELECT * FROM employees"}`)
	postExecute(t, handler, `{"query": "DROP TABLE employees"}`)

	after := fetchSchema()
	if before != after {
		t.Error("Expected schema description to be identical before and after /execute calls")
	}
}

func TestHandleExecute_Idempotent(t *testing.T) {
	handler := newTestHandler()
	body := `{"query": "SELECT name, salary FROM employees ORDER BY id"}`

	_, first := postExecute(t, handler, body)
	_, second := postExecute(t, handler, body)

	if !first.Success || !second.Success {
		t.Fatalf("Expected both runs to succeed: %q, %q", first.Error, second.Error)
	}
	if first.RowCount != second.RowCount || len(first.Rows) != len(second.Rows) {
		t.Errorf("Expected identical results across runs")
	}
}
