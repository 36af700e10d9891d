package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/playsql/playground/internal/query"
	"github.com/playsql/playground/internal/sqlite"
)

type Handler struct {
	runner query.QueryRunner
}

func NewHandler(runner query.QueryRunner) *Handler {
	return &Handler{
		runner: runner,
	}
}

// HandleExecute runs one sandboxed statement. Every domain outcome,
// success or failure, is reported with HTTP 200 and encoded in the
// body's success field; only transport misuse gets another status.
func (h *Handler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteFailure(w, http.StatusMethodNotAllowed, "Only POST method is supported for /execute endpoint")
		log.Printf("[ERROR] Method not allowed: %s %s", r.Method, r.URL.Path)
		return
	}

	reqID := uuid.NewString()

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteFailure(w, http.StatusOK, sqlite.GenericInternalMessage)
		log.Printf("[ERROR] [%s] Failed to read request body: %v", reqID, err)
		return
	}

	var req QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteFailure(w, http.StatusOK, sqlite.GenericInternalMessage)
		log.Printf("[ERROR] [%s] Invalid JSON: %v", reqID, err)
		return
	}

	sqlText := strings.TrimSpace(req.Query)

	if err := query.ValidateQuery(sqlText); err != nil {
		WriteFailure(w, http.StatusOK, sqlite.UserMessage(err))
		log.Printf("[ERROR] [%s] Query validation failed: %v", reqID, err)
		return
	}

	log.Printf("[INFO] [%s] Executing query: %.100s", reqID, sqlText)

	if err := query.CheckPolicy(sqlText); err != nil {
		WriteFailure(w, http.StatusOK, sqlite.UserMessage(err))
		log.Printf("[ERROR] [%s] Query rejected by policy: %v", reqID, err)
		return
	}

	result, err := h.runner.Run(sqlText)
	if err != nil {
		WriteFailure(w, http.StatusOK, sqlite.UserMessage(err))
		log.Printf("[ERROR] [%s] Query execution failed: %v", reqID, err)
		return
	}

	if err := WriteSuccess(w, result); err != nil {
		log.Printf("[ERROR] [%s] Failed to write response: %v", reqID, err)
		return
	}

	log.Printf("[INFO] [%s] Query succeeded: %d rows returned", reqID, result.RowCount)
}

// HandleSchema serves the static sample-schema description. It is a
// process-wide constant, unaffected by any /execute call.
func (h *Handler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteFailure(w, http.StatusMethodNotAllowed, "Only GET method is supported for /schema endpoint")
		log.Printf("[ERROR] Method not allowed: %s %s", r.Method, r.URL.Path)
		return
	}

	if err := WriteJSON(w, http.StatusOK, sqlite.DescribeSchema()); err != nil {
		log.Printf("[ERROR] Failed to write schema response: %v", err)
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/execute", h.HandleExecute)
	mux.HandleFunc("/schema", h.HandleSchema)
}
