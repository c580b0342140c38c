package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chrissnell/oceandiags/internal/storage"
	"github.com/chrissnell/oceandiags/pkg/bundle"
	"github.com/chrissnell/oceandiags/pkg/derived"
	"github.com/gorilla/mux"
)

// Handlers holds the HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates a new handlers instance
func NewHandlers(controller *Controller) *Handlers {
	return &Handlers{controller: controller}
}

// GetHealth reports liveness
func (h *Handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.controller.formatter.WriteResponse(w, r, map[string]string{"status": "ok"}, nil)
}

// ListDiagnostics returns the names of all registered diagnostics
func (h *Handlers) ListDiagnostics(w http.ResponseWriter, r *http.Request) {
	h.controller.formatter.WriteResponse(w, r, listResponse{Diagnostics: derived.Names()}, nil)
}

// ComputeDiagnostic evaluates one diagnostic against the posted parameter
// bundle and returns the derived field
func (h *Handlers) ComputeDiagnostic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["domain"] + "." + vars["diagnostic"]

	if _, err := derived.Lookup(name); err != nil {
		h.controller.formatter.WriteError(w, r, http.StatusNotFound, err.Error())
		return
	}

	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.controller.formatter.WriteError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Fields) == 0 {
		h.controller.formatter.WriteError(w, r, http.StatusBadRequest, "request contains no fields")
		return
	}

	b := bundle.New()
	for fieldName, p := range req.Fields {
		f, err := bundle.NewField(fieldName, p.Data, p.Shape, p.Units)
		if err != nil {
			h.controller.formatter.WriteError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		b.Attach(f)
	}

	out, err := derived.Compute(name, b)
	if err != nil {
		h.controller.formatter.WriteError(w, r, statusForComputeError(err), err.Error())
		return
	}

	resp := computeResponse{
		RequestID:  requestID(r),
		Diagnostic: name,
		Name:       out.Name,
		Field: fieldPayload{
			Data:  out.Data,
			Shape: out.Shape,
			Units: out.Units,
		},
	}

	h.archiveResult(resp)
	h.controller.formatter.WriteResponse(w, r, resp, nil)
}

// GetRecentResults returns the most recent archived results, optionally
// filtered by ?diagnostic=
func (h *Handlers) GetRecentResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 {
			h.controller.formatter.WriteError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results, err := h.controller.DB.GetRecentResults(r.URL.Query().Get("diagnostic"), limit)
	if err != nil {
		h.controller.formatter.WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	h.controller.formatter.WriteResponse(w, r, results, nil)
}

// GetResultsByRequest returns the archived results for one request ID
func (h *Handlers) GetResultsByRequest(w http.ResponseWriter, r *http.Request) {
	results, err := h.controller.DB.GetResultsByRequest(mux.Vars(r)["request_id"])
	if err != nil {
		h.controller.formatter.WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	if len(results) == 0 {
		h.controller.formatter.WriteError(w, r, http.StatusNotFound, "no results for that request")
		return
	}
	h.controller.formatter.WriteResponse(w, r, results, nil)
}

// archiveResult hands the computed field to the storage distributor. The
// send never blocks a response on a slow backend.
func (h *Handlers) archiveResult(resp computeResponse) {
	if h.controller.resultChan == nil {
		return
	}

	payload, err := json.Marshal(resp.Field)
	if err != nil {
		h.controller.logger.Errorw("could not encode result payload", "error", err)
		return
	}

	result := storage.Result{
		Time:       time.Now(),
		RequestID:  resp.RequestID,
		Diagnostic: resp.Diagnostic,
		FieldName:  resp.Name,
		Units:      resp.Field.Units,
		Shape:      shapeString(resp.Field.Shape),
		Payload:    payload,
	}

	select {
	case h.controller.resultChan <- result:
	default:
		h.controller.logger.Warnw("result distributor full, dropping archive record",
			"diagnostic", resp.Diagnostic, "request_id", resp.RequestID)
	}
}

func shapeString(shape []int) string {
	s := ""
	for i, d := range shape {
		if i > 0 {
			s += "x"
		}
		s += strconv.Itoa(d)
	}
	return s
}

// statusForComputeError maps the bundle error taxonomy onto HTTP statuses.
// Caller mistakes are 400s; anything unexpected is a 500.
func statusForComputeError(err error) int {
	var missing *bundle.MissingFieldError
	var shape *bundle.ShapeError
	var domain *bundle.DomainError
	if errors.As(err, &missing) || errors.As(err, &shape) || errors.As(err, &domain) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
