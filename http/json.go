package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

const maxBodyBytes = 1 << 20

var (
	errUnsupportedMediaType = errors.New("Content-Type must be application/json")
	errTrailingData         = errors.New("request body must hold a single JSON object")
)

// decodeJSON reads a JSON body into v, rejecting unknown fields and anything
// after the first value.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return errUnsupportedMediaType
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeJSON codifica em buffer primeiro para não escrever o header se falhar
func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("write response", "error", err)
	}
}

// readRequest handles method, media type and decoding for POST endpoints.
// It writes the error response itself and reports whether to continue.
func readRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if err := decodeJSON(w, r, v); err != nil {
		if errors.Is(err, errUnsupportedMediaType) {
			writeError(w, http.StatusUnsupportedMediaType, err.Error())
			return false
		}
		logger.Warn("decode request body",
			"request_id", RequestIDFrom(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
