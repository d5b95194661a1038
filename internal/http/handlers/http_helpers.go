package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// readJSON decodes a single JSON value from the request body. An empty body
// leaves data untouched.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	writeJSON(w, http.StatusBadRequest, errs)
}

// pathID parses the {id} URL parameter and answers 400 when it is not a number.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid "+entity+" ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryInt returns nil for an absent parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

func storageFailure(w http.ResponseWriter, op string, err error) {
	log.Printf("%s failed: %v", op, err)
	http.Error(w, "could not "+op, http.StatusInternalServerError)
}
