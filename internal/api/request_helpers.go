package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/o-magnata69/back-end-api/internal/domain"
)

// idParam is the path parameter naming a record.
const idParam = "id"

// getPathID extracts a positive integer id from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed id if valid
//   - (0, error): An ErrInvalidID validation error if the parameter is missing,
//     not an integer, or not positive
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID is getPathID that writes the 400 response itself.
// Returns false when the response has already been written.
func handlePathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, idParam)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// payloadStrings renders the given fields of p as text. Absent or falsy
// fields come back as "". A field that cannot be stored as text is an error.
func payloadStrings(p domain.Payload, fields ...string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		v, _, err := p.Value(f)
		if err != nil {
			return nil, err
		}
		out[f] = v
	}
	return out, nil
}
