package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/lang-portal/internal/domain"
)

// getPathID extracts a positive int64 identifier from the URL path
// parameters.
//
// Returns:
//   - (id, nil): The parsed identifier if valid
//   - (0, error): Zero and a wrapped domain.ErrInvalidID if the parameter is
//     missing, malformed, or not positive
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getQueryID extracts a positive int64 identifier from the query string.
func getQueryID(r *http.Request, paramName string) (int64, error) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// getPageParam extracts the page number from the query string. An absent
// parameter defaults to page 1; a malformed or non-positive value is
// rejected with domain.ErrInvalidPage.
func getPageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, domain.ErrInvalidPage
	}

	return page, nil
}
