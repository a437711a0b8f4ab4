package web

import (
	"net/http"
	"strconv"
)

// Param returns the web call parameters from the request.
func Param(r *http.Request, key string) string {
	return r.PathValue(key)
}

// QueryParam returns query parameters from the request.
func QueryParam(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}

// QueryBool parses a boolean query parameter. The second result reports
// whether the parameter was present at all.
func QueryBool(r *http.Request, key string) (bool, bool, error) {
	if !r.URL.Query().Has(key) {
		return false, false, nil
	}
	v, err := strconv.ParseBool(r.URL.Query().Get(key))
	if err != nil {
		return false, true, err
	}
	return v, true, nil
}
