package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseQueryInt parses an optional integer query parameter. A missing or
// empty parameter yields the default value; a non-numeric one is rejected
// with 400. Range checks are left to the caller, so that out-of-range values
// surface through the domain's own validation path.
func ParseQueryInt(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, defaultValue int) (int, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, true
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return intValue, true
}
