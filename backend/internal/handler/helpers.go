package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	internal_errors "github.com/itchan-dev/agora/shared/errors"
)

// parseIdParam reads a positive integer URL parameter.
func parseIdParam(r *http.Request, name string) (int64, error) {
	val, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || val <= 0 {
		return 0, internal_errors.Validation("Invalid " + name + " id")
	}
	return val, nil
}
