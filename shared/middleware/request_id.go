package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/itchan-dev/agora/shared/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with an id, echoes it in the response and
// attaches a logger carrying it to the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		l := logger.Log.With("request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), l)))
	})
}
