package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/sky-take-out/internal/logger"
)

// withRecover turns a handler panic into the "unknown error" envelope.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			h.writeFailure(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
