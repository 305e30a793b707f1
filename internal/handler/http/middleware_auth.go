package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/models"
)

const bearerPrefix = "Bearer "

// auth authenticates requests to protected paths.
//
// Every request gets a fresh identity slot in its context, cleared when the
// request finishes however it ends. Requests whose paths the [RouteGuard]
// does not protect pass straight through. For the others the token is read from the
// configured header and verified by [service.AuthService.ParseToken]; on
// success the employee ID is stored in the slot. A missing, invalid or
// expired token short-circuits with HTTP 401 and the "unauthorized"
// envelope, and the next handler is never called.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, identity := utils.WithIdentity(r.Context())
		defer identity.Clear()
		r = r.WithContext(ctx)

		if !h.protects(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := tokenFromHeader(r.Header.Get(h.tokenHeader))
		if err != nil {
			log.Warn().Err(err).Str("uri", r.RequestURI).Msg("request without token")
			h.reject(w, r, rejectMissing)
			return
		}

		employeeID, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrTokenExpired):
				log.Warn().Err(err).Str("uri", r.RequestURI).Msg("token expired")
				h.reject(w, r, rejectExpired)
			default:
				log.Warn().Err(err).Str("uri", r.RequestURI).Msg("invalid token")
				h.reject(w, r, rejectInvalid)
			}
			return
		}

		identity.Set(employeeID)
		log.Debug().Int64("employee_id", employeeID).Msg("token accepted")

		next.ServeHTTP(w, r)
	})
}

// protects asks the guard about both the path chi routes on and the decoded
// path. They differ when the request escapes separators ("..%2F"), and the
// request is challenged if either of them is protected.
func (h *Handler) protects(r *http.Request) bool {
	return h.guard.Protects(routingPath(r)) || h.guard.Protects(r.URL.Path)
}

// routingPath returns the path chi matches routes against: the route path
// set by an earlier middleware such as CleanPath, else the raw escaped path,
// else the decoded one.
func routingPath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
		return rctx.RoutePath
	}
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, reason string) {
	h.metrics.RecordAuthRejection(reason)

	if err := utils.WriteResult(w, models.Error(failure.MsgUnauthorized), http.StatusUnauthorized); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.reject").Msg("error writing envelope")
	}
}

// tokenFromHeader returns the raw token from a header value. Both the bare
// token and "Bearer <token>" are accepted.
func tokenFromHeader(value string) (string, error) {
	token := strings.TrimSpace(value)
	if rest, ok := strings.CutPrefix(token, bearerPrefix); ok {
		token = strings.TrimSpace(rest)
	}

	if token == "" || token == strings.TrimSpace(bearerPrefix) {
		return "", ErrEmptyToken
	}
	return token, nil
}
