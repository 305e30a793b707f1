package http

import (
	"net/http"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/models"
)

// translate converts any error raised while handling a request into an
// error envelope. Each failure kind has its own translation function;
// everything without a kind ends up in unknownError.
func translate(err error) models.Result {
	f, ok := failure.As(err)
	if !ok {
		return unknownError()
	}

	switch f.Kind {
	case failure.AccountNotFound:
		return accountNotFound()
	case failure.PasswordError:
		return passwordError()
	case failure.AccountLocked:
		return accountLocked()
	case failure.Unauthorized:
		return unauthorized()
	case failure.UniqueViolation:
		return uniqueViolation(f)
	case failure.Business:
		return business(f)
	default:
		return unknownError()
	}
}

func accountNotFound() models.Result {
	return models.Error(failure.MsgAccountNotFound)
}

func passwordError() models.Result {
	return models.Error(failure.MsgPasswordError)
}

func accountLocked() models.Result {
	return models.Error(failure.MsgAccountLocked)
}

func unauthorized() models.Result {
	return models.Error(failure.MsgUnauthorized)
}

// uniqueViolation reports the conflicting value, e.g. "zhangsan already exists".
func uniqueViolation(f *failure.Error) models.Result {
	value, ok := failure.DuplicateValue(f.Detail)
	if !ok {
		return unknownError()
	}
	return models.Error(value + failure.MsgAlreadyExists)
}

func business(f *failure.Error) models.Result {
	if f.Message == "" {
		return unknownError()
	}
	return models.Error(f.Message)
}

func unknownError() models.Result {
	return models.Error(failure.MsgUnknownError)
}

// writeFailure logs err, counts it and writes its envelope with HTTP 200.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	kind := failure.KindOf(err)

	logger.FromRequest(r).Error().
		Err(err).
		Str("kind", kind.String()).
		Str("uri", r.RequestURI).
		Msg("request failed")
	h.metrics.RecordFailure(kind)

	if werr := utils.WriteResult(w, translate(err), http.StatusOK); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeFailure").Msg("error writing envelope")
	}
}

// apiFunc is a request handler returning the envelope payload or a failure.
type apiFunc func(r *http.Request) (any, error)

// handle adapts fn to net/http. A nil error becomes a success envelope
// around the payload, anything else goes through translate.
func (h *Handler) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			h.writeFailure(w, r, err)
			return
		}

		if werr := utils.WriteResult(w, models.Success(data), http.StatusOK); werr != nil {
			logger.FromRequest(r).Err(werr).Str("func", "*Handler.handle").Msg("error writing envelope")
		}
	}
}
