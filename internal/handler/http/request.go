package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sky-take-out/internal/failure"
)

// Paging defaults applied when the client omits page or pageSize.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// decodeJSON reads the request body into dst. Malformed JSON is a business
// failure so the client receives "invalid request body".
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return failure.WrapBusiness(MsgInvalidRequestBody, err)
	}
	return nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.WrapBusiness(MsgInvalidParameter+key, err)
	}
	return v, nil
}

// queryID parses the required "id" query parameter.
func queryID(r *http.Request) (int64, error) {
	return parseID(r.URL.Query().Get("id"), "id")
}

// urlParamInt parses a chi URL parameter such as {status}.
func urlParamInt(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, key))
	if err != nil {
		return 0, failure.WrapBusiness(MsgInvalidParameter+key, err)
	}
	return v, nil
}

func parseID(raw, key string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, failure.WrapBusiness(MsgInvalidParameter+key, err)
	}
	return id, nil
}
