package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRecover_PanicBecomesUnknownError(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	rr := serve(h.withRecover(next), http.MethodGet, "/admin/employee/page", "", nil)
	assertErrorEnvelope(t, rr, http.StatusOK, "unknown error")
}

func TestWithRecover_PassesThrough(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rr := serve(h.withRecover(next), http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWithRecover_AbortHandlerIsRepanicked(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(h.withRecover(next), http.MethodGet, "/", "", nil)
	})
}
