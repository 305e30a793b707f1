package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/models"
)

func TestTranslate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "account not found", err: failure.ErrAccountNotFound, wantMsg: "account not found"},
		{name: "password error", err: failure.ErrPasswordError, wantMsg: "password error"},
		{name: "account locked", err: failure.ErrAccountLocked, wantMsg: "account locked"},
		{name: "unauthorized", err: failure.ErrUnauthorized, wantMsg: "unauthorized"},
		{
			name:    "wrapped failure keeps its kind",
			err:     fmt.Errorf("login: %w", failure.ErrAccountLocked),
			wantMsg: "account locked",
		},
		{
			name:    "mysql duplicate entry",
			err:     failure.NewUniqueViolation("Duplicate entry 'zhangsan' for key 'employee.idx_username'", nil),
			wantMsg: "zhangsan already exists",
		},
		{
			name:    "postgres duplicate key",
			err:     failure.NewUniqueViolation("Key (username)=(zhangsan) already exists.", nil),
			wantMsg: "zhangsan already exists",
		},
		{
			name:    "duplicate without marker",
			err:     failure.NewUniqueViolation("constraint violated", nil),
			wantMsg: "unknown error",
		},
		{name: "business message verbatim", err: failure.NewBusiness("category not found"), wantMsg: "category not found"},
		{name: "business without message", err: &failure.Error{Kind: failure.Business}, wantMsg: "unknown error"},
		{name: "plain error", err: errors.New("connection refused"), wantMsg: "unknown error"},
		{name: "unknown kind", err: &failure.Error{Kind: failure.Kind(200)}, wantMsg: "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := translate(tt.err)
			assert.Equal(t, models.CodeError, result.Code)
			assert.Equal(t, tt.wantMsg, result.Message())
			assert.Nil(t, result.Data)
		})
	}
}

func TestHandle_WritesEnvelopesWithStatusOK(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("success with payload", func(t *testing.T) {
		rr := serve(h.handle(func(r *http.Request) (any, error) {
			return map[string]int{"total": 3}, nil
		}), http.MethodGet, "/", "", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json;charset=UTF-8", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"code":1,"msg":null,"data":{"total":3}}`, rr.Body.String())
	})

	t.Run("success without payload", func(t *testing.T) {
		rr := serve(h.handle(func(r *http.Request) (any, error) {
			return nil, nil
		}), http.MethodGet, "/", "", nil)

		assert.JSONEq(t, `{"code":1,"msg":null,"data":null}`, rr.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		rr := serve(h.handle(func(r *http.Request) (any, error) {
			return nil, failure.ErrPasswordError
		}), http.MethodGet, "/", "", nil)

		assertErrorEnvelope(t, rr, http.StatusOK, "password error")
	})
}

func TestWriteFailure_CountsKinds(t *testing.T) {
	h, _ := newTestHandler(t)

	fail := h.handle(func(r *http.Request) (any, error) {
		return nil, failure.ErrAccountLocked
	})
	serve(fail, http.MethodGet, "/", "", nil)
	serve(fail, http.MethodGet, "/", "", nil)

	body := serve(h.metrics.Handler(), http.MethodGet, "/metrics", "", nil).Body.String()
	require.Contains(t, body, `admin_failures_total{kind="account_locked"} 2`)
}
