package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sky-take-out/internal/failure"
	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/internal/service"
	"github.com/MKhiriev/sky-take-out/internal/utils"
	"github.com/MKhiriev/sky-take-out/models"
)

var authorized = map[string]string{"token": "good"}

// expectAuthorized lets the "good" token through as employee 1.
func expectAuthorized(ts *testServices) {
	ts.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(int64(1), nil)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestRoutes_Login_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
		wantMsg  string
	}{
		{name: "unknown username", loginErr: failure.ErrAccountNotFound, wantMsg: "account not found"},
		{name: "wrong password", loginErr: failure.ErrPasswordError, wantMsg: "password error"},
		{name: "locked account", loginErr: failure.ErrAccountLocked, wantMsg: "account locked"},
		{name: "validation failure", loginErr: failure.NewBusiness("username must satisfy required"), wantMsg: "username must satisfy required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ts := newTestHandler(t)
			ts.employee.EXPECT().
				Login(gomock.Any(), models.EmployeeLoginDTO{Username: "nouser", Password: "123456"}).
				Return(models.Employee{}, tt.loginErr)

			rr := serve(h.Init(), http.MethodPost, "/admin/employee/login", `{"username":"nouser","password":"123456"}`, nil)
			assertErrorEnvelope(t, rr, http.StatusOK, tt.wantMsg)
		})
	}
}

func TestRoutes_Login_IssuesTokenAcceptedByProtectedRoutes(t *testing.T) {
	services, ts := newTestServices(t)
	cfg := testConfig()
	services.AuthService = service.NewAuthService(utils.NewTokenCodec(), cfg.Auth, logger.Nop())
	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)
	router := h.Init()

	ts.employee.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Employee{ID: 1, Username: "admin", Name: "Administrator"}, nil)

	rr := serve(router, http.MethodPost, "/admin/employee/login", `{"username":"admin","password":"123456"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	e := decodeEnvelope(t, rr)
	require.Equal(t, models.CodeSuccess, e.Code)
	assert.Nil(t, e.Msg)

	var vo models.EmployeeLoginVO
	require.NoError(t, json.Unmarshal(e.Data, &vo))
	assert.Equal(t, int64(1), vo.ID)
	assert.Equal(t, "admin", vo.UserName)
	assert.Equal(t, "Administrator", vo.Name)
	require.NotEmpty(t, vo.Token)

	ts.employee.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(
		func(ctx context.Context, id int64) (models.Employee, error) {
			current, ok := utils.CurrentEmployeeID(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(1), current)
			return models.Employee{ID: id, Password: "****"}, nil
		},
	)

	rr = serve(router, http.MethodGet, "/admin/employee/1", "", map[string]string{"token": vo.Token})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)
}

func TestRoutes_Login_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(h.Init(), http.MethodPost, "/admin/employee/login", `{"username":`, nil)
	assertErrorEnvelope(t, rr, http.StatusOK, MsgInvalidRequestBody)
}

// ─────────────────────────────────────────────
// Interceptor
// ─────────────────────────────────────────────

func TestRoutes_ProtectedWithoutToken(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, target := range []string{
		"/admin/employee/page",
		"/admin/employee/1",
		"/admin/category/page",
	} {
		rr := serve(router, http.MethodGet, target, "", nil)
		assertErrorEnvelope(t, rr, http.StatusUnauthorized, "unauthorized")
	}

	rr := serve(router, http.MethodPost, "/admin/employee/logout", "", nil)
	assertErrorEnvelope(t, rr, http.StatusUnauthorized, "unauthorized")
}

func TestRoutes_EscapedSeparatorsDoNotSkipTokenCheck(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	for _, target := range []string{
		"/admin/employee/..%2F..%2Fversion",
		"/admin/employee/..%2F..%2Fmetrics",
		"/admin/category/..%2Fpage",
		"/version/..%2F..%2Fadmin%2Femployee%2Fpage",
	} {
		t.Run(target, func(t *testing.T) {
			rr := serve(router, http.MethodGet, target, "", nil)
			assertErrorEnvelope(t, rr, http.StatusUnauthorized, "unauthorized")
		})
	}
}

func TestRoutes_CleanedPathReachesHandler(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().GetByID(gomock.Any(), int64(5)).Return(models.Employee{ID: 5, Password: "****"}, nil)

	rr := serve(h.Init(), http.MethodGet, "/admin//employee/./5", "", authorized)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)
}

func TestRoutes_Logout(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)

	rr := serve(h.Init(), http.MethodPost, "/admin/employee/logout", "", authorized)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":1,"msg":null,"data":null}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// Employee
// ─────────────────────────────────────────────

func TestRoutes_SaveEmployee_Duplicate(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().Save(gomock.Any(), models.EmployeeDTO{Username: "zhangsan", Name: "Zhang San"}).
		Return(failure.NewUniqueViolation("Key (username)=(zhangsan) already exists.", nil))

	rr := serve(h.Init(), http.MethodPost, "/admin/employee", `{"username":"zhangsan","name":"Zhang San"}`, authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "zhangsan already exists")
}

func TestRoutes_PageEmployees(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().Page(gomock.Any(), models.EmployeePageQueryDTO{Name: "zhang", Page: 2, PageSize: 5}).
		Return(models.PageResult[models.Employee]{Total: 6, Records: []models.Employee{{ID: 6, Password: "****"}}}, nil)

	rr := serve(h.Init(), http.MethodGet, "/admin/employee/page?name=zhang&page=2&pageSize=5", "", authorized)
	require.Equal(t, http.StatusOK, rr.Code)

	var page models.PageResult[models.Employee]
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &page))
	assert.Equal(t, int64(6), page.Total)
	assert.Equal(t, "****", page.Records[0].Password)
}

func TestRoutes_PageEmployees_Defaults(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().Page(gomock.Any(), models.EmployeePageQueryDTO{Page: defaultPage, PageSize: defaultPageSize}).
		Return(models.PageResult[models.Employee]{Records: []models.Employee{}}, nil)

	rr := serve(h.Init(), http.MethodGet, "/admin/employee/page", "", authorized)
	assert.JSONEq(t, `{"code":1,"msg":null,"data":{"total":0,"records":[]}}`, rr.Body.String())
}

func TestRoutes_PageEmployees_BadParameter(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)

	rr := serve(h.Init(), http.MethodGet, "/admin/employee/page?page=first", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "invalid parameter: page")
}

func TestRoutes_EmployeeStatus(t *testing.T) {
	h, ts := newTestHandler(t)
	router := h.Init()

	expectAuthorized(ts)
	ts.employee.EXPECT().StartOrStop(gomock.Any(), 0, int64(5)).Return(nil)
	rr := serve(router, http.MethodPost, "/admin/employee/status/0?id=5", "", authorized)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)

	expectAuthorized(ts)
	rr = serve(router, http.MethodPost, "/admin/employee/status/on?id=5", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "invalid parameter: status")

	expectAuthorized(ts)
	rr = serve(router, http.MethodPost, "/admin/employee/status/1", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "invalid parameter: id")
}

func TestRoutes_GetEmployee_NotFound(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().GetByID(gomock.Any(), int64(404)).Return(models.Employee{}, failure.ErrAccountNotFound)

	rr := serve(h.Init(), http.MethodGet, "/admin/employee/404", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "account not found")
}

func TestRoutes_UpdateEmployee(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().Update(gomock.Any(), models.EmployeeDTO{ID: 2, Phone: "13800000000"}).Return(nil)

	rr := serve(h.Init(), http.MethodPut, "/admin/employee", `{"id":2,"phone":"13800000000"}`, authorized)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)
}

func TestRoutes_PanicInServiceBecomesUnknownError(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.employee.EXPECT().Page(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.EmployeePageQueryDTO) (models.PageResult[models.Employee], error) {
			panic("unexpected nil")
		},
	)

	rr := serve(h.Init(), http.MethodGet, "/admin/employee/page", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "unknown error")
}

// ─────────────────────────────────────────────
// Category
// ─────────────────────────────────────────────

func TestRoutes_SaveCategory(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)
	ts.category.EXPECT().Add(gomock.Any(), models.CategoryDTO{Type: 1, Name: "Soups", Sort: 3}).Return(nil)

	rr := serve(h.Init(), http.MethodPost, "/admin/category", `{"type":1,"name":"Soups","sort":3}`, authorized)
	assert.JSONEq(t, `{"code":1,"msg":null,"data":null}`, rr.Body.String())
}

func TestRoutes_PageCategories(t *testing.T) {
	h, ts := newTestHandler(t)
	expectAuthorized(ts)

	dish := models.CategoryTypeDish
	ts.category.EXPECT().Page(gomock.Any(), models.CategoryPageQueryDTO{Name: "so", Type: &dish, Page: 1, PageSize: 10}).
		Return(models.PageResult[models.Category]{Total: 1, Records: []models.Category{{ID: 1, Name: "Soups"}}}, nil)

	rr := serve(h.Init(), http.MethodGet, "/admin/category/page?name=so&type=1&page=1&pageSize=10", "", authorized)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)
}

func TestRoutes_CategoryStatusDeleteUpdate(t *testing.T) {
	h, ts := newTestHandler(t)
	router := h.Init()

	expectAuthorized(ts)
	ts.category.EXPECT().StartOrStop(gomock.Any(), 1, int64(3)).Return(nil)
	rr := serve(router, http.MethodPost, "/admin/category/status/1?id=3", "", authorized)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)

	expectAuthorized(ts)
	ts.category.EXPECT().DeleteByID(gomock.Any(), int64(3)).Return(failure.NewBusiness(service.MsgCategoryNotFound))
	rr = serve(router, http.MethodDelete, "/admin/category?id=3", "", authorized)
	assertErrorEnvelope(t, rr, http.StatusOK, "category not found")

	expectAuthorized(ts)
	ts.category.EXPECT().Update(gomock.Any(), models.CategoryDTO{ID: 3, Sort: 9}).Return(nil)
	rr = serve(router, http.MethodPut, "/admin/category", `{"id":3,"sort":9}`, authorized)
	assert.Equal(t, models.CodeSuccess, decodeEnvelope(t, rr).Code)
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestRoutes_Version(t *testing.T) {
	h, ts := newTestHandler(t)
	ts.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"))

	rr := serve(h.Init(), http.MethodGet, "/version", "", nil)
	assert.JSONEq(t, `{"code":1,"msg":null,"data":{"version":"1.2.3","date":"2026-01-01","commit":"abc123"}}`, rr.Body.String())
}

func TestRoutes_Metrics(t *testing.T) {
	h, ts := newTestHandler(t)
	router := h.Init()

	ts.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.2.3", "", ""))
	serve(router, http.MethodGet, "/version", "", nil)

	rr := serve(router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `admin_http_requests_total{method="GET",route="/version",status="200"} 1`)
}

func TestRoutes_UnsupportedMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rr := serve(router, http.MethodPost, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, http.MethodDelete, "/version", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_TimeoutIsApplied(t *testing.T) {
	services, ts := newTestServices(t)
	cfg := testConfig()
	cfg.Server.RequestTimeout = 50 * time.Millisecond
	h, err := NewHandler(services, cfg, logger.Nop())
	require.NoError(t, err)

	expectAuthorized(ts)
	ts.employee.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(
		func(ctx context.Context, id int64) (models.Employee, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			return models.Employee{ID: id}, nil
		},
	)

	serve(h.Init(), http.MethodGet, "/admin/employee/1", "", authorized)
}
