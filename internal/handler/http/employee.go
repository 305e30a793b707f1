package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sky-take-out/internal/logger"
	"github.com/MKhiriev/sky-take-out/models"
)

// login checks the credentials and issues a token for the employee.
func (h *Handler) login(r *http.Request) (any, error) {
	ctx := r.Context()

	var dto models.EmployeeLoginDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}

	employee, err := h.services.EmployeeService.Login(ctx, dto)
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, employee)
	if err != nil {
		return nil, err
	}

	logger.FromRequest(r).Info().Int64("employee_id", employee.ID).Msg("employee logged in")

	return models.EmployeeLoginVO{
		ID:       employee.ID,
		UserName: employee.Username,
		Name:     employee.Name,
		Token:    token,
	}, nil
}

// logout is a no-op: tokens are stateless and simply expire.
func (h *Handler) logout(r *http.Request) (any, error) {
	return nil, nil
}

func (h *Handler) saveEmployee(r *http.Request) (any, error) {
	var dto models.EmployeeDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}
	return nil, h.services.EmployeeService.Save(r.Context(), dto)
}

func (h *Handler) pageEmployees(r *http.Request) (any, error) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		return nil, err
	}
	pageSize, err := queryInt(r, "pageSize", defaultPageSize)
	if err != nil {
		return nil, err
	}

	return h.services.EmployeeService.Page(r.Context(), models.EmployeePageQueryDTO{
		Name:     r.URL.Query().Get("name"),
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *Handler) employeeStatus(r *http.Request) (any, error) {
	status, err := urlParamInt(r, "status")
	if err != nil {
		return nil, err
	}
	id, err := queryID(r)
	if err != nil {
		return nil, err
	}
	return nil, h.services.EmployeeService.StartOrStop(r.Context(), status, id)
}

func (h *Handler) getEmployee(r *http.Request) (any, error) {
	id, err := parseID(chi.URLParam(r, "id"), "id")
	if err != nil {
		return nil, err
	}
	return h.services.EmployeeService.GetByID(r.Context(), id)
}

func (h *Handler) updateEmployee(r *http.Request) (any, error) {
	var dto models.EmployeeDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}
	return nil, h.services.EmployeeService.Update(r.Context(), dto)
}
