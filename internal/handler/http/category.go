package http

import (
	"net/http"

	"github.com/MKhiriev/sky-take-out/models"
)

func (h *Handler) saveCategory(r *http.Request) (any, error) {
	var dto models.CategoryDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}
	return nil, h.services.CategoryService.Add(r.Context(), dto)
}

// pageCategories lists categories; "type" is optional and narrows the list
// to dishes (1) or set meals (2).
func (h *Handler) pageCategories(r *http.Request) (any, error) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		return nil, err
	}
	pageSize, err := queryInt(r, "pageSize", defaultPageSize)
	if err != nil {
		return nil, err
	}

	query := models.CategoryPageQueryDTO{
		Name:     r.URL.Query().Get("name"),
		Page:     page,
		PageSize: pageSize,
	}
	if r.URL.Query().Get("type") != "" {
		categoryType, err := queryInt(r, "type", 0)
		if err != nil {
			return nil, err
		}
		query.Type = &categoryType
	}

	return h.services.CategoryService.Page(r.Context(), query)
}

func (h *Handler) categoryStatus(r *http.Request) (any, error) {
	status, err := urlParamInt(r, "status")
	if err != nil {
		return nil, err
	}
	id, err := queryID(r)
	if err != nil {
		return nil, err
	}
	return nil, h.services.CategoryService.StartOrStop(r.Context(), status, id)
}

func (h *Handler) deleteCategory(r *http.Request) (any, error) {
	id, err := queryID(r)
	if err != nil {
		return nil, err
	}
	return nil, h.services.CategoryService.DeleteByID(r.Context(), id)
}

func (h *Handler) updateCategory(r *http.Request) (any, error) {
	var dto models.CategoryDTO
	if err := decodeJSON(r, &dto); err != nil {
		return nil, err
	}
	return nil, h.services.CategoryService.Update(r.Context(), dto)
}
