package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/sky-take-out/models"
)

const (
	employeeTable = "employee"
	categoryTable = "category"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var employeeColumns = []string{
	"id", "name", "username", "password", "phone", "sex", "id_number",
	"status", "create_time", "update_time", "create_user", "update_user",
}

var categoryColumns = []string{
	"id", "type", "name", "sort", "status",
	"create_time", "update_time", "create_user", "update_user",
}

func buildInsertEmployeeQuery(e models.Employee) (string, []any, error) {
	return psql.Insert(employeeTable).
		Columns("name", "username", "password", "phone", "sex", "id_number",
			"status", "create_time", "update_time", "create_user", "update_user").
		Values(e.Name, e.Username, e.Password, e.Phone, e.Sex, e.IDNumber,
			e.Status, e.CreateTime, e.UpdateTime, e.CreateUser, e.UpdateUser).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectEmployeeQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From(employeeTable).
		Where(where).
		ToSql()
}

func employeePageFilter(query models.EmployeePageQueryDTO) sq.And {
	filter := sq.And{}
	if query.Name != "" {
		filter = append(filter, sq.ILike{"name": "%" + query.Name + "%"})
	}
	return filter
}

func buildCountEmployeesQuery(query models.EmployeePageQueryDTO) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(employeeTable).
		Where(employeePageFilter(query)).
		ToSql()
}

func buildPageEmployeesQuery(query models.EmployeePageQueryDTO) (string, []any, error) {
	return psql.Select(employeeColumns...).
		From(employeeTable).
		Where(employeePageFilter(query)).
		OrderBy("create_time DESC", "id DESC").
		Limit(uint64(query.PageSize)).
		Offset(models.Offset(query.Page, query.PageSize)).
		ToSql()
}

// buildUpdateEmployeeQuery sets only the non-empty editable fields of e.
func buildUpdateEmployeeQuery(e models.Employee) (string, []any, error) {
	update := psql.Update(employeeTable).
		Set("update_time", e.UpdateTime).
		Set("update_user", e.UpdateUser)

	if e.Name != "" {
		update = update.Set("name", e.Name)
	}
	if e.Username != "" {
		update = update.Set("username", e.Username)
	}
	if e.Password != "" {
		update = update.Set("password", e.Password)
	}
	if e.Phone != "" {
		update = update.Set("phone", e.Phone)
	}
	if e.Sex != "" {
		update = update.Set("sex", e.Sex)
	}
	if e.IDNumber != "" {
		update = update.Set("id_number", e.IDNumber)
	}

	return update.Where(sq.Eq{"id": e.ID}).ToSql()
}

func buildUpdateStatusQuery(table string, change models.StatusChange) (string, []any, error) {
	return psql.Update(table).
		Set("status", change.Status).
		Set("update_time", change.UpdateTime).
		Set("update_user", change.UpdateUser).
		Where(sq.Eq{"id": change.ID}).
		ToSql()
}

func buildInsertCategoryQuery(c models.Category) (string, []any, error) {
	return psql.Insert(categoryTable).
		Columns("type", "name", "sort", "status",
			"create_time", "update_time", "create_user", "update_user").
		Values(c.Type, c.Name, c.Sort, c.Status,
			c.CreateTime, c.UpdateTime, c.CreateUser, c.UpdateUser).
		Suffix("RETURNING id").
		ToSql()
}

func categoryPageFilter(query models.CategoryPageQueryDTO) sq.And {
	filter := sq.And{}
	if query.Name != "" {
		filter = append(filter, sq.ILike{"name": "%" + query.Name + "%"})
	}
	if query.Type != nil {
		filter = append(filter, sq.Eq{"type": *query.Type})
	}
	return filter
}

func buildCountCategoriesQuery(query models.CategoryPageQueryDTO) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(categoryTable).
		Where(categoryPageFilter(query)).
		ToSql()
}

func buildPageCategoriesQuery(query models.CategoryPageQueryDTO) (string, []any, error) {
	return psql.Select(categoryColumns...).
		From(categoryTable).
		Where(categoryPageFilter(query)).
		OrderBy("sort ASC", "create_time DESC").
		Limit(uint64(query.PageSize)).
		Offset(models.Offset(query.Page, query.PageSize)).
		ToSql()
}

// buildUpdateCategoryQuery sets only the non-empty editable fields of c.
func buildUpdateCategoryQuery(c models.Category) (string, []any, error) {
	update := psql.Update(categoryTable).
		Set("sort", c.Sort).
		Set("update_time", c.UpdateTime).
		Set("update_user", c.UpdateUser)

	if c.Type != 0 {
		update = update.Set("type", c.Type)
	}
	if c.Name != "" {
		update = update.Set("name", c.Name)
	}

	return update.Where(sq.Eq{"id": c.ID}).ToSql()
}

func buildDeleteCategoryQuery(id int64) (string, []any, error) {
	return psql.Delete(categoryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
