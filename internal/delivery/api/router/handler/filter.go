package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"

	"github.com/labstack/echo/v4"
)

// parseFilter reads the list filter from the query string:
// search, deleted, maxRows, sort, modifiedBy, modifiedFrom, modifiedTo, searchHistory.
func parseFilter(c echo.Context) (query.Filter, error) {
	filter := query.Filter{
		SearchString:   strings.TrimSpace(c.QueryParam("search")),
		Deleted:        query.ParseDeletedFilter(c.QueryParam("deleted")),
		SortProperties: query.ParseSort(c.QueryParam("sort")),
		SearchHistory:  strings.TrimSpace(c.QueryParam("searchHistory")),
	}

	if v := c.QueryParam("maxRows"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, invalidParam("maxRows")
		}
		filter.MaxRows = n
	}
	if v := c.QueryParam("modifiedBy"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, invalidParam("modifiedBy")
		}
		filter.ModifiedByUserID = &id
	}

	var err error
	if filter.ModifiedFrom, err = parseTimeParam(c, "modifiedFrom"); err != nil {
		return filter, err
	}
	if filter.ModifiedTo, err = parseTimeParam(c, "modifiedTo"); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseTimeParam(c echo.Context, name string) (*time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		if t, err = time.Parse(time.DateOnly, v); err != nil {
			return nil, invalidParam(name)
		}
	}

	return &t, nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidParam("id")
	}

	return id, nil
}

func invalidParam(name string) error {
	return domainerrors.NewUserError("validation.error.invalidValue", name).ForField(name)
}
