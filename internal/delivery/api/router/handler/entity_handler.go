package handler

import (
	"net/http"
	"strconv"

	"projectforge/internal/delivery/api/response"
	"projectforge/internal/domain/entity"
	"projectforge/internal/usecase"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EntityHandler serves the CRUD and history endpoints of one historized type.
type EntityHandler[T any] struct {
	dao  usecase.Dao[T]
	name string
	// view converts an object before it is rendered, nil renders it as is.
	view func(*T) any
	// create replaces Save for types that need more than the object itself.
	create echo.HandlerFunc
}

// NewEntityHandler creates the handler for the entity type name.
func NewEntityHandler[T any](dao usecase.Dao[T], name string) *EntityHandler[T] {
	return &EntityHandler[T]{dao: dao, name: name}
}

// UpdateResult reports what an update changed.
type UpdateResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (h *EntityHandler[T]) render(obj *T) any {
	if h.view == nil {
		return obj
	}

	return h.view(obj)
}

// Register mounts the endpoints on g.
func (h *EntityHandler[T]) Register(g *echo.Group) {
	create := h.create
	if create == nil {
		create = h.Save
	}
	g.GET("", h.List)
	g.POST("", create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/undelete", h.Undelete)
	g.GET("/:id/history", h.History)
	g.GET("/:id/history/export", h.ExportHistory)
}

// List runs the filtered list query.
func (h *EntityHandler[T]) List(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	list, err := h.dao.GetList(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	result := make([]any, 0, len(list))
	for _, obj := range list {
		result = append(result, h.render(obj))
	}

	return response.Success(c, http.StatusOK, result)
}

// Get returns one object, deleted ones included.
func (h *EntityHandler[T]) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	obj, err := h.dao.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.render(obj))
}

// Save inserts a new object.
func (h *EntityHandler[T]) Save(c echo.Context) error {
	obj := new(T)
	if err := c.Bind(obj); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+h.name+" input")
	}
	any(obj).(entity.Object).GetBase().ID = 0

	if _, err := h.dao.Save(c.Request().Context(), obj); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.render(obj))
}

// Update copies the request body onto the stored object.
func (h *EntityHandler[T]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	obj := new(T)
	if err := c.Bind(obj); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid "+h.name+" input")
	}
	any(obj).(entity.Object).GetBase().ID = id

	status, err := h.dao.Update(c.Request().Context(), obj)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, UpdateResult{ID: id, Status: status.String()})
}

// Delete marks the object as deleted.
func (h *EntityHandler[T]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.dao.MarkAsDeleted(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Undelete restores a deleted object.
func (h *EntityHandler[T]) Undelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.dao.Undelete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// History lists the changes of the object and its children, newest first.
func (h *EntityHandler[T]) History(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	entries, err := h.dao.GetHistory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entries)
}

// ExportHistory downloads the history as a spreadsheet.
func (h *EntityHandler[T]) ExportHistory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	data, err := h.dao.ExportHistory(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Attachment(c, xlsxContentType, h.name+"-"+strconv.FormatInt(id, 10)+"-history.xlsx", data)
}
