package handler

import (
	"net/http"

	"projectforge/internal/delivery/api/response"
	"projectforge/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserPrefHandler reads and writes preferences of the authenticated user.
type UserPrefHandler struct {
	prefs usecase.UserPrefUsecase
}

// NewUserPrefHandler is the constructor for UserPrefHandler
func NewUserPrefHandler(prefs usecase.UserPrefUsecase) *UserPrefHandler {
	return &UserPrefHandler{prefs: prefs}
}

// PutUserPrefRequest represents the request body for storing a preference
type PutUserPrefRequest struct {
	Value string `json:"value"`
	// Persistent entries are written back to the database.
	Persistent bool `json:"persistent"`
}

// UserPrefResponse is one preference entry.
type UserPrefResponse struct {
	Area  string `json:"area"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Get returns one entry.
func (h *UserPrefHandler) Get(c echo.Context) error {
	area, name := c.Param("area"), c.Param("name")
	value, ok, err := h.prefs.Get(c.Request().Context(), area, name)
	if err != nil {
		return err
	}
	if !ok {
		return response.NotFound(c, "PREF_NOT_FOUND", "User preference not found")
	}

	return response.Success(c, http.StatusOK, UserPrefResponse{Area: area, Name: name, Value: value})
}

// Put stores one entry.
func (h *UserPrefHandler) Put(c echo.Context) error {
	var req PutUserPrefRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preference input")
	}

	area, name := c.Param("area"), c.Param("name")
	if err := h.prefs.Put(c.Request().Context(), area, name, req.Value, req.Persistent); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, UserPrefResponse{Area: area, Name: name, Value: req.Value})
}

// Delete removes one entry.
func (h *UserPrefHandler) Delete(c echo.Context) error {
	if err := h.prefs.Remove(c.Request().Context(), c.Param("area"), c.Param("name")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
