package handler

import (
	"net/http"
	"time"

	"projectforge/internal/delivery/api/middleware"
	"projectforge/internal/delivery/api/response"
	"projectforge/internal/domain/entity"
	"projectforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntityHandlerParams holds the DAOs behind the entity endpoints, injected by Fx.
type EntityHandlerParams struct {
	fx.In

	Users     usecase.UserDao
	Groups    usecase.GroupDao
	Customers usecase.CustomerDao
	Orders    usecase.OrderDao
	Invoices  usecase.InvoiceDao
}

// EntityHandlers bundles one EntityHandler per historized type.
type EntityHandlers struct {
	Users     *EntityHandler[entity.User]
	Groups    *EntityHandler[entity.Group]
	Customers *EntityHandler[entity.Customer]
	Orders    *EntityHandler[entity.Order]
	Invoices  *EntityHandler[entity.Invoice]

	userDao usecase.UserDao
}

// NewEntityHandlers is the constructor for EntityHandlers.
func NewEntityHandlers(params EntityHandlerParams) *EntityHandlers {
	users := NewEntityHandler[entity.User](params.Users, entity.EntityUser)
	users.view = func(u *entity.User) any { return newUserResponse(u) }

	handlers := &EntityHandlers{
		Users:     users,
		Groups:    NewEntityHandler[entity.Group](params.Groups, entity.EntityGroup),
		Customers: NewEntityHandler[entity.Customer](params.Customers, entity.EntityCustomer),
		Orders:    NewEntityHandler[entity.Order](params.Orders, entity.EntityOrder),
		Invoices:  NewEntityHandler[entity.Invoice](params.Invoices, entity.EntityInvoice),
		userDao:   params.Users,
	}
	users.create = handlers.CreateUser

	return handlers
}

// UserResponse is a user without its credentials.
type UserResponse struct {
	ID                 int64      `json:"id"`
	Deleted            bool       `json:"deleted"`
	Created            time.Time  `json:"created"`
	LastUpdate         time.Time  `json:"lastUpdate"`
	Username           string     `json:"username"`
	Firstname          *string    `json:"firstname,omitempty"`
	Lastname           *string    `json:"lastname,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Locale             *string    `json:"locale,omitempty"`
	TimeZone           *string    `json:"timeZone,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Deactivated        bool       `json:"deactivated"`
	Restricted         bool       `json:"restricted"`
	Demo               bool       `json:"demo"`
	LastLogin          *time.Time `json:"lastLogin,omitempty"`
	LastPasswordChange *time.Time `json:"lastPasswordChange,omitempty"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Deleted:            u.Deleted,
		Created:            u.Created,
		LastUpdate:         u.LastUpdate,
		Username:           u.Username,
		Firstname:          u.Firstname,
		Lastname:           u.Lastname,
		Email:              u.Email,
		Locale:             u.Locale,
		TimeZone:           u.TimeZone,
		Description:        u.Description,
		Deactivated:        u.Deactivated,
		Restricted:         u.Restricted,
		Demo:               u.Demo,
		LastLogin:          u.LastLogin,
		LastPasswordChange: u.LastPasswordChange,
	}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Locale    *string `json:"locale"`
	TimeZone  *string `json:"timeZone"`
}

// ChangePasswordRequest represents the request body for a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// CreateUser hashes the initial password and saves the user.
func (h *EntityHandlers) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user := &entity.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Locale:    req.Locale,
		TimeZone:  req.TimeZone,
	}
	if _, err := h.userDao.CreateUser(c.Request().Context(), user, req.Password); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, newUserResponse(user))
}

// ChangePassword sets a new password. Users changing their own password
// must supply the old one.
func (h *EntityHandlers) ChangePassword(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userDao.ChangePassword(c.Request().Context(), id, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user.
func (h *EntityHandlers) Me(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	user, err := h.userDao.GetByID(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
