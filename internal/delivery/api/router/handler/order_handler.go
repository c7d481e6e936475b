package handler

import (
	"context"
	"net/http"

	"projectforge/internal/delivery/api/response"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/infra/cache"

	"github.com/labstack/echo/v4"
)

// OrderInfoProvider serves the cached invoicing state of orders.
type OrderInfoProvider interface {
	GetOrderInfo(ctx context.Context, orderID int64) (*cache.OrderInfo, bool)
	ToBeInvoicedCount(ctx context.Context) int
}

// OrderInfoHandler exposes the order cache.
type OrderInfoHandler struct {
	orders OrderInfoProvider
}

// NewOrderInfoHandler is the constructor for OrderInfoHandler
func NewOrderInfoHandler(orders OrderInfoProvider) *OrderInfoHandler {
	return &OrderInfoHandler{orders: orders}
}

// Info returns the invoicing state of one order.
func (h *OrderInfoHandler) Info(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	info, ok := h.orders.GetOrderInfo(c.Request().Context(), id)
	if !ok {
		return domainerrors.ErrEntityNotFound.WithDetails("order " + c.Param("id"))
	}

	return response.Success(c, http.StatusOK, info)
}

// ToBeInvoiced returns the number of orders waiting for an invoice.
func (h *OrderInfoHandler) ToBeInvoiced(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]int{
		"count": h.orders.ToBeInvoicedCount(c.Request().Context()),
	})
}
