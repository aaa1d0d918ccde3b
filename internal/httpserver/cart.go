package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/transport"
)

func (h *PortalHTTP) GetCart(c echo.Context) error {
	snap := h.Svc.Store.View()
	return c.JSON(http.StatusOK, transport.CartResponse{
		Lines: snap.Cart,
		Total: state.CartTotal(snap),
	})
}

func (h *PortalHTTP) AddToCart(c echo.Context) error {
	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.Svc.AddToCart(c.Request().Context(), req.ProductID, req.Quantity); err != nil {
		return httpError(err)
	}
	return h.GetCart(c)
}

func (h *PortalHTTP) ChangeQuantity(c echo.Context) error {
	var req transport.ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ChangeQuantity(c.Request().Context(), c.Param("productID"), req.Delta); err != nil {
		return httpError(err)
	}
	return h.GetCart(c)
}

func (h *PortalHTTP) RemoveFromCart(c echo.Context) error {
	h.Svc.RemoveFromCart(c.Request().Context(), c.Param("productID"))
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) ClearCart(c echo.Context) error {
	h.Svc.ClearCart(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) Checkout(c echo.Context) error {
	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.Checkout(c.Request().Context(), req.Address, req.City, req.Pincode, req.PaymentMethod)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *PortalHTTP) ListOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Store.View().Orders)
}

func (h *PortalHTTP) UpdateOrder(c echo.Context) error {
	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return httpError(err)
	}

	order, _ := state.OrderByID(h.Svc.Store.View(), c.Param("id"))
	return c.JSON(http.StatusOK, order)
}
