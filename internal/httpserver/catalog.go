package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/transport"
)

func (h *PortalHTTP) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Store.View().Products)
}

func (h *PortalHTTP) SearchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}
	from, _ := strconv.Atoi(c.QueryParam("from"))
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		size = 20
	}

	total, products, err := h.Svc.SearchProducts(c.Request().Context(), query, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, transport.SearchResponse{Total: total, Products: products})
}

func (h *PortalHTTP) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Store.View().Doctors)
}

func (h *PortalHTTP) ListTimeSlots(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Svc.Store.View().TimeSlots)
}

func (h *PortalHTTP) AddProduct(c echo.Context) error {
	var req transport.AddProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.AddProduct(c.Request().Context(), req.Name, req.Price, req.Category, req.Stock)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *PortalHTTP) UpdateProduct(c echo.Context) error {
	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	patch := state.ProductPatch{Name: req.Name, Price: req.Price, Category: req.Category, Stock: req.Stock}
	if err := h.Svc.UpdateProduct(c.Request().Context(), c.Param("id"), patch); err != nil {
		return httpError(err)
	}

	product, _ := state.ProductByID(h.Svc.Store.View(), c.Param("id"))
	return c.JSON(http.StatusOK, product)
}

func (h *PortalHTTP) AddDoctor(c echo.Context) error {
	var req transport.AddDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	doctor, err := h.Svc.AddDoctor(c.Request().Context(), req.Name, req.Specialty, req.Fee, req.Rating)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, doctor)
}

func (h *PortalHTTP) UpdateDoctor(c echo.Context) error {
	var req transport.UpdateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	patch := state.DoctorPatch{Name: req.Name, Specialty: req.Specialty, Fee: req.Fee, Rating: req.Rating, Available: req.Available}
	if err := h.Svc.UpdateDoctor(c.Request().Context(), c.Param("id"), patch); err != nil {
		return httpError(err)
	}

	doctor, _ := state.DoctorByID(h.Svc.Store.View(), c.Param("id"))
	return c.JSON(http.StatusOK, doctor)
}

func (h *PortalHTTP) SubmitReview(c echo.Context) error {
	var req transport.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SubmitReview(c.Request().Context(), req.TargetID, req.Rating, req.Comment); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *PortalHTTP) ListNotifications(c echo.Context) error {
	snap := h.Svc.Store.View()
	return c.JSON(http.StatusOK, transport.NotificationsResponse{
		Unread:        state.UnreadNotifications(snap),
		Notifications: snap.Notifications,
	})
}

func (h *PortalHTTP) ReadNotification(c echo.Context) error {
	h.Svc.MarkNotificationRead(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) AdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, state.Stats(h.Svc.Store.View()))
}
