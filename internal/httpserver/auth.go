package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/portal/internal/service"
	"github.com/medicore/portal/internal/transport"
)

type PortalHTTP struct {
	Svc *service.Portal
}

func (h *PortalHTTP) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(c.Request().Context(), req.Email, req.Name, req.Mobile)
	if err != nil {
		return httpError(err)
	}

	snap := h.Svc.Store.View()
	return c.JSON(http.StatusOK, transport.SessionResponse{User: user, Session: snap.Session})
}

func (h *PortalHTTP) Register(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Register(c.Request().Context(), req.Email, req.Name, req.Mobile); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "otp_sent"})
}

func (h *PortalHTTP) VerifyCode(c echo.Context) error {
	var req transport.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.VerifyCode(c.Request().Context(), req.Code)
	if err != nil {
		return httpError(err)
	}

	snap := h.Svc.Store.View()
	return c.JSON(http.StatusOK, transport.SessionResponse{User: user, Session: snap.Session})
}

func (h *PortalHTTP) Logout(c echo.Context) error {
	h.Svc.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) UpdateProfile(c echo.Context) error {
	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateProfile(c.Request().Context(), req.Name, req.Email, req.Mobile); err != nil {
		return httpError(err)
	}

	snap := h.Svc.Store.View()
	return c.JSON(http.StatusOK, snap.User)
}
