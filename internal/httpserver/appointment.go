package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medicore/portal/internal/state"
	"github.com/medicore/portal/internal/transport"
)

func (h *PortalHTTP) ListAppointments(c echo.Context) error {
	snap := h.Svc.Store.View()
	if c.QueryParam("upcoming") == "true" {
		return c.JSON(http.StatusOK, state.UpcomingAppointments(snap))
	}
	return c.JSON(http.StatusOK, snap.Appointments)
}

func (h *PortalHTTP) BookAppointment(c echo.Context) error {
	var req transport.BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	apt, err := h.Svc.BookAppointment(c.Request().Context(), req.DoctorID, req.Date, req.TimeSlot)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, apt)
}

func (h *PortalHTTP) CancelAppointment(c echo.Context) error {
	if err := h.Svc.CancelAppointment(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) StartTeleconsultation(c echo.Context) error {
	if err := h.Svc.StartTeleconsultation(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.teleconsult())
}

func (h *PortalHTTP) EndTeleconsultation(c echo.Context) error {
	if err := h.Svc.EndTeleconsultation(c.Request().Context()); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PortalHTTP) Teleconsultation(c echo.Context) error {
	return c.JSON(http.StatusOK, h.teleconsult())
}

func (h *PortalHTTP) SendChatMessage(c echo.Context) error {
	var req transport.ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SendChatMessage(c.Request().Context(), req.Text); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.teleconsult())
}

func (h *PortalHTTP) teleconsult() transport.TeleconsultResponse {
	snap := h.Svc.Store.View()
	return transport.TeleconsultResponse{
		Session:  snap.ActiveSession,
		Seconds:  h.Svc.CallSeconds(),
		Messages: h.Svc.ChatMessages(),
	}
}
