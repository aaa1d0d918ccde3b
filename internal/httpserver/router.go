package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medicore/portal/internal/domain"
	"github.com/medicore/portal/internal/tokens"
)

type Deps struct {
	Handler   *PortalHTTP
	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	h := d.Handler

	auth := e.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.POST("/verify", h.VerifyCode)
	auth.POST("/logout", h.Logout)
	auth.PATCH("/profile", h.UpdateProfile)

	e.GET("/products", h.ListProducts)
	e.GET("/products/search", h.SearchProducts)
	e.GET("/doctors", h.ListDoctors)
	e.GET("/timeslots", h.ListTimeSlots)

	e.GET("/appointments", h.ListAppointments)
	e.POST("/appointments", h.BookAppointment)
	e.POST("/appointments/:id/cancel", h.CancelAppointment)
	e.POST("/appointments/:id/session", h.StartTeleconsultation)

	e.GET("/session", h.Teleconsultation)
	e.DELETE("/session", h.EndTeleconsultation)
	e.POST("/session/chat", h.SendChatMessage)

	e.GET("/cart", h.GetCart)
	e.POST("/cart", h.AddToCart)
	e.PATCH("/cart/:productID", h.ChangeQuantity)
	e.DELETE("/cart/:productID", h.RemoveFromCart)
	e.DELETE("/cart", h.ClearCart)

	e.POST("/checkout", h.Checkout)
	e.GET("/orders", h.ListOrders)

	e.GET("/notifications", h.ListNotifications)
	e.POST("/notifications/:id/read", h.ReadNotification)
	e.POST("/reviews", h.SubmitReview)

	admin := e.Group("/admin", requireAdmin(d.JWTSecret))
	admin.GET("/stats", h.AdminStats)
	admin.POST("/products", h.AddProduct)
	admin.PATCH("/products/:id", h.UpdateProduct)
	admin.POST("/doctors", h.AddDoctor)
	admin.PATCH("/doctors/:id", h.UpdateDoctor)
	admin.PATCH("/orders/:id", h.UpdateOrder)
}

// requireAdmin checks the session token's role claim. The role itself comes
// from a naming convention on the email, so this gates convenience, not
// security.
func requireAdmin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := tokens.SessionClaimsFromToken(tokenStr, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Role != string(domain.RoleAdmin) {
				return echo.NewHTTPError(http.StatusForbidden, "admin only")
			}
			return next(c)
		}
	}
}
