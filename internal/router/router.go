package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailability(c *ginext.Context)
	ListCourts(c *ginext.Context)
	CreateHold(c *ginext.Context)
	ExtendHold(c *ginext.Context)
	ReleaseHold(c *ginext.Context)
	ConfirmHold(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	SetStatus(c *ginext.Context)
	MarkPaid(c *ginext.Context)
	AttachCustomer(c *ginext.Context)
	SearchCustomers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.GET("/availability", h.GetAvailability)
		api.GET("/courts", h.ListCourts)

		// Holds
		api.POST("/holds", h.CreateHold)
		api.PATCH("/holds/:id", h.ExtendHold)
		api.DELETE("/holds/:id", h.ReleaseHold)
		api.POST("/holds/:id/confirm", h.ConfirmHold)

		// Reception
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/status", h.SetStatus)
		api.POST("/bookings/:id/payment", h.MarkPaid)
		api.POST("/bookings/:id/customer", h.AttachCustomer)
		api.GET("/customers", h.SearchCustomers)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
