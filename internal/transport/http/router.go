// Package http is the REST surface of the karting service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/transport/http/middleware"
)

// NewRouter registers every REST route on a new gin engine.
func NewRouter(app *karting.App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1")

	bookings := NewBookingHandler(app)
	api.GET("/booking/", bookings.List)
	api.POST("/booking/", bookings.Create)
	api.GET("/booking/:id", bookings.Get)
	api.DELETE("/booking/:id", bookings.Delete)
	api.GET("/booking/:id/voucher", bookings.Voucher)

	clients := NewClientHandler(app)
	api.GET("/clients/", clients.List)
	api.POST("/clients/", clients.Create)
	api.GET("/clients/:id", clients.Get)
	api.PUT("/clients/:id", clients.Update)

	karts := NewKartHandler(app)
	api.GET("/karts/", karts.List)
	api.POST("/karts/", karts.Create)
	api.GET("/karts/:id", karts.Get)
	api.PUT("/karts/:id/availability", karts.SetAvailability)
	api.GET("/rates/", karts.Rates)

	api.GET("/events", NewEventsHandler(app.ListEvents).List)

	return r
}
