package router // router defines how HTTP routes are registered for the site

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterRoutes maps every page of the directory onto h.  The write
// middlewares (rate limiting in production) wrap only the routes that change
// data; browsing is never limited.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, write ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)

	// ---- Venues ----
	v := e.Group("/venues")
	v.GET("", h.ListVenues)
	v.POST("/search", h.SearchVenues)
	v.GET("/create", h.NewVenueForm)
	v.POST("/create", h.CreateVenue, write...)
	v.GET("/:id", h.ShowVenue)
	v.GET("/:id/edit", h.EditVenueForm)
	v.POST("/:id/edit", h.UpdateVenue, write...)
	v.DELETE("/:id", h.DeleteVenue, write...)

	// ---- Artists ----
	a := e.Group("/artists")
	a.GET("", h.ListArtists)
	a.POST("/search", h.SearchArtists)
	a.GET("/create", h.NewArtistForm)
	a.POST("/create", h.CreateArtist, write...)
	a.GET("/:id", h.ShowArtist)
	a.GET("/:id/edit", h.EditArtistForm)
	a.POST("/:id/edit", h.UpdateArtist, write...)
	a.DELETE("/:id", h.DeleteArtist, write...)

	// ---- Shows ----
	s := e.Group("/shows")
	s.GET("", h.ListShows)
	s.GET("/create", h.NewShowForm)
	s.POST("/create", h.CreateShow, write...)
}
