package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/model"
)

// recentLimit is how many listings of each kind the home page shows.
const recentLimit = 10

type homePage struct {
    Venues  []model.VenueSummary
    Artists []model.ArtistSummary
}

// Home renders the landing page with the most recently listed venues and
// artists.
func (h *Handler) Home(c echo.Context) error {
    ctx := c.Request().Context()
    venues, err := h.Venues.ListRecent(ctx, recentLimit)
    if err != nil {
        return err
    }
    artists, err := h.Artists.ListRecent(ctx, recentLimit)
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/home", homePage{Venues: venues, Artists: artists})
}
