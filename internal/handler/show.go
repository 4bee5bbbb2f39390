package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/flash"
    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/queue"
    "github.com/iliyamo/venue-booking/internal/repository"
)

type showsPage struct {
    Shows []model.ShowListing
}

type showFormPage struct {
    Form form.ShowForm
}

// ListShows renders every show with its venue and artist.
func (h *Handler) ListShows(c echo.Context) error {
    shows, err := h.Shows.ListAll(c.Request().Context())
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/shows", showsPage{Shows: shows})
}

// NewShowForm renders the show form with the start time prefilled to now.
func (h *Handler) NewShowForm(c echo.Context) error {
    return c.Render(http.StatusOK, "forms/new_show", showFormPage{
        Form: form.ShowForm{StartTime: form.DefaultStartTime(h.Now())},
    })
}

// CreateShow books an artist at a venue.  Unknown ids are reported back on
// the form rather than as a server error.
func (h *Handler) CreateShow(c echo.Context) error {
    const back = "/shows/create"
    var f form.ShowForm
    if err := c.Bind(&f); err != nil {
        return h.invalid(c, form.Errors{"form": {"Could not read the submitted form."}}, back)
    }
    if errs := f.Validate(); errs != nil {
        return h.invalid(c, errs, back)
    }
    s := f.Show()
    err := h.Shows.Create(c.Request().Context(), &s)
    switch {
    case errors.Is(err, repository.ErrVenueNotFound):
        h.Flash.Add(c, flash.Error, "No venue with that ID exists!")
        return c.Redirect(http.StatusSeeOther, back)
    case errors.Is(err, repository.ErrArtistNotFound):
        h.Flash.Add(c, flash.Error, "No artist with that ID exists!")
        return c.Redirect(http.StatusSeeOther, back)
    case err != nil:
        return h.fail(c, "An error occurred. Show could not be listed.", err)
    }
    h.published(c, queue.EntityShow, queue.ActionCreated, s.ID, "")
    h.Flash.Add(c, flash.Info, "Show was successfully listed!")
    return c.Redirect(http.StatusSeeOther, "/shows")
}
