package handler

import (
    "errors"
    "fmt"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/venue-booking/internal/flash"
    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/queue"
    "github.com/iliyamo/venue-booking/internal/repository"
)

type venuesPage struct {
    Areas []model.Area
}

type venueSearchPage struct {
    SearchTerm string
    Count      int
    Results    []model.VenueSummary
}

type venueDetailPage struct {
    Venue    model.Venue
    Schedule model.Schedule
}

type venueFormPage struct {
    ID   uint64
    Form form.VenueForm
}

// ListVenues renders every venue grouped by city and state, each with its
// number of upcoming shows.
func (h *Handler) ListVenues(c echo.Context) error {
    summaries, err := h.Venues.ListSummaries(c.Request().Context(), h.Now())
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/venues", venuesPage{Areas: model.GroupByArea(summaries)})
}

// SearchVenues matches venue names case-insensitively against the
// search_term form field.
func (h *Handler) SearchVenues(c echo.Context) error {
    term := strings.TrimSpace(c.FormValue("search_term"))
    results, err := h.Venues.Search(c.Request().Context(), term, h.Now())
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/search_venues", venueSearchPage{
        SearchTerm: term,
        Count:      len(results),
        Results:    results,
    })
}

// ShowVenue renders one venue with its genres and its shows split into
// past and upcoming.
func (h *Handler) ShowVenue(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    ctx := c.Request().Context()
    v, err := h.Venues.GetByID(ctx, id)
    if errors.Is(err, repository.ErrVenueNotFound) {
        return home(c)
    }
    if err != nil {
        return err
    }
    shows, err := h.Shows.ListByVenue(ctx, id)
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/show_venue", venueDetailPage{
        Venue:    *v,
        Schedule: model.PartitionShows(shows, h.Now()),
    })
}

// NewVenueForm renders an empty venue form.
func (h *Handler) NewVenueForm(c echo.Context) error {
    return c.Render(http.StatusOK, "forms/new_venue", venueFormPage{})
}

// CreateVenue validates the submitted form and lists a new venue.
func (h *Handler) CreateVenue(c echo.Context) error {
    var f form.VenueForm
    if err := c.Bind(&f); err != nil {
        return h.invalid(c, form.Errors{"form": {"Could not read the submitted form."}}, "/venues/create")
    }
    if errs := f.Validate(); errs != nil {
        return h.invalid(c, errs, "/venues/create")
    }
    var v model.Venue
    f.Venue(&v)
    if err := h.Venues.Create(c.Request().Context(), &v, f.Genres); err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", f.Name), err)
    }
    h.published(c, queue.EntityVenue, queue.ActionCreated, v.ID, v.Name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Venue %s was successfully listed!", v.Name))
    return c.Redirect(http.StatusSeeOther, "/venues")
}

// EditVenueForm renders the venue form prefilled with the stored values.
func (h *Handler) EditVenueForm(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    v, err := h.Venues.GetByID(c.Request().Context(), id)
    if errors.Is(err, repository.ErrVenueNotFound) {
        return home(c)
    }
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "forms/edit_venue", venueFormPage{ID: id, Form: form.FromVenue(v)})
}

// UpdateVenue validates the submitted form and replaces the venue's fields
// and genre set.
func (h *Handler) UpdateVenue(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    back := fmt.Sprintf("/venues/%d/edit", id)
    var f form.VenueForm
    if err := c.Bind(&f); err != nil {
        return h.invalid(c, form.Errors{"form": {"Could not read the submitted form."}}, back)
    }
    if errs := f.Validate(); errs != nil {
        return h.invalid(c, errs, back)
    }
    v := model.Venue{ID: id}
    f.Venue(&v)
    err := h.Venues.Update(c.Request().Context(), &v, f.Genres)
    if errors.Is(err, repository.ErrVenueNotFound) {
        return home(c)
    }
    if err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred. Venue %s could not be edited.", f.Name), err)
    }
    h.published(c, queue.EntityVenue, queue.ActionUpdated, v.ID, v.Name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Venue %s was successfully edited!", v.Name))
    return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes a venue with its genre links and hosted shows.  The
// page script follows up on {"deleted": true} by loading the venue list.
func (h *Handler) DeleteVenue(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    name, err := h.Venues.Delete(c.Request().Context(), id)
    if errors.Is(err, repository.ErrVenueNotFound) {
        return home(c)
    }
    if err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred deleting venue %d.", id), err)
    }
    h.published(c, queue.EntityVenue, queue.ActionDeleted, id, name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Venue %s was successfully deleted!", name))
    return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
