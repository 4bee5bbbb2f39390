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

type artistsPage struct {
    Artists []model.ArtistSummary
}

type artistSearchPage struct {
    SearchTerm string
    Count      int
    Results    []model.ArtistSummary
}

type artistDetailPage struct {
    Artist   model.Artist
    Schedule model.Schedule
}

type artistFormPage struct {
    ID   uint64
    Form form.ArtistForm
}

// ListArtists renders the flat artist list.
func (h *Handler) ListArtists(c echo.Context) error {
    artists, err := h.Artists.ListAll(c.Request().Context(), h.Now())
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/artists", artistsPage{Artists: artists})
}

// SearchArtists matches artist names case-insensitively against the
// search_term form field.
func (h *Handler) SearchArtists(c echo.Context) error {
    term := strings.TrimSpace(c.FormValue("search_term"))
    results, err := h.Artists.Search(c.Request().Context(), term, h.Now())
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/search_artists", artistSearchPage{
        SearchTerm: term,
        Count:      len(results),
        Results:    results,
    })
}

// ShowArtist renders one artist with genres and past/upcoming shows.
func (h *Handler) ShowArtist(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    ctx := c.Request().Context()
    a, err := h.Artists.GetByID(ctx, id)
    if errors.Is(err, repository.ErrArtistNotFound) {
        return home(c)
    }
    if err != nil {
        return err
    }
    shows, err := h.Shows.ListByArtist(ctx, id)
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "pages/show_artist", artistDetailPage{
        Artist:   *a,
        Schedule: model.PartitionShows(shows, h.Now()),
    })
}

func (h *Handler) NewArtistForm(c echo.Context) error {
    return c.Render(http.StatusOK, "forms/new_artist", artistFormPage{})
}

// CreateArtist validates the submitted form and lists a new artist.
func (h *Handler) CreateArtist(c echo.Context) error {
    var f form.ArtistForm
    if err := c.Bind(&f); err != nil {
        return h.invalid(c, form.Errors{"form": {"Could not read the submitted form."}}, "/artists/create")
    }
    if errs := f.Validate(); errs != nil {
        return h.invalid(c, errs, "/artists/create")
    }
    var a model.Artist
    f.Artist(&a)
    if err := h.Artists.Create(c.Request().Context(), &a, f.Genres); err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", f.Name), err)
    }
    h.published(c, queue.EntityArtist, queue.ActionCreated, a.ID, a.Name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Artist %s was successfully listed!", a.Name))
    return c.Redirect(http.StatusSeeOther, "/artists")
}

func (h *Handler) EditArtistForm(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    a, err := h.Artists.GetByID(c.Request().Context(), id)
    if errors.Is(err, repository.ErrArtistNotFound) {
        return home(c)
    }
    if err != nil {
        return err
    }
    return c.Render(http.StatusOK, "forms/edit_artist", artistFormPage{ID: id, Form: form.FromArtist(a)})
}

// UpdateArtist validates the submitted form and replaces the artist's
// fields and genre set.
func (h *Handler) UpdateArtist(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    back := fmt.Sprintf("/artists/%d/edit", id)
    var f form.ArtistForm
    if err := c.Bind(&f); err != nil {
        return h.invalid(c, form.Errors{"form": {"Could not read the submitted form."}}, back)
    }
    if errs := f.Validate(); errs != nil {
        return h.invalid(c, errs, back)
    }
    a := model.Artist{ID: id}
    f.Artist(&a)
    err := h.Artists.Update(c.Request().Context(), &a, f.Genres)
    if errors.Is(err, repository.ErrArtistNotFound) {
        return home(c)
    }
    if err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred. Artist %s could not be edited.", f.Name), err)
    }
    h.published(c, queue.EntityArtist, queue.ActionUpdated, a.ID, a.Name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Artist %s was successfully edited!", a.Name))
    return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist removes an artist with its genre links and shows.
func (h *Handler) DeleteArtist(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return home(c)
    }
    name, err := h.Artists.Delete(c.Request().Context(), id)
    if errors.Is(err, repository.ErrArtistNotFound) {
        return home(c)
    }
    if err != nil {
        return h.fail(c, fmt.Sprintf("An error occurred deleting artist %d.", id), err)
    }
    h.published(c, queue.EntityArtist, queue.ActionDeleted, id, name)
    h.Flash.Add(c, flash.Info, fmt.Sprintf("Artist %s was successfully deleted!", name))
    return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
