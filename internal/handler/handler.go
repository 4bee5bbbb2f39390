// Package handler defines the HTTP handlers of the booking directory.
// Handlers talk to storage through the small interfaces below so they can
// be exercised without a database.
package handler

import (
    "context"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/venue-booking/internal/flash"
    "github.com/iliyamo/venue-booking/internal/form"
    "github.com/iliyamo/venue-booking/internal/model"
    "github.com/iliyamo/venue-booking/internal/queue"
    "github.com/iliyamo/venue-booking/internal/service"
)

// VenueStore is the venue persistence used by the handlers.
type VenueStore interface {
    Create(ctx context.Context, v *model.Venue, genreNames []string) error
    GetByID(ctx context.Context, id uint64) (*model.Venue, error)
    Update(ctx context.Context, v *model.Venue, genreNames []string) error
    Delete(ctx context.Context, id uint64) (string, error)
    ListSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error)
    Search(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error)
    ListRecent(ctx context.Context, limit int) ([]model.VenueSummary, error)
}

// ArtistStore is the artist persistence used by the handlers.
type ArtistStore interface {
    Create(ctx context.Context, a *model.Artist, genreNames []string) error
    GetByID(ctx context.Context, id uint64) (*model.Artist, error)
    Update(ctx context.Context, a *model.Artist, genreNames []string) error
    Delete(ctx context.Context, id uint64) (string, error)
    ListAll(ctx context.Context, now time.Time) ([]model.ArtistSummary, error)
    Search(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error)
    ListRecent(ctx context.Context, limit int) ([]model.ArtistSummary, error)
}

// ShowStore is the show persistence used by the handlers.
type ShowStore interface {
    Create(ctx context.Context, s *model.Show) error
    ListAll(ctx context.Context) ([]model.ShowListing, error)
    ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error)
    ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error)
}

// Handler bundles the stores and the request-scoped helpers every page
// needs.
type Handler struct {
    Venues  VenueStore
    Artists ArtistStore
    Shows   ShowStore

    Flash  *flash.Store
    Events service.Publisher
    Logger *zap.Logger
    Now    func() time.Time
}

// New constructs a Handler and panics if a store is missing.  A nil
// publisher becomes a NopPublisher and a nil logger a no-op logger.
func New(venues VenueStore, artists ArtistStore, shows ShowStore, fl *flash.Store, events service.Publisher, logger *zap.Logger) *Handler {
    if venues == nil || artists == nil || shows == nil || fl == nil {
        panic("nil dependency passed to handler.New")
    }
    if events == nil {
        events = service.NopPublisher{}
    }
    if logger == nil {
        logger = zap.NewNop()
    }
    return &Handler{
        Venues:  venues,
        Artists: artists,
        Shows:   shows,
        Flash:   fl,
        Events:  events,
        Logger:  logger,
        Now:     time.Now,
    }
}

// parseID reads the :id path parameter.  Ids that are not positive
// integers are reported as missing.
func parseID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}

// home is where requests for missing listings end up.
func home(c echo.Context) error {
    return c.Redirect(http.StatusFound, "/")
}

// invalid flashes every validation message and sends the client back to
// the form it came from.
func (h *Handler) invalid(c echo.Context, errs form.Errors, back string) error {
    for _, msg := range errs.Messages() {
        h.Flash.Add(c, flash.Error, msg)
    }
    return c.Redirect(http.StatusSeeOther, back)
}

// fail logs a write failure, flashes msg and answers 500.  The error page
// shows the flashed message.
func (h *Handler) fail(c echo.Context, msg string, err error) error {
    h.Logger.Error(msg,
        zap.Error(err),
        zap.String("method", c.Request().Method),
        zap.String("path", c.Request().URL.Path),
        zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
    )
    h.Flash.Add(c, flash.Error, msg)
    return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}

// publishTimeout bounds how long a write request waits on the broker
// before redirecting.
const publishTimeout = 2 * time.Second

// published sends a listing event after a committed write.  Publishing is
// best effort; the publisher logs its own failures.
func (h *Handler) published(c echo.Context, entity, action string, id uint64, name string) {
    ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
    defer cancel()
    _ = h.Events.Publish(ctx, queue.NewListingEvent(entity, action, id, name))
}
