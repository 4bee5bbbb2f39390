package form

import (
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ShowForm is bound from the new show page.  Ids are kept as text so a
// malformed value becomes a validation error instead of a bind error.
type ShowForm struct {
	ArtistID  string `form:"artist_id"`
	VenueID   string `form:"venue_id"`
	StartTime string `form:"start_time"`

	show model.Show
}

// Validate parses the fields and returns nil when the form is valid.
// Whether the artist and venue exist is checked when the show is stored.
func (f *ShowForm) Validate() Errors {
	errs := Errors{}
	f.show.ArtistID = parseID(errs, "artist_id", f.ArtistID)
	f.show.VenueID = parseID(errs, "venue_id", f.VenueID)
	if strings.TrimSpace(f.StartTime) == "" {
		errs.add("start_time", "This field is required.")
	} else if t, ok := ParseStartTime(f.StartTime); ok {
		f.show.StartTime = t
	} else {
		errs.add("start_time", "Not a valid datetime value.")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Show returns the parsed show.  Only meaningful after Validate returned nil.
func (f *ShowForm) Show() model.Show { return f.show }

func parseID(errs Errors, field, v string) uint64 {
	v = strings.TrimSpace(v)
	if v == "" {
		errs.add(field, "This field is required.")
		return 0
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		errs.add(field, "Not a valid integer value.")
		return 0
	}
	return n
}

// DefaultStartTime is the prefilled value of a new show form.
func DefaultStartTime(now time.Time) string {
	return now.UTC().Format("2006-01-02 15:04:05")
}
