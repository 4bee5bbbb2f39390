// Package form binds and validates the listing forms.  Validation errors
// are collected per field, the way they are flashed back to the user.
package form

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iliyamo/venue-booking/internal/model"
)

// Errors maps a form field name to its validation messages.
type Errors map[string][]string

func (e Errors) add(field, msg string) { e[field] = append(e[field], msg) }

// Messages flattens the errors into "field: message" lines sorted by field.
func (e Errors) Messages() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []string
	for _, f := range fields {
		for _, m := range e[f] {
			out = append(out, f+": "+m)
		}
	}
	return out
}

// Column sizes from db/schema.sql, counted in characters like VARCHAR.
const (
	maxName               = 255
	maxText               = 120
	maxImageLink          = 500
	maxSeekingDescription = 500
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{5,18}[0-9]$`)

var genreSet = func() map[string]bool {
	m := make(map[string]bool, len(model.GenreChoices))
	for _, g := range model.GenreChoices {
		m[g] = true
	}
	return m
}()

func requireText(errs Errors, field, v string) {
	if strings.TrimSpace(v) == "" {
		errs.add(field, "This field is required.")
	}
}

func checkState(errs Errors, v string) {
	if strings.TrimSpace(v) == "" {
		errs.add("state", "This field is required.")
		return
	}
	if !IsState(v) {
		errs.add("state", "Not a valid choice.")
	}
}

func checkPhone(errs Errors, v string) {
	if v == "" {
		return
	}
	if !phonePattern.MatchString(v) {
		errs.add("phone", "Invalid phone number.")
	}
}

func checkURL(errs Errors, field, v string) {
	if v == "" {
		return
	}
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.add(field, "Invalid URL.")
	}
}

func checkGenres(errs Errors, genres []string) {
	if len(genres) == 0 {
		errs.add("genres", "This field is required.")
		return
	}
	for _, g := range genres {
		if !genreSet[g] {
			errs.add("genres", "'"+g+"' is not a valid choice.")
		}
	}
}

func checkMaxLen(errs Errors, field, v string, max int) {
	if utf8.RuneCountInString(v) > max {
		errs.add(field, fmt.Sprintf("Field cannot be longer than %d characters.", max))
	}
}

func trimAll(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// startTimeLayouts are accepted for the show start time, in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ParseStartTime parses a show start time.  Values without a zone are
// taken as UTC.
func ParseStartTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
