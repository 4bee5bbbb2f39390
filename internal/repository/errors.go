// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish a missing row from a database failure.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrVenueNotFound is returned when a venue lookup, update or delete
// targets an id that does not exist, and when a show references one.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is the artist counterpart of ErrVenueNotFound.
var ErrArtistNotFound = errors.New("artist not found")

// isDuplicateKey reports whether err is a unique constraint violation.
// MySQL reports error 1062; the sqlite driver used in tests reports a
// "UNIQUE constraint failed" message.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}

// likePattern turns a free-text search term into a case-insensitive
// substring pattern for `LOWER(col) LIKE ? ESCAPE '!'`.  Wildcards typed by
// the user are matched literally.
func likePattern(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(term) + "%"
}
