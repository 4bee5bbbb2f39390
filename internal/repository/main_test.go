package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/iliyamo/venue-booking/internal/model"
)

// sqliteSchema mirrors db/schema.sql in a dialect sqlite accepts.
const sqliteSchema = `
CREATE TABLE genres (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);
CREATE TABLE venues (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	name                TEXT NOT NULL,
	city                TEXT NOT NULL,
	state               TEXT NOT NULL,
	address             TEXT NOT NULL,
	phone               TEXT NOT NULL DEFAULT '',
	image_link          TEXT NOT NULL DEFAULT '',
	facebook_link       TEXT NOT NULL DEFAULT '',
	website_link        TEXT NOT NULL DEFAULT '',
	looking_for_talent  BOOLEAN NOT NULL DEFAULT 0,
	seeking_description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE artists (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	name                TEXT NOT NULL,
	city                TEXT NOT NULL,
	state               TEXT NOT NULL,
	phone               TEXT NOT NULL DEFAULT '',
	image_link          TEXT NOT NULL DEFAULT '',
	facebook_link       TEXT NOT NULL DEFAULT '',
	website_link        TEXT NOT NULL DEFAULT '',
	looking_for_venue   BOOLEAN NOT NULL DEFAULT 0,
	seeking_description TEXT NOT NULL DEFAULT ''
);
CREATE TABLE shows (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	start_time DATETIME NOT NULL,
	artist_id  INTEGER NOT NULL REFERENCES artists (id),
	venue_id   INTEGER NOT NULL REFERENCES venues (id)
);
CREATE TABLE genre_venues (
	genre_id INTEGER NOT NULL REFERENCES genres (id),
	venue_id INTEGER NOT NULL REFERENCES venues (id),
	PRIMARY KEY (genre_id, venue_id)
);
CREATE TABLE genre_artists (
	genre_id  INTEGER NOT NULL REFERENCES genres (id),
	artist_id INTEGER NOT NULL REFERENCES artists (id),
	PRIMARY KEY (genre_id, artist_id)
);
`

type repos struct {
	db      *sql.DB
	genres  *GenreRepo
	venues  *VenueRepo
	artists *ArtistRepo
	shows   *ShowRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "fyyur.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(sqliteSchema)
	require.NoError(t, err)

	genres := NewGenreRepo(db)
	return repos{
		db:      db,
		genres:  genres,
		venues:  NewVenueRepo(db, genres),
		artists: NewArtistRepo(db, genres),
		shows:   NewShowRepo(db),
	}
}

func (r repos) mustVenue(t *testing.T, name, city, state string, genres ...string) *model.Venue {
	t.Helper()
	v := &model.Venue{Name: name, City: city, State: state, Address: "1015 Folsom Street"}
	require.NoError(t, r.venues.Create(context.Background(), v, genres))
	return v
}

func (r repos) mustArtist(t *testing.T, name string, genres ...string) *model.Artist {
	t.Helper()
	a := &model.Artist{Name: name, City: "San Francisco", State: "CA"}
	require.NoError(t, r.artists.Create(context.Background(), a, genres))
	return a
}

func (r repos) mustShow(t *testing.T, artistID, venueID uint64, start time.Time) *model.Show {
	t.Helper()
	s := &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}
	require.NoError(t, r.shows.Create(context.Background(), s))
	return s
}

func (r repos) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
