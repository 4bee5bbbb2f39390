// Package repository contains data access logic for Show domain operations.
// A Show books one artist at one venue at a start time.  Listings join the
// artist and venue names so pages never need a second round trip.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel matching
	"time"         // time truncates start times to whole seconds

	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show after checking, inside the same transaction,
// that both the venue and the artist exist.  ErrVenueNotFound or
// ErrArtistNotFound is returned otherwise and nothing is written.  The
// start time is stored in UTC with second precision.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, s.VenueID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, s.ArtistID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		s.StartTime = s.StartTime.UTC().Truncate(time.Second)
		const q = `INSERT INTO shows (start_time, artist_id, venue_id) VALUES (?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, s.StartTime, s.ArtistID, s.VenueID)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = uint64(id)
		return nil
	})
}

const showListingSelect = `SELECT s.id, s.start_time,
	       a.id, a.name, a.image_link,
	       v.id, v.name, v.image_link
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v  ON v.id = s.venue_id`

// ListAll returns every show ordered by start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.queryListings(ctx, showListingSelect+` ORDER BY s.start_time, s.id`)
}

// ListByVenue returns the shows hosted by a venue ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	return r.queryListings(ctx, showListingSelect+` WHERE s.venue_id = ? ORDER BY s.start_time, s.id`, venueID)
}

// ListByArtist returns the shows performed by an artist ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	return r.queryListings(ctx, showListingSelect+` WHERE s.artist_id = ? ORDER BY s.start_time, s.id`, artistID)
}

func (r *ShowRepo) queryListings(ctx context.Context, q string, args ...any) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ShowListing{}
	for rows.Next() {
		var l model.ShowListing
		if err := rows.Scan(
			&l.ID, &l.StartTime,
			&l.ArtistID, &l.ArtistName, &l.ArtistImageLink,
			&l.VenueID, &l.VenueName, &l.VenueImageLink,
		); err != nil {
			return nil, err
		}
		l.StartTime = l.StartTime.UTC()
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
