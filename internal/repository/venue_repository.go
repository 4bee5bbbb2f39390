// Package repository contains data access logic separated from HTTP handlers.
// This file holds the venue queries: CRUD, the grouped listing with
// upcoming show counts, and name search.
package repository

import (
	"context"      // context carries request deadlines into every query
	"database/sql" // sql provides the DB abstraction
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db     *sql.DB
	genres *GenreRepo
}

// NewVenueRepo constructs a VenueRepo.  Genre names passed to Create and
// Update are resolved through genres.
func NewVenueRepo(db *sql.DB, genres *GenreRepo) *VenueRepo {
	return &VenueRepo{db: db, genres: genres}
}

const venueColumns = `id, name, city, state, address, phone, image_link, facebook_link,
	website_link, looking_for_talent, seeking_description`

func scanVenue(row interface{ Scan(...any) error }, v *model.Venue) error {
	return row.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.WebsiteLink, &v.LookingForTalent, &v.SeekingDescription)
}

// Create inserts the venue and links it to the named genres in a single
// transaction, creating genre rows on first use.  On success v.ID and
// v.Genres are populated.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue, genreNames []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		genres, err := r.genres.ResolveTx(ctx, tx, genreNames)
		if err != nil {
			return err
		}
		const q = `INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		           website_link, looking_for_talent, seeking_description)
		           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
			v.FacebookLink, v.WebsiteLink, v.LookingForTalent, v.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		v.ID = uint64(id)
		if err := venueGenres.replaceTx(ctx, tx, v.ID, genres); err != nil {
			return err
		}
		v.Genres = genreNamesOf(genres)
		return nil
	})
}

// GetByID fetches a venue with its genre names.  It returns
// ErrVenueNotFound if no row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	var v model.Venue
	err := scanVenue(r.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = ?`, id), &v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.Genres, err = r.genres.ListByVenue(ctx, id); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update overwrites every editable field of the venue and replaces its
// genre set.  ErrVenueNotFound is returned when v.ID does not exist.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue, genreNames []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM venues WHERE id = ?`, v.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		genres, err := r.genres.ResolveTx(ctx, tx, genreNames)
		if err != nil {
			return err
		}
		const q = `UPDATE venues
		           SET name = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
		               facebook_link = ?, website_link = ?, looking_for_talent = ?, seeking_description = ?
		           WHERE id = ?`
		if _, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
			v.FacebookLink, v.WebsiteLink, v.LookingForTalent, v.SeekingDescription, v.ID); err != nil {
			return err
		}
		if err := venueGenres.replaceTx(ctx, tx, v.ID, genres); err != nil {
			return err
		}
		v.Genres = genreNamesOf(genres)
		return nil
	})
}

// Delete removes a venue together with its genre links and every show it
// hosts, and returns the deleted venue's name.  ErrVenueNotFound is
// returned when the id does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (string, error) {
	var name string
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT name FROM venues WHERE id = ?`, id).Scan(&name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM genre_venues WHERE venue_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = ?`, id)
		return err
	})
	return name, err
}

// venueSummarySelect counts upcoming shows per venue with a LEFT JOIN so
// venues without shows still appear.  The first placeholder is "now".
const venueSummarySelect = `SELECT v.id, v.name, v.city, v.state,
	       COALESCE(SUM(CASE WHEN s.start_time > ? THEN 1 ELSE 0 END), 0) AS num_upcoming_shows
	FROM venues v
	LEFT JOIN shows s ON s.venue_id = v.id`

const venueSummaryGroup = `
	GROUP BY v.id, v.name, v.city, v.state
	ORDER BY v.state, v.city, v.name, v.id`

// ListSummaries returns every venue with the number of shows starting
// after now, ordered by state, city and name.
func (r *VenueRepo) ListSummaries(ctx context.Context, now time.Time) ([]model.VenueSummary, error) {
	return r.querySummaries(ctx, venueSummarySelect+venueSummaryGroup, now.UTC())
}

// Search returns the venues whose name contains term, ignoring case.
func (r *VenueRepo) Search(ctx context.Context, term string, now time.Time) ([]model.VenueSummary, error) {
	q := venueSummarySelect + `
	WHERE LOWER(v.name) LIKE ? ESCAPE '!'` + venueSummaryGroup
	return r.querySummaries(ctx, q, now.UTC(), likePattern(term))
}

func (r *VenueRepo) querySummaries(ctx context.Context, q string, args ...any) ([]model.VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.VenueSummary{}
	for rows.Next() {
		var s model.VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the most recently listed venues, newest first.
func (r *VenueRepo) ListRecent(ctx context.Context, limit int) ([]model.VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, city, state FROM venues ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.VenueSummary{}
	for rows.Next() {
		var s model.VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func genreNamesOf(genres []model.Genre) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		out = append(out, g.Name)
	}
	return out
}
