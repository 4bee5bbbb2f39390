package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/model"
)

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db     *sql.DB
	genres *GenreRepo
}

// NewArtistRepo constructs an ArtistRepo.
func NewArtistRepo(db *sql.DB, genres *GenreRepo) *ArtistRepo {
	return &ArtistRepo{db: db, genres: genres}
}

const artistColumns = `id, name, city, state, phone, image_link, facebook_link,
	website_link, looking_for_venue, seeking_description`

func scanArtist(row interface{ Scan(...any) error }, a *model.Artist) error {
	return row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.ImageLink,
		&a.FacebookLink, &a.WebsiteLink, &a.LookingForVenue, &a.SeekingDescription)
}

// Create inserts the artist and its genre links in one transaction.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist, genreNames []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		genres, err := r.genres.ResolveTx(ctx, tx, genreNames)
		if err != nil {
			return err
		}
		const q = `INSERT INTO artists (name, city, state, phone, image_link, facebook_link,
		           website_link, looking_for_venue, seeking_description)
		           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
		res, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.WebsiteLink, a.LookingForVenue, a.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = uint64(id)
		if err := artistGenres.replaceTx(ctx, tx, a.ID, genres); err != nil {
			return err
		}
		a.Genres = genreNamesOf(genres)
		return nil
	})
}

// GetByID fetches an artist with its genre names or ErrArtistNotFound.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	var a model.Artist
	err := scanArtist(r.db.QueryRowContext(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = ?`, id), &a)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	if a.Genres, err = r.genres.ListByArtist(ctx, id); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update overwrites the artist's fields and replaces its genre set.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist, genreNames []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM artists WHERE id = ?`, a.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		genres, err := r.genres.ResolveTx(ctx, tx, genreNames)
		if err != nil {
			return err
		}
		const q = `UPDATE artists
		           SET name = ?, city = ?, state = ?, phone = ?, image_link = ?, facebook_link = ?,
		               website_link = ?, looking_for_venue = ?, seeking_description = ?
		           WHERE id = ?`
		if _, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.ImageLink,
			a.FacebookLink, a.WebsiteLink, a.LookingForVenue, a.SeekingDescription, a.ID); err != nil {
			return err
		}
		if err := artistGenres.replaceTx(ctx, tx, a.ID, genres); err != nil {
			return err
		}
		a.Genres = genreNamesOf(genres)
		return nil
	})
}

// Delete removes an artist, its genre links and its shows, returning the
// artist's name.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) (string, error) {
	var name string
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT name FROM artists WHERE id = ?`, id).Scan(&name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM genre_artists WHERE artist_id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = ?`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, id)
		return err
	})
	return name, err
}

const artistSummarySelect = `SELECT a.id, a.name,
	       COALESCE(SUM(CASE WHEN s.start_time > ? THEN 1 ELSE 0 END), 0) AS num_upcoming_shows
	FROM artists a
	LEFT JOIN shows s ON s.artist_id = a.id`

const artistSummaryGroup = `
	GROUP BY a.id, a.name
	ORDER BY a.name, a.id`

// ListAll returns every artist ordered by name.
func (r *ArtistRepo) ListAll(ctx context.Context, now time.Time) ([]model.ArtistSummary, error) {
	return r.querySummaries(ctx, artistSummarySelect+artistSummaryGroup, now.UTC())
}

// Search returns the artists whose name contains term, ignoring case.
func (r *ArtistRepo) Search(ctx context.Context, term string, now time.Time) ([]model.ArtistSummary, error) {
	q := artistSummarySelect + `
	WHERE LOWER(a.name) LIKE ? ESCAPE '!'` + artistSummaryGroup
	return r.querySummaries(ctx, q, now.UTC(), likePattern(term))
}

func (r *ArtistRepo) querySummaries(ctx context.Context, q string, args ...any) ([]model.ArtistSummary, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ArtistSummary{}
	for rows.Next() {
		var s model.ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRecent returns the most recently listed artists, newest first.
func (r *ArtistRepo) ListRecent(ctx context.Context, limit int) ([]model.ArtistSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.ArtistSummary{}
	for rows.Next() {
		var s model.ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
