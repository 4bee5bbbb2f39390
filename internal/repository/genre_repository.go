package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/venue-booking/internal/model"
)

// GenreRepo manages the shared genres table and the two join tables that
// attach genres to venues and artists.
type GenreRepo struct {
	db *sql.DB
}

// NewGenreRepo constructs a GenreRepo with the given DB handle.
func NewGenreRepo(db *sql.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

// NormalizeGenreNames trims every name and drops blanks and repeats while
// keeping the first-seen order.
func NormalizeGenreNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ResolveTx maps genre names to genre rows inside the caller's
// transaction, inserting the names that do not exist yet.  A concurrent
// insert of the same name loses on the unique index and is resolved by
// reading the winner's row.
func (r *GenreRepo) ResolveTx(ctx context.Context, tx *sql.Tx, names []string) ([]model.Genre, error) {
	names = NormalizeGenreNames(names)
	out := make([]model.Genre, 0, len(names))
	for _, name := range names {
		g, err := r.findOrCreateTx(ctx, tx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve genre %q: %w", name, err)
		}
		out = append(out, g)
	}
	return out, nil
}

const genreLockedSelect = `SELECT id, name FROM genres WHERE name = ? FOR SHARE`

func (r *GenreRepo) findOrCreateTx(ctx context.Context, tx *sql.Tx, name string) (model.Genre, error) {
	const qSelect = `SELECT id, name FROM genres WHERE name = ?`
	g := model.Genre{}
	err := tx.QueryRowContext(ctx, qSelect, name).Scan(&g.ID, &g.Name)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return g, err
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO genres (name) VALUES (?)`, name)
	if err != nil {
		if isDuplicateKey(err) {
			// A plain read would reuse the snapshot that missed the row under
			// REPEATABLE READ; a locking read sees the committed winner.
			err = tx.QueryRowContext(ctx, genreLockedSelect, name).Scan(&g.ID, &g.Name)
			return g, err
		}
		return g, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return g, err
	}
	return model.Genre{ID: uint64(id), Name: name}, nil
}

// ListAll returns every genre ordered by name.
func (r *GenreRepo) ListAll(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// genreLink describes one join table: which table and which owner column.
type genreLink struct {
	table  string
	column string
}

var (
	venueGenres  = genreLink{table: "genre_venues", column: "venue_id"}
	artistGenres = genreLink{table: "genre_artists", column: "artist_id"}
)

// replaceTx swaps the genre set of one owner row for the given genres.
func (l genreLink) replaceTx(ctx context.Context, tx *sql.Tx, ownerID uint64, genres []model.Genre) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM `+l.table+` WHERE `+l.column+` = ?`, ownerID); err != nil {
		return err
	}
	q := `INSERT INTO ` + l.table + ` (genre_id, ` + l.column + `) VALUES (?, ?)`
	for _, g := range genres {
		if _, err := tx.ExecContext(ctx, q, g.ID, ownerID); err != nil {
			return err
		}
	}
	return nil
}

func (l genreLink) names(ctx context.Context, q interface {
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}, ownerID uint64) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT g.name FROM genres g
		 JOIN `+l.table+` j ON j.genre_id = g.id
		 WHERE j.`+l.column+` = ?
		 ORDER BY g.name`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// ListByVenue returns the genre names attached to a venue.
func (r *GenreRepo) ListByVenue(ctx context.Context, venueID uint64) ([]string, error) {
	return venueGenres.names(ctx, r.db, venueID)
}

// ListByArtist returns the genre names attached to an artist.
func (r *GenreRepo) ListByArtist(ctx context.Context, artistID uint64) ([]string, error) {
	return artistGenres.names(ctx, r.db, artistID)
}
