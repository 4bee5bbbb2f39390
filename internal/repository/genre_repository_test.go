package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/venue-booking/internal/database"
	"github.com/iliyamo/venue-booking/internal/model"
)

func TestNormalizeGenreNames(t *testing.T) {
	got := NormalizeGenreNames([]string{" Jazz", "Blues", "", "Jazz", "  ", "Folk", "Blues "})
	assert.Equal(t, []string{"Jazz", "Blues", "Folk"}, got)
	assert.Empty(t, NormalizeGenreNames(nil))
}

func TestResolveTxReusesExistingRows(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	var first, second []model.Genre
	require.NoError(t, database.WithTx(ctx, r.db, func(tx *sql.Tx) (err error) {
		first, err = r.genres.ResolveTx(ctx, tx, []string{"Jazz", "Reggae", "Jazz"})
		return err
	}))
	require.NoError(t, database.WithTx(ctx, r.db, func(tx *sql.Tx) (err error) {
		second, err = r.genres.ResolveTx(ctx, tx, []string{"Reggae", "Swing", "Jazz"})
		return err
	}))

	require.Len(t, first, 2)
	require.Len(t, second, 3)
	assert.Equal(t, first[1].ID, second[0].ID, "Reggae must resolve to the same row")
	assert.Equal(t, first[0].ID, second[2].ID, "Jazz must resolve to the same row")
	assert.Equal(t, 3, r.count(t, "genres"))
}

func TestGenresAreSharedBetweenVenuesAndArtists(t *testing.T) {
	r := newRepos(t)
	r.mustVenue(t, "The Musical Hop", "San Francisco", "CA", "Jazz", "Reggae", " Jazz ")
	r.mustVenue(t, "Park Square", "San Francisco", "CA", "Jazz")
	r.mustArtist(t, "Guns N Petals", "Rock n Roll", "Jazz")

	all, err := r.genres.ListAll(context.Background())
	require.NoError(t, err)
	names := genreNamesOf(all)
	assert.Equal(t, []string{"Jazz", "Reggae", "Rock n Roll"}, names)
	assert.Equal(t, 3, r.count(t, "genre_venues"))
	assert.Equal(t, 2, r.count(t, "genre_artists"))
}

func TestIsDuplicateKey(t *testing.T) {
	r := newRepos(t)
	_, err := r.db.Exec(`INSERT INTO genres (name) VALUES ('Funk')`)
	require.NoError(t, err)
	_, err = r.db.Exec(`INSERT INTO genres (name) VALUES ('Funk')`)
	assert.True(t, isDuplicateKey(err))
	assert.False(t, isDuplicateKey(nil))
	assert.False(t, isDuplicateKey(sql.ErrNoRows))
}

// The sqlite test schema has no locking reads, so the duplicate-key
// fallback is checked by shape: same row as the plain lookup, read with a
// shared lock so it sees rows committed after the snapshot was taken.
func TestDuplicateRetryUsesLockingRead(t *testing.T) {
	assert.True(t, strings.HasPrefix(genreLockedSelect, "SELECT id, name FROM genres WHERE name = ?"))
	assert.True(t, strings.HasSuffix(genreLockedSelect, " FOR SHARE"))
}
