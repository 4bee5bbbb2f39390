package model

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestPartitionShows(t *testing.T) {
    now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
    shows := []ShowListing{
        {ID: 1, StartTime: now.Add(48 * time.Hour)},
        {ID: 2, StartTime: now.Add(-48 * time.Hour)},
        {ID: 3, StartTime: now},
        {ID: 4, StartTime: now.Add(time.Hour)},
        {ID: 5, StartTime: now.Add(-time.Hour)},
    }

    s := PartitionShows(shows, now)

    ids := func(ls []ShowListing) []uint64 {
        out := []uint64{}
        for _, l := range ls {
            out = append(out, l.ID)
        }
        return out
    }
    assert.Equal(t, []uint64{4, 1}, ids(s.Upcoming))
    assert.Equal(t, []uint64{2, 5, 3}, ids(s.Past), "a show starting exactly now is past")
    assert.Equal(t, 2, s.UpcomingCount())
    assert.Equal(t, 3, s.PastCount())
    assert.Equal(t, uint64(1), shows[0].ID, "input must not be reordered")
}

func TestPartitionShowsEmpty(t *testing.T) {
    s := PartitionShows(nil, time.Now())
    assert.NotNil(t, s.Past)
    assert.NotNil(t, s.Upcoming)
    assert.Zero(t, s.PastCount())
    assert.Zero(t, s.UpcomingCount())
}

func TestGroupByArea(t *testing.T) {
    venues := []VenueSummary{
        {ID: 3, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
        {ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
        {ID: 2, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
        {ID: 4, Name: "Blue Note", City: "Oakland", State: "CA"},
    }

    areas := GroupByArea(venues)

    if assert.Len(t, areas, 3) {
        assert.Equal(t, "Oakland", areas[0].City)
        assert.Equal(t, "San Francisco", areas[1].City)
        assert.Equal(t, "NY", areas[2].State)
        if assert.Len(t, areas[1].Venues, 2) {
            assert.Equal(t, uint64(2), areas[1].Venues[0].ID)
            assert.Equal(t, 1, areas[1].Venues[0].NumUpcomingShows)
            assert.Equal(t, uint64(1), areas[1].Venues[1].ID)
        }
    }
}
