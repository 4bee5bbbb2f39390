package model

import (
    "sort"
    "time"
)

// Schedule splits the shows of a venue or artist around the current time.
type Schedule struct {
    Past     []ShowListing
    Upcoming []ShowListing
}

// PastCount and UpcomingCount are used by the detail templates.
func (s Schedule) PastCount() int     { return len(s.Past) }
func (s Schedule) UpcomingCount() int { return len(s.Upcoming) }

// PartitionShows returns the shows starting strictly after now as upcoming
// and all others as past.  Both halves are ordered by start time.
func PartitionShows(shows []ShowListing, now time.Time) Schedule {
    sorted := make([]ShowListing, len(shows))
    copy(sorted, shows)
    sort.SliceStable(sorted, func(i, j int) bool {
        return sorted[i].StartTime.Before(sorted[j].StartTime)
    })
    s := Schedule{Past: []ShowListing{}, Upcoming: []ShowListing{}}
    for _, sh := range sorted {
        if sh.StartTime.After(now) {
            s.Upcoming = append(s.Upcoming, sh)
        } else {
            s.Past = append(s.Past, sh)
        }
    }
    return s
}

// Area is one city/state bucket on the venues page.
type Area struct {
    City   string
    State  string
    Venues []VenueSummary
}

// GroupByArea buckets venues by (state, city).  Areas are ordered by state
// then city and the venues inside an area by name then id.
func GroupByArea(venues []VenueSummary) []Area {
    type key struct{ state, city string }
    idx := map[key]int{}
    var areas []Area
    for _, v := range venues {
        k := key{v.State, v.City}
        i, ok := idx[k]
        if !ok {
            i = len(areas)
            idx[k] = i
            areas = append(areas, Area{City: v.City, State: v.State})
        }
        areas[i].Venues = append(areas[i].Venues, v)
    }
    sort.Slice(areas, func(i, j int) bool {
        if areas[i].State != areas[j].State {
            return areas[i].State < areas[j].State
        }
        return areas[i].City < areas[j].City
    })
    for _, a := range areas {
        sort.Slice(a.Venues, func(i, j int) bool {
            if a.Venues[i].Name != a.Venues[j].Name {
                return a.Venues[i].Name < a.Venues[j].Name
            }
            return a.Venues[i].ID < a.Venues[j].ID
        })
    }
    return areas
}
