package model

import "time"

// Show represents a single booking: one artist performing at one venue at
// a start time.  Both references must exist when the show is created.
//
// Fields:
//  ID        – primary key identifier.
//  StartTime – when the show begins (UTC).
//  ArtistID  – performing artist.
//  VenueID   – hosting venue.
type Show struct {
    ID        uint64    // shows.id
    StartTime time.Time // shows.start_time
    ArtistID  uint64    // shows.artist_id
    VenueID   uint64    // shows.venue_id
}

// ShowListing is a show joined with the names and images of its artist
// and venue, which is what every page that lists shows displays.
type ShowListing struct {
    ID              uint64
    StartTime       time.Time
    ArtistID        uint64
    ArtistName      string
    ArtistImageLink string
    VenueID         uint64
    VenueName       string
    VenueImageLink  string
}
