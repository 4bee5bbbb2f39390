package model

// Artist represents a performer who can be booked for shows.  It mirrors
// the `artists` table; Genres is filled from `genre_artists`.
type Artist struct {
    ID                 uint64   // artists.id
    Name               string   // artists.name
    City               string   // artists.city
    State              string   // artists.state
    Phone              string   // artists.phone
    ImageLink          string   // artists.image_link
    FacebookLink       string   // artists.facebook_link
    WebsiteLink        string   // artists.website_link
    LookingForVenue    bool     // artists.looking_for_venue
    SeekingDescription string   // artists.seeking_description
    Genres             []string // genre names via genre_artists
}

// ArtistSummary is the compact row used on list and search pages.
type ArtistSummary struct {
    ID               uint64
    Name             string
    NumUpcomingShows int
}
