package model

// Venue represents a location that can host shows.  A venue is tagged
// with zero or more shared genres and hosts many shows.  This struct
// corresponds to a row in the `venues` table; Genres is filled from
// the `genre_venues` join table.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name, searched case-insensitively.
//  City, State        – location; venues are grouped by these on the list page.
//  Address            – street address.
//  Phone              – contact phone (optional).
//  ImageLink          – picture URL (optional).
//  FacebookLink       – facebook page URL (optional).
//  WebsiteLink        – website URL (optional).
//  LookingForTalent   – whether the venue is seeking artists.
//  SeekingDescription – free text shown when LookingForTalent is set.
type Venue struct {
    ID                 uint64   // venues.id
    Name               string   // venues.name
    City               string   // venues.city
    State              string   // venues.state
    Address            string   // venues.address
    Phone              string   // venues.phone
    ImageLink          string   // venues.image_link
    FacebookLink       string   // venues.facebook_link
    WebsiteLink        string   // venues.website_link
    LookingForTalent   bool     // venues.looking_for_talent
    SeekingDescription string   // venues.seeking_description
    Genres             []string // genre names via genre_venues
}

// VenueSummary is the compact row used on list and search pages.
type VenueSummary struct {
    ID               uint64
    Name             string
    City             string
    State            string
    NumUpcomingShows int
}
