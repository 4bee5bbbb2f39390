// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// Entities and actions carried by ListingEvent.
const (
    EntityVenue  = "venue"
    EntityArtist = "artist"
    EntityShow   = "show"

    ActionCreated = "created"
    ActionUpdated = "updated"
    ActionDeleted = "deleted"
)

// ListingEvent is published after a venue, artist or show listing changes.
// It carries enough for an audit trail without querying the primary
// database.
type ListingEvent struct {
    Entity     string `json:"entity"`
    Action     string `json:"action"`
    ID         uint64 `json:"id"`
    Name       string `json:"name"`
    OccurredAt string `json:"occurred_at"`
}

// NewListingEvent stamps an event with the current UTC time in RFC 3339.
func NewListingEvent(entity, action string, id uint64, name string) ListingEvent {
    return ListingEvent{
        Entity:     entity,
        Action:     action,
        ID:         id,
        Name:       name,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
}
