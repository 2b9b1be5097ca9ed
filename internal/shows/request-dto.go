package shows

import "time"

type CreateShowRequest struct {
	ArtistID  string    `json:"artist_id" binding:"required,uuid"`
	VenueID   string    `json:"venue_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
}
