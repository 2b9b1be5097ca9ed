package artists

import "time"

type ArtistResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type SearchResponse struct {
	Count int              `json:"count"`
	Data  []ArtistResponse `json:"data"`
}

// ShowInfo is one show on an artist detail page, joined with its venue
type ShowInfo struct {
	VenueID        string `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistDetailResponse is the artist record enriched with its show partitions
type ArtistDetailResponse struct {
	ArtistResponse
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// FormResponse describes the create/edit form: the field list, the genre
// choices, and on edit the stored record being edited.
type FormResponse struct {
	Fields []string        `json:"fields"`
	Genres []string        `json:"genres"`
	Artist *ArtistResponse `json:"artist,omitempty"`
}
