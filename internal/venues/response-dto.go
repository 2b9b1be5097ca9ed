package venues

import "time"

type VenueResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VenueSummary is one venue inside a city/state group
type VenueSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	UpcomingShowsCount int    `json:"upcoming_shows_count"`
}

// CityGroup is one (city, state) pair with its venues
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type SearchResponse struct {
	Count int             `json:"count"`
	Data  []VenueResponse `json:"data"`
}

// ShowInfo is one show on a venue detail page, joined with its artist
type ShowInfo struct {
	ArtistID        string `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueDetailResponse is the venue record enriched with its show partitions
type VenueDetailResponse struct {
	VenueResponse
	PastShows          []ShowInfo `json:"past_shows"`
	UpcomingShows      []ShowInfo `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// FormResponse describes the create/edit form: the field list, the genre
// choices, and on edit the stored record being edited.
type FormResponse struct {
	Fields []string       `json:"fields"`
	Genres []string       `json:"genres"`
	Venue  *VenueResponse `json:"venue,omitempty"`
}
