package shows

import "time"

// ShowResponse is one row of the shows overview. The start time is rendered
// as text for display.
type ShowResponse struct {
	ID              string `json:"id"`
	VenueID         string `json:"venue_id"`
	ArtistID        string `json:"artist_id"`
	VenueName       string `json:"venue_name"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// FormResponse describes the blank create-show form
type FormResponse struct {
	Fields []string `json:"fields"`
}

func (d ShowDetail) ToResponse() ShowResponse {
	return ShowResponse{
		ID:              d.ShowID.String(),
		VenueID:         d.VenueID.String(),
		ArtistID:        d.ArtistID.String(),
		VenueName:       d.VenueName,
		ArtistName:      d.ArtistName,
		ArtistImageLink: d.ArtistImageLink,
		StartTime:       d.StartTime.Format(time.RFC3339),
	}
}
