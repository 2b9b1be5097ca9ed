package artists

type CreateArtistRequest struct {
	Name               string   `json:"name" binding:"required,min=1,max=255"`
	City               string   `json:"city" binding:"max=120"`
	State              string   `json:"state" binding:"max=120"`
	Phone              string   `json:"phone" binding:"max=120"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" binding:"omitempty,url"`
	Website            string   `json:"website" binding:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" binding:"max=500"`
}

// EditArtistRequest carries the full replacement record: every editable field
// is overwritten from what is submitted, never merged.
type EditArtistRequest struct {
	Name               string   `json:"name" binding:"required,min=1,max=255"`
	City               string   `json:"city" binding:"max=120"`
	State              string   `json:"state" binding:"max=120"`
	Phone              string   `json:"phone" binding:"max=120"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" binding:"omitempty,url"`
	Website            string   `json:"website" binding:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" binding:"max=500"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}
