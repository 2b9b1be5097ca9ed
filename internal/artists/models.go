package artists

import (
	"time"

	"stagebook/internal/shared/genres"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string    `json:"name" gorm:"not null;size:255"`
	City               string    `json:"city" gorm:"size:120"`
	State              string    `json:"state" gorm:"size:120"`
	Phone              string    `json:"phone" gorm:"size:120"`
	Genres             string    `json:"-" gorm:"size:500"` // ordered list, comma-joined
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description" gorm:"size:500"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Artist) TableName() string {
	return "artists"
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ToResponse converts an Artist to its response form
func (a *Artist) ToResponse() ArtistResponse {
	return ArtistResponse{
		ID:                 a.ID.String(),
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             genres.Split(a.Genres),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
