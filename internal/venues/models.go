package venues

import (
	"time"

	"stagebook/internal/shared/genres"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name               string    `json:"name" gorm:"not null;size:255"`
	City               string    `json:"city" gorm:"size:120;index:idx_venues_location"`
	State              string    `json:"state" gorm:"size:120;index:idx_venues_location"`
	Address            string    `json:"address" gorm:"size:500"`
	Phone              string    `json:"phone" gorm:"size:120"`
	Genres             string    `json:"-" gorm:"size:500"` // ordered list, comma-joined
	ImageLink          string    `json:"image_link" gorm:"size:500"`
	FacebookLink       string    `json:"facebook_link" gorm:"size:500"`
	Website            string    `json:"website" gorm:"size:500"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description" gorm:"size:500"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Venue) TableName() string {
	return "venues"
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// ToResponse converts a Venue to its response form
func (v *Venue) ToResponse() VenueResponse {
	return VenueResponse{
		ID:                 v.ID.String(),
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             genres.Split(v.Genres),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
