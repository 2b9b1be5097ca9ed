package shows

import (
	"time"

	"stagebook/internal/artists"
	"stagebook/internal/venues"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show links exactly one artist to one venue at a start time. It has no
// identity beyond the join itself. The associations exist so the store
// enforces that both references resolve at insert time.
type Show struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ArtistID  uuid.UUID      `json:"artist_id" gorm:"type:uuid;not null;index"`
	VenueID   uuid.UUID      `json:"venue_id" gorm:"type:uuid;not null;index"`
	StartTime time.Time      `json:"start_time" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	Artist    artists.Artist `json:"-" gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Venue     venues.Venue   `json:"-" gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for GORM
func (Show) TableName() string {
	return "shows"
}

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
