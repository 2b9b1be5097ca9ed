package shows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShowDetail is a show row joined with its artist and venue for the overview.
type ShowDetail struct {
	ShowID          uuid.UUID `gorm:"column:show_id"`
	VenueID         uuid.UUID `gorm:"column:venue_id"`
	ArtistID        uuid.UUID `gorm:"column:artist_id"`
	VenueName       string    `gorm:"column:venue_name"`
	ArtistName      string    `gorm:"column:artist_name"`
	ArtistImageLink string    `gorm:"column:artist_image_link"`
	StartTime       time.Time `gorm:"column:start_time"`
}

// Repository interface for show operations
type Repository interface {
	Create(ctx context.Context, show *Show) error
	ListWithDetails(ctx context.Context) ([]ShowDetail, error)
	ArtistExists(ctx context.Context, id uuid.UUID) (bool, error)
	VenueExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new show repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

// ListWithDetails returns every show joined with its artist and venue,
// in store default order.
func (r *repository) ListWithDetails(ctx context.Context) ([]ShowDetail, error) {
	var details []ShowDetail
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id AS show_id, shows.venue_id, shows.artist_id, " +
			"venues.name AS venue_name, artists.name AS artist_name, " +
			"artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Scan(&details).Error
	return details, err
}

func (r *repository) ArtistExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("artists").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) VenueExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("venues").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
