package artists

import (
	"context"
	"strings"

	"stagebook/internal/shared/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for artist operations
type Repository interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*Artist, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Artist, error)
	List(ctx context.Context) ([]Artist, error)
	Search(ctx context.Context, term string) ([]Artist, error)
	Engagements(ctx context.Context, id uuid.UUID) ([]schedule.Engagement, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new artist repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, artist *Artist) error {
	return r.db.WithContext(ctx).Create(artist).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Artist, error) {
	var artist Artist
	err := r.db.WithContext(ctx).First(&artist, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Artist, error) {
	var artist Artist
	if err := r.db.WithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&artist).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *repository) List(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&artists).Error
	return artists, err
}

// Search matches artist names case-insensitively as a substring. An empty
// term matches every artist.
func (r *repository) Search(ctx context.Context, term string) ([]Artist, error) {
	var artists []Artist
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&artists).Error
	return artists, err
}

// Engagements returns the artist's shows joined with each show's venue,
// newest first.
func (r *repository) Engagements(ctx context.Context, id uuid.UUID) ([]schedule.Engagement, error) {
	var engagements []schedule.Engagement
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.venue_id AS counterpart_id, venues.name AS counterpart_name, " +
			"venues.image_link AS counterpart_image, shows.start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", id).
		Order("shows.start_time DESC").
		Scan(&engagements).Error
	return engagements, err
}
