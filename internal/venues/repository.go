package venues

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stagebook/internal/shared/apperrors"
	"stagebook/internal/shared/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is one distinct (city, state) pair
type Location struct {
	City  string
	State string
}

// Repository interface for venue operations
type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error)
	Delete(ctx context.Context, id uuid.UUID, cascade bool) error
	Search(ctx context.Context, term string) ([]Venue, error)
	ListLocations(ctx context.Context) ([]Location, error)
	ListByLocation(ctx context.Context, city, state string) ([]Venue, error)
	UpcomingShowCounts(ctx context.Context, now time.Time) (map[uuid.UUID]int, error)
	Engagements(ctx context.Context, id uuid.UUID) ([]schedule.Engagement, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new venue repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&venue).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// Delete removes a venue inside one transaction. Without cascade the delete is
// rejected while shows still reference the venue; with cascade the shows go
// first so the foreign keys stay satisfied. Deleting an absent id is a no-op.
func (r *repository) Delete(ctx context.Context, id uuid.UUID, cascade bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cascade {
			if err := tx.Exec("DELETE FROM shows WHERE venue_id = ?", id).Error; err != nil {
				return err
			}
		} else {
			var count int64
			if err := tx.Table("shows").Where("venue_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return apperrors.Constraint(
					fmt.Sprintf("venue has %d shows; pass cascade=true to delete them as well", count))
			}
		}
		return tx.Delete(&Venue{}, "id = ?", id).Error
	})
}

// Search matches venue names case-insensitively as a substring. An empty term
// matches every venue.
func (r *repository) Search(ctx context.Context, term string) ([]Venue, error) {
	var venues []Venue
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&venues).Error
	return venues, err
}

// ListLocations returns the distinct (city, state) pairs that have venues
func (r *repository) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.db.WithContext(ctx).
		Model(&Venue{}).
		Distinct("city", "state").
		Order("city ASC, state ASC").
		Find(&locations).Error
	return locations, err
}

func (r *repository) ListByLocation(ctx context.Context, city, state string) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Where("city = ? AND state = ?", city, state).
		Order("name ASC").
		Find(&venues).Error
	return venues, err
}

// UpcomingShowCounts returns, per venue, the number of shows starting at or
// after now.
func (r *repository) UpcomingShowCounts(ctx context.Context, now time.Time) (map[uuid.UUID]int, error) {
	var rows []struct {
		VenueID uuid.UUID `gorm:"column:venue_id"`
		Count   int       `gorm:"column:count"`
	}
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("venue_id, COUNT(*) AS count").
		Where("start_time >= ?", now).
		Group("venue_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.VenueID] = row.Count
	}
	return counts, nil
}

// Engagements returns the venue's shows joined with each show's artist,
// newest first.
func (r *repository) Engagements(ctx context.Context, id uuid.UUID) ([]schedule.Engagement, error) {
	var engagements []schedule.Engagement
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.artist_id AS counterpart_id, artists.name AS counterpart_name, " +
			"artists.image_link AS counterpart_image, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", id).
		Order("shows.start_time DESC").
		Scan(&engagements).Error
	return engagements, err
}
