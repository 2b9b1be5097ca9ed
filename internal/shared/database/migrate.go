package database

import (
	"stagebook/internal/artists"
	"stagebook/internal/shows"
	"stagebook/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.Venue{},
		&artists.Artist{},
		&shows.Show{},
	)
}
