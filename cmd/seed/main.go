package main

import (
	"fmt"
	"log"
	"time"

	"stagebook/internal/artists"
	"stagebook/internal/shared/config"
	"stagebook/internal/shared/database"
	"stagebook/internal/shared/genres"
	"stagebook/internal/shows"
	"stagebook/internal/venues"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Stagebook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for browsing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"shows",
		"artists",
		"venues",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds venues, artists, and the shows connecting them
func (s *Seeder) SeedAll() error {
	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	artistIDs, err := s.SeedArtists()
	if err != nil {
		return fmt.Errorf("failed to seed artists: %w", err)
	}

	if err := s.SeedShows(artistIDs, venueIDs); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}

	return nil
}

func (s *Seeder) SeedVenues() (map[string]uuid.UUID, error) {
	fixtures := []venues.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             genres.Join([]string{"Jazz", "Reggae", "Classical", "Folk"}),
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       genres.Join([]string{"Classical", "R&B", "Hip-Hop"}),
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       genres.Join([]string{"Rock n Roll", "Jazz", "Classical", "Folk"}),
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
		},
	}

	ids := make(map[string]uuid.UUID, len(fixtures))
	for i := range fixtures {
		if err := s.db.PostgreSQL.Create(&fixtures[i]).Error; err != nil {
			return nil, err
		}
		ids[fixtures[i].Name] = fixtures[i].ID
		fmt.Printf("  Created venue: %s\n", fixtures[i].Name)
	}
	return ids, nil
}

func (s *Seeder) SeedArtists() (map[string]uuid.UUID, error) {
	fixtures := []artists.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             genres.Join([]string{"Rock n Roll"}),
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    genres.Join([]string{"Jazz"}),
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    genres.Join([]string{"Jazz", "Classical"}),
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}

	ids := make(map[string]uuid.UUID, len(fixtures))
	for i := range fixtures {
		if err := s.db.PostgreSQL.Create(&fixtures[i]).Error; err != nil {
			return nil, err
		}
		ids[fixtures[i].Name] = fixtures[i].ID
		fmt.Printf("  Created artist: %s\n", fixtures[i].Name)
	}
	return ids, nil
}

func (s *Seeder) SeedShows(artistIDs, venueIDs map[string]uuid.UUID) error {
	now := time.Now().UTC()
	fixtures := []shows.Show{
		{
			ArtistID:  artistIDs["Guns N Petals"],
			VenueID:   venueIDs["The Musical Hop"],
			StartTime: now.AddDate(0, -3, 0),
		},
		{
			ArtistID:  artistIDs["Matt Quevedo"],
			VenueID:   venueIDs["Park Square Live Music & Coffee"],
			StartTime: now.AddDate(0, -1, 0),
		},
		{
			ArtistID:  artistIDs["The Wild Sax Band"],
			VenueID:   venueIDs["Park Square Live Music & Coffee"],
			StartTime: now.AddDate(0, 1, 0),
		},
		{
			ArtistID:  artistIDs["The Wild Sax Band"],
			VenueID:   venueIDs["Park Square Live Music & Coffee"],
			StartTime: now.AddDate(0, 1, 7),
		},
	}

	for i := range fixtures {
		if err := s.db.PostgreSQL.Create(&fixtures[i]).Error; err != nil {
			return err
		}
		fmt.Printf("  Created show at %s\n", fixtures[i].StartTime.Format(time.RFC3339))
	}
	return nil
}
