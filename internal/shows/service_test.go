package shows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stagebook/internal/artists"
	"stagebook/internal/shared/apperrors"
	"stagebook/internal/shared/testutil"
	"stagebook/internal/shows"
	"stagebook/internal/venues"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (shows.Service, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t, &venues.Venue{}, &artists.Artist{}, &shows.Show{})
	return shows.NewService(shows.NewRepository(db)), db
}

func seedArtist(t *testing.T, db *gorm.DB, name string) *artists.Artist {
	t.Helper()
	a := &artists.Artist{Name: name, ImageLink: "https://example.com/" + name + ".jpg"}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedVenue(t *testing.T, db *gorm.DB, name string) *venues.Venue {
	t.Helper()
	v := &venues.Venue{Name: name, City: "San Francisco", State: "CA"}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestCreateShowAndList(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	artist := seedArtist(t, db, "Guns N Petals")
	venue := seedVenue(t, db, "The Musical Hop")
	startTime := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	created, err := svc.CreateShow(ctx, shows.CreateShowRequest{
		ArtistID:  artist.ID.String(),
		VenueID:   venue.ID.String(),
		StartTime: startTime,
	})
	require.NoError(t, err)
	assert.Equal(t, artist.ID.String(), created.ArtistID)
	assert.Equal(t, venue.ID.String(), created.VenueID)
	assert.Equal(t, "2026-06-15T20:00:00Z", created.StartTime)

	listed, err := svc.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Guns N Petals", listed[0].ArtistName)
	assert.Equal(t, "The Musical Hop", listed[0].VenueName)
	assert.Equal(t, artist.ImageLink, listed[0].ArtistImageLink)
	assert.Equal(t, "2026-06-15T20:00:00Z", listed[0].StartTime)
}

func TestCreateShowMissingArtist(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	venue := seedVenue(t, db, "The Musical Hop")

	_, err := svc.CreateShow(ctx, shows.CreateShowRequest{
		ArtistID:  uuid.NewString(),
		VenueID:   venue.ID.String(),
		StartTime: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConstraint))

	// Nothing was written
	var count int64
	require.NoError(t, db.Table("shows").Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateShowMissingVenue(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	artist := seedArtist(t, db, "Matt Quevedo")

	_, err := svc.CreateShow(ctx, shows.CreateShowRequest{
		ArtistID:  artist.ID.String(),
		VenueID:   uuid.NewString(),
		StartTime: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConstraint))
}

func TestCreateShowValidation(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	artist := seedArtist(t, db, "Matt Quevedo")
	venue := seedVenue(t, db, "The Dueling Pianos Bar")

	tests := []struct {
		name string
		req  shows.CreateShowRequest
	}{
		{
			name: "malformed artist id",
			req: shows.CreateShowRequest{
				ArtistID:  "not-a-uuid",
				VenueID:   venue.ID.String(),
				StartTime: time.Now(),
			},
		},
		{
			name: "malformed venue id",
			req: shows.CreateShowRequest{
				ArtistID:  artist.ID.String(),
				VenueID:   "not-a-uuid",
				StartTime: time.Now(),
			},
		},
		{
			name: "zero start time",
			req: shows.CreateShowRequest{
				ArtistID: artist.ID.String(),
				VenueID:  venue.ID.String(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateShow(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestStoreRejectsOrphanShow(t *testing.T) {
	_, db := setupService(t)

	// The foreign keys reject a direct insert that bypasses the service
	orphan := shows.Show{
		ArtistID:  uuid.New(),
		VenueID:   uuid.New(),
		StartTime: time.Now().Add(24 * time.Hour),
	}
	require.Error(t, db.Create(&orphan).Error)

	var count int64
	require.NoError(t, db.Table("shows").Count(&count).Error)
	assert.Zero(t, count)
}

func TestStoreRejectsShowWithMissingVenue(t *testing.T) {
	_, db := setupService(t)

	artist := seedArtist(t, db, "Matt Quevedo")
	orphan := shows.Show{
		ArtistID:  artist.ID,
		VenueID:   uuid.New(),
		StartTime: time.Now().Add(24 * time.Hour),
	}
	require.Error(t, db.Create(&orphan).Error)
}

func TestListShowsEmpty(t *testing.T) {
	svc, _ := setupService(t)

	listed, err := svc.ListShows(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}
