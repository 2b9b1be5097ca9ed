package artists_test

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

var fixedNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (artists.Service, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t, &venues.Venue{}, &artists.Artist{}, &shows.Show{})
	repo := artists.NewRepository(db)
	return artists.NewServiceWithClock(repo, func() time.Time { return fixedNow }), db
}

func TestCreateArtist(t *testing.T) {
	svc, _ := setupService(t)

	created, err := svc.CreateArtist(context.Background(), artists.CreateArtistRequest{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows in the Bay Area!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Guns N Petals", created.Name)
	assert.Equal(t, []string{"Rock n Roll"}, created.Genres)
	assert.True(t, created.SeekingVenue)
}

func TestCreateArtistBlankName(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateArtist(context.Background(), artists.CreateArtistRequest{Name: " "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestListArtists(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"The Wild Sax Band", "Guns N Petals", "Matt Quevedo"} {
		_, err := svc.CreateArtist(ctx, artists.CreateArtistRequest{Name: name})
		require.NoError(t, err)
	}

	listed, err := svc.ListArtists(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Guns N Petals", listed[0].Name)
	assert.Equal(t, "Matt Quevedo", listed[1].Name)
	assert.Equal(t, "The Wild Sax Band", listed[2].Name)
}

func TestSearchArtists(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"The Wild Sax Band", "Guns N Petals", "Matt Quevedo"} {
		_, err := svc.CreateArtist(ctx, artists.CreateArtistRequest{Name: name})
		require.NoError(t, err)
	}

	result, err := svc.Search(ctx, "SAX")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "The Wild Sax Band", result.Data[0].Name)

	result, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)

	result, err = svc.Search(ctx, "opera")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)
}

func TestGetArtistPartitions(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateArtist(ctx, artists.CreateArtistRequest{Name: "The Wild Sax Band"})
	require.NoError(t, err)
	artistID := uuid.MustParse(created.ID)

	venue := &venues.Venue{Name: "Park Square Live Music & Coffee", ImageLink: "https://example.com/square.jpg"}
	require.NoError(t, db.Create(venue).Error)

	fixtures := []shows.Show{
		{ArtistID: artistID, VenueID: venue.ID, StartTime: fixedNow.AddDate(0, -2, 0)},
		{ArtistID: artistID, VenueID: venue.ID, StartTime: fixedNow.AddDate(0, 1, 0)},
		{ArtistID: artistID, VenueID: venue.ID, StartTime: fixedNow.AddDate(0, 2, 0)},
	}
	for i := range fixtures {
		require.NoError(t, db.Create(&fixtures[i]).Error)
	}

	detail, err := svc.GetArtist(ctx, artistID)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	require.Len(t, detail.UpcomingShows, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", detail.UpcomingShows[0].VenueName)
	assert.Equal(t, "https://example.com/square.jpg", detail.UpcomingShows[0].VenueImageLink)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, fixedNow.AddDate(0, -2, 0).Format(time.RFC3339), detail.PastShows[0].StartTime)
}

func TestGetArtistNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetArtist(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEditArtistOverwritesEverything(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateArtist(ctx, artists.CreateArtistRequest{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: true,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	edited, err := svc.EditArtist(ctx, id, artists.EditArtistRequest{
		Name:   "Guns N Petals Revival",
		City:   "Oakland",
		State:  "CA",
		Genres: []string{"Jazz"},
	})
	require.NoError(t, err)

	// Omitted fields are cleared, not merged
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, "Guns N Petals Revival", edited.Name)
	assert.Equal(t, "Oakland", edited.City)
	assert.Empty(t, edited.Phone)
	assert.Equal(t, []string{"Jazz"}, edited.Genres)
	assert.False(t, edited.SeekingVenue)
}

func TestEditArtistNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.EditArtist(context.Background(), uuid.New(), artists.EditArtistRequest{Name: "Anyone"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
