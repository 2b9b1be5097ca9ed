package venues_test

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

func setupService(t *testing.T) (venues.Service, *gorm.DB) {
	t.Helper()
	db := testutil.OpenDB(t, &venues.Venue{}, &artists.Artist{}, &shows.Show{})
	repo := venues.NewRepository(db)
	return venues.NewServiceWithClock(repo, func() time.Time { return fixedNow }), db
}

func TestCreateVenue(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name:               "  The Musical Hop  ",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Genres:             []string{"Jazz", "Reggae", "Classical"},
		SeekingTalent:      true,
		SeekingDescription: "Looking for a local artist.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "The Musical Hop", created.Name)
	assert.Equal(t, []string{"Jazz", "Reggae", "Classical"}, created.Genres)
	assert.True(t, created.SeekingTalent)
}

func TestCreateVenueBlankName(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.CreateVenue(context.Background(), venues.CreateVenueRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestGetVenueNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetVenue(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetVenuePartitions(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
	})
	require.NoError(t, err)
	venueID := uuid.MustParse(created.ID)

	artist := &artists.Artist{Name: "The Wild Sax Band"}
	require.NoError(t, db.Create(artist).Error)

	fixtures := []shows.Show{
		{ArtistID: artist.ID, VenueID: venueID, StartTime: fixedNow.AddDate(0, -2, 0)},
		{ArtistID: artist.ID, VenueID: venueID, StartTime: fixedNow},
		{ArtistID: artist.ID, VenueID: venueID, StartTime: fixedNow.AddDate(0, 1, 0)},
	}
	for i := range fixtures {
		require.NoError(t, db.Create(&fixtures[i]).Error)
	}

	detail, err := svc.GetVenue(ctx, venueID)
	require.NoError(t, err)

	// The show at exactly the evaluation instant lands in upcoming
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	require.Len(t, detail.UpcomingShows, 2)
	assert.Equal(t, "The Wild Sax Band", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, fixedNow.Format(time.RFC3339), detail.UpcomingShows[1].StartTime)
}

func TestListGrouped(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	hop, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
	})
	require.NoError(t, err)
	_, err = svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
	})
	require.NoError(t, err)
	_, err = svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name: "The Dueling Pianos Bar", City: "New York", State: "NY",
	})
	require.NoError(t, err)

	artist := &artists.Artist{Name: "Guns N Petals"}
	require.NoError(t, db.Create(artist).Error)
	show := shows.Show{
		ArtistID:  artist.ID,
		VenueID:   uuid.MustParse(hop.ID),
		StartTime: fixedNow.AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&show).Error)

	groups, err := svc.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "New York", groups[0].City)
	require.Len(t, groups[0].Venues, 1)
	assert.Equal(t, 0, groups[0].Venues[0].UpcomingShowsCount)

	assert.Equal(t, "San Francisco", groups[1].City)
	require.Len(t, groups[1].Venues, 2)
	assert.Equal(t, "The Musical Hop", groups[1].Venues[1].Name)
	assert.Equal(t, 1, groups[1].Venues[1].UpcomingShowsCount)
}

func TestEditVenueOverwritesEverything(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Genres:             []string{"Jazz", "Reggae"},
		SeekingTalent:      true,
		SeekingDescription: "Call us.",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	edited, err := svc.EditVenue(ctx, id, venues.EditVenueRequest{
		Name:   "The Musical Hop Annex",
		City:   "Oakland",
		State:  "CA",
		Genres: []string{"Folk"},
	})
	require.NoError(t, err)

	// Omitted fields are cleared, not merged
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, "The Musical Hop Annex", edited.Name)
	assert.Equal(t, "Oakland", edited.City)
	assert.Empty(t, edited.Phone)
	assert.Equal(t, []string{"Folk"}, edited.Genres)
	assert.False(t, edited.SeekingTalent)
	assert.Empty(t, edited.SeekingDescription)
	assert.WithinDuration(t, created.CreatedAt, edited.CreatedAt, time.Second)
}

func TestEditVenueNotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.EditVenue(context.Background(), uuid.New(), venues.EditVenueRequest{Name: "Anything"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestDeleteVenue(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{Name: "The Musical Hop"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.DeleteVenue(ctx, id, false))

	var count int64
	require.NoError(t, db.Table("venues").Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteVenueAbsentIsNoOp(t *testing.T) {
	svc, _ := setupService(t)

	assert.NoError(t, svc.DeleteVenue(context.Background(), uuid.New(), false))
}

func TestDeleteVenueWithShows(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{Name: "The Musical Hop"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	artist := &artists.Artist{Name: "Guns N Petals"}
	require.NoError(t, db.Create(artist).Error)
	show := shows.Show{ArtistID: artist.ID, VenueID: id, StartTime: fixedNow.AddDate(0, 1, 0)}
	require.NoError(t, db.Create(&show).Error)

	// Referenced venue is protected until the caller opts into cascade
	err = svc.DeleteVenue(ctx, id, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConstraint))

	// The rejected delete leaves both rows untouched
	var venueCount, showCount int64
	require.NoError(t, db.Table("venues").Count(&venueCount).Error)
	require.NoError(t, db.Table("shows").Count(&showCount).Error)
	assert.EqualValues(t, 1, venueCount)
	assert.EqualValues(t, 1, showCount)

	require.NoError(t, svc.DeleteVenue(ctx, id, true))

	require.NoError(t, db.Table("venues").Count(&venueCount).Error)
	require.NoError(t, db.Table("shows").Count(&showCount).Error)
	assert.Zero(t, venueCount)
	assert.Zero(t, showCount)
}

func TestSearchService(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.CreateVenue(ctx, venues.CreateVenueRequest{Name: "Jazz Club"})
	require.NoError(t, err)
	_, err = svc.CreateVenue(ctx, venues.CreateVenueRequest{Name: "The Dueling Pianos Bar"})
	require.NoError(t, err)

	result, err := svc.Search(ctx, "jazz")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Jazz Club", result.Data[0].Name)
}
