package artists

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stagebook/internal/shared/apperrors"
	"stagebook/internal/shared/genres"
	"stagebook/internal/shared/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	ListArtists(ctx context.Context) ([]ArtistResponse, error)
	Search(ctx context.Context, term string) (*SearchResponse, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*ArtistDetailResponse, error)
	GetArtistRecord(ctx context.Context, id uuid.UUID) (*ArtistResponse, error)
	CreateArtist(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error)
	EditArtist(ctx context.Context, id uuid.UUID, req EditArtistRequest) (*ArtistResponse, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock builds a service with a fixed clock, for tests.
func NewServiceWithClock(repo Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func (s *service) ListArtists(ctx context.Context) ([]ArtistResponse, error) {
	artists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	responses := make([]ArtistResponse, len(artists))
	for i, a := range artists {
		responses[i] = a.ToResponse()
	}
	return responses, nil
}

// Search returns artists whose name contains the term, case-insensitive. An
// empty term matches everything.
func (s *service) Search(ctx context.Context, term string) (*SearchResponse, error) {
	artists, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	data := make([]ArtistResponse, len(artists))
	for i, a := range artists {
		data[i] = a.ToResponse()
	}
	return &SearchResponse{Count: len(data), Data: data}, nil
}

func (s *service) GetArtist(ctx context.Context, id uuid.UUID) (*ArtistDetailResponse, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artist", id.String())
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	engagements, err := s.repo.Engagements(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load artist shows: %w", err)
	}

	past, upcoming := schedule.Partition(engagements, s.now())

	detail := &ArtistDetailResponse{
		ArtistResponse:     artist.ToResponse(),
		PastShows:          toShowInfos(past),
		UpcomingShows:      toShowInfos(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

// GetArtistRecord returns the stored record as-is, for the edit form.
func (s *service) GetArtistRecord(ctx context.Context, id uuid.UUID) (*ArtistResponse, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artist", id.String())
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	resp := artist.ToResponse()
	return &resp, nil
}

func (s *service) CreateArtist(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	artist := &Artist{
		Name:               name,
		City:               req.City,
		State:              req.State,
		Phone:              req.Phone,
		Genres:             genres.Join(req.Genres),
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingVenue:       req.SeekingVenue,
		SeekingDescription: req.SeekingDescription,
	}

	if err := s.repo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	resp := artist.ToResponse()
	return &resp, nil
}

// EditArtist overwrites every editable field from the submitted record. The
// identifier and creation timestamp are never touched.
func (s *service) EditArtist(ctx context.Context, id uuid.UUID, req EditArtistRequest) (*ArtistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("artist", id.String())
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}

	updates := map[string]interface{}{
		"name":                name,
		"city":                req.City,
		"state":               req.State,
		"phone":               req.Phone,
		"genres":              genres.Join(req.Genres),
		"image_link":          req.ImageLink,
		"facebook_link":       req.FacebookLink,
		"website":             req.Website,
		"seeking_venue":       req.SeekingVenue,
		"seeking_description": req.SeekingDescription,
		"updated_at":          s.now(),
	}

	artist, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	resp := artist.ToResponse()
	return &resp, nil
}

func toShowInfos(engagements []schedule.Engagement) []ShowInfo {
	infos := make([]ShowInfo, len(engagements))
	for i, e := range engagements {
		infos[i] = ShowInfo{
			VenueID:        e.CounterpartID.String(),
			VenueName:      e.CounterpartName,
			VenueImageLink: e.CounterpartImage,
			StartTime:      e.StartTime.Format(time.RFC3339),
		}
	}
	return infos
}
