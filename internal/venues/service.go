package venues

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
	ListGrouped(ctx context.Context) ([]CityGroup, error)
	Search(ctx context.Context, term string) (*SearchResponse, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailResponse, error)
	GetVenueRecord(ctx context.Context, id uuid.UUID) (*VenueResponse, error)
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error)
	EditVenue(ctx context.Context, id uuid.UUID, req EditVenueRequest) (*VenueResponse, error)
	DeleteVenue(ctx context.Context, id uuid.UUID, cascade bool) error
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

// ListGrouped produces the venue listing grouped by distinct (city, state)
// pairs. Upcoming counts are evaluated against the request-time clock.
func (s *service) ListGrouped(ctx context.Context) ([]CityGroup, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	counts, err := s.repo.UpcomingShowCounts(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows: %w", err)
	}

	groups := make([]CityGroup, 0, len(locations))
	for _, loc := range locations {
		venues, err := s.repo.ListByLocation(ctx, loc.City, loc.State)
		if err != nil {
			return nil, fmt.Errorf("failed to list venues for %s, %s: %w", loc.City, loc.State, err)
		}
		if len(venues) == 0 {
			continue
		}

		summaries := make([]VenueSummary, len(venues))
		for i, v := range venues {
			summaries[i] = VenueSummary{
				ID:                 v.ID.String(),
				Name:               v.Name,
				UpcomingShowsCount: counts[v.ID],
			}
		}
		groups = append(groups, CityGroup{
			City:   loc.City,
			State:  loc.State,
			Venues: summaries,
		})
	}
	return groups, nil
}

// Search returns venues whose name contains the term, case-insensitive. An
// empty term matches everything.
func (s *service) Search(ctx context.Context, term string) (*SearchResponse, error) {
	venues, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	data := make([]VenueResponse, len(venues))
	for i, v := range venues {
		data[i] = v.ToResponse()
	}
	return &SearchResponse{Count: len(data), Data: data}, nil
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*VenueDetailResponse, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue", id.String())
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	engagements, err := s.repo.Engagements(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue shows: %w", err)
	}

	past, upcoming := schedule.Partition(engagements, s.now())

	detail := &VenueDetailResponse{
		VenueResponse:      venue.ToResponse(),
		PastShows:          toShowInfos(past),
		UpcomingShows:      toShowInfos(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

// GetVenueRecord returns the stored record as-is, for the edit form.
func (s *service) GetVenueRecord(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue", id.String())
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	resp := venue.ToResponse()
	return &resp, nil
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	venue := &Venue{
		Name:               name,
		City:               req.City,
		State:              req.State,
		Address:            req.Address,
		Phone:              req.Phone,
		Genres:             genres.Join(req.Genres),
		ImageLink:          req.ImageLink,
		FacebookLink:       req.FacebookLink,
		Website:            req.Website,
		SeekingTalent:      req.SeekingTalent,
		SeekingDescription: req.SeekingDescription,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	resp := venue.ToResponse()
	return &resp, nil
}

// EditVenue overwrites every editable field from the submitted record. The
// identifier and creation timestamp are never touched.
func (s *service) EditVenue(ctx context.Context, id uuid.UUID, req EditVenueRequest) (*VenueResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name", "name is required")
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("venue", id.String())
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	updates := map[string]interface{}{
		"name":                name,
		"city":                req.City,
		"state":               req.State,
		"address":             req.Address,
		"phone":               req.Phone,
		"genres":              genres.Join(req.Genres),
		"image_link":          req.ImageLink,
		"facebook_link":       req.FacebookLink,
		"website":             req.Website,
		"seeking_talent":      req.SeekingTalent,
		"seeking_description": req.SeekingDescription,
		"updated_at":          s.now(),
	}

	venue, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	resp := venue.ToResponse()
	return &resp, nil
}

// DeleteVenue removes a venue. While shows still reference the venue the
// delete is rejected unless cascade is set, in which case venue and shows go
// together. The guard and the delete share one transaction in the repository.
// Deleting an absent id succeeds with no effect.
func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID, cascade bool) error {
	if err := s.repo.Delete(ctx, id, cascade); err != nil {
		if errors.Is(err, apperrors.ErrConstraint) {
			return err
		}
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

func toShowInfos(engagements []schedule.Engagement) []ShowInfo {
	infos := make([]ShowInfo, len(engagements))
	for i, e := range engagements {
		infos[i] = ShowInfo{
			ArtistID:        e.CounterpartID.String(),
			ArtistName:      e.CounterpartName,
			ArtistImageLink: e.CounterpartImage,
			StartTime:       e.StartTime.Format(time.RFC3339),
		}
	}
	return infos
}
