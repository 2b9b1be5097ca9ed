package shows

import (
	"context"
	"fmt"
	"time"

	"stagebook/internal/shared/apperrors"

	"github.com/google/uuid"
)

type Service interface {
	CreateShow(ctx context.Context, req CreateShowRequest) (*ShowResponse, error)
	ListShows(ctx context.Context) ([]ShowResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateShow records a show after checking both foreign references. Nothing
// is written when either reference is missing.
func (s *service) CreateShow(ctx context.Context, req CreateShowRequest) (*ShowResponse, error) {
	artistID, err := uuid.Parse(req.ArtistID)
	if err != nil {
		return nil, apperrors.Validation("artist_id", "artist_id must be a valid id")
	}
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperrors.Validation("venue_id", "venue_id must be a valid id")
	}
	if req.StartTime.IsZero() {
		return nil, apperrors.Validation("start_time", "start_time is required")
	}

	exists, err := s.repo.ArtistExists(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to check artist: %w", err)
	}
	if !exists {
		return nil, apperrors.Constraint(fmt.Sprintf("artist with id %s does not exist", artistID))
	}

	exists, err = s.repo.VenueExists(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to check venue: %w", err)
	}
	if !exists {
		return nil, apperrors.Constraint(fmt.Sprintf("venue with id %s does not exist", venueID))
	}

	show := &Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: req.StartTime,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	resp := ShowResponse{
		ID:        show.ID.String(),
		ArtistID:  show.ArtistID.String(),
		VenueID:   show.VenueID.String(),
		StartTime: show.StartTime.Format(time.RFC3339),
	}
	return &resp, nil
}

func (s *service) ListShows(ctx context.Context) ([]ShowResponse, error) {
	details, err := s.repo.ListWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	responses := make([]ShowResponse, len(details))
	for i, d := range details {
		responses[i] = d.ToResponse()
	}
	return responses, nil
}
