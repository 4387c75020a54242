package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	r4 "github.com/zorgbijjou/golang-fhir-models/fhir-models/fhir"

	"github.com/ehr/fhir2/internal/platform/fhir"
)

type Service struct {
	repo       Repository
	translator fhir.Translator[Location, r4.Location]
	logger     zerolog.Logger
}

func NewService(repo Repository, translator fhir.Translator[Location, r4.Location], logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		translator: translator,
		logger:     logger.With().Str("resource", "Location").Logger(),
	}
}

// GetLocationByUUID returns (nil, nil) when no location has the UUID.
func (s *Service) GetLocationByUUID(ctx context.Context, uuid string) (*r4.Location, error) {
	loc, err := s.repo.GetByUUID(ctx, uuid)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug().Str("uuid", uuid).Msg("location not found")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return s.translator.ToFHIRResource(loc), nil
}

// SearchLocations returns every location matching params. An empty params
// map returns all locations.
func (s *Service) SearchLocations(ctx context.Context, params map[string]string) ([]r4.Location, error) {
	locs, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	s.logger.Debug().Int("count", len(locs)).Msg("location search")
	return fhir.TranslateAll(s.translator, locs), nil
}
