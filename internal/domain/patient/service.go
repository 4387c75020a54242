package patient

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
	translator fhir.Translator[Patient, r4.Patient]
	logger     zerolog.Logger
}

func NewService(repo Repository, translator fhir.Translator[Patient, r4.Patient], logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		translator: translator,
		logger:     logger.With().Str("resource", "Patient").Logger(),
	}
}

// GetPatientByUUID returns (nil, nil) when the patient does not exist.
func (s *Service) GetPatientByUUID(ctx context.Context, uuid string) (*r4.Patient, error) {
	p, err := s.repo.GetByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug().Str("uuid", uuid).Msg("patient not found")
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return s.translator.ToFHIRResource(p), nil
}

// SearchPatients supports the name and gender parameters.
func (s *Service) SearchPatients(ctx context.Context, params map[string]string) ([]r4.Patient, error) {
	patients, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	s.logger.Debug().Int("count", len(patients)).Interface("params", params).Msg("patient search")
	return fhir.TranslateAll(s.translator, patients), nil
}
