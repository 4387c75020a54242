package servicerequest

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
	translator fhir.Translator[TestOrder, r4.ServiceRequest]
	logger     zerolog.Logger
}

func NewService(repo Repository, translator fhir.Translator[TestOrder, r4.ServiceRequest], logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		translator: translator,
		logger:     logger.With().Str("resource", "ServiceRequest").Logger(),
	}
}

// GetServiceRequestByUUID returns (nil, nil) when no order has the UUID.
func (s *Service) GetServiceRequestByUUID(ctx context.Context, uuid string) (*r4.ServiceRequest, error) {
	o, err := s.repo.GetByUUID(ctx, uuid)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Debug().Str("uuid", uuid).Msg("test order not found")
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get service request: %w", err)
	}
	return s.translator.ToFHIRResource(o), nil
}

func (s *Service) GetAllServiceRequests(ctx context.Context) ([]r4.ServiceRequest, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	return fhir.TranslateAll(s.translator, orders), nil
}
