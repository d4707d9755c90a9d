package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nickgiulioni1/offleash-api/internal/calculator"
	"github.com/nickgiulioni1/offleash-api/internal/logger"
	"github.com/nickgiulioni1/offleash-api/internal/models"
	"github.com/nickgiulioni1/offleash-api/internal/repository"
)

// DefaultAnalysisName is used when a save request omits the name.
const DefaultAnalysisName = "Untitled Analysis"

// Service-level errors
var (
	ErrAnalysisNotFound = errors.New("analysis not found")
	ErrInvalidStrategy  = errors.New("invalid strategy")
	ErrEmptyPayload     = errors.New("payload must not be empty")
)

// CreateAnalysisInput carries a save request. Payload is the full projection
// input document; Summary is the caller's snapshot of headline metrics.
type CreateAnalysisInput struct {
	Name     string
	Strategy string
	Payload  json.RawMessage
	Summary  json.RawMessage
	Version  *string
}

// UpdateAnalysisInput carries a partial update; nil fields are left as-is.
type UpdateAnalysisInput struct {
	Name     *string
	Strategy *string
	Payload  json.RawMessage
	Summary  json.RawMessage
	Version  *string
}

// AnalysisService defines the interface for saved-analysis business logic.
type AnalysisService interface {
	// Create validates and persists a new analysis.
	// Returns ErrInvalidStrategy or ErrEmptyPayload for bad input.
	Create(ctx context.Context, input CreateAnalysisInput) (*models.Analysis, error)

	// Get retrieves one analysis. Returns ErrAnalysisNotFound if missing.
	Get(ctx context.Context, id uuid.UUID) (*models.Analysis, error)

	// List returns a page of analyses plus the total matching count.
	List(ctx context.Context, filter repository.ListFilter) ([]models.Analysis, int, error)

	// Update applies a partial update to an existing analysis.
	// Returns ErrAnalysisNotFound if missing.
	Update(ctx context.Context, id uuid.UUID, input UpdateAnalysisInput) (*models.Analysis, error)

	// Delete removes an analysis. Returns ErrAnalysisNotFound if missing.
	Delete(ctx context.Context, id uuid.UUID) error
}

// analysisService is the concrete implementation of AnalysisService.
type analysisService struct {
	repo repository.AnalysisRepository
	log  *logger.Logger
}

// NewAnalysisService creates a new instance of AnalysisService.
func NewAnalysisService(repo repository.AnalysisRepository, log *logger.Logger) AnalysisService {
	return &analysisService{
		repo: repo,
		log:  log,
	}
}

func validateStrategy(strategy string) error {
	if !calculator.Strategy(strategy).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}
	return nil
}

func (s *analysisService) Create(ctx context.Context, input CreateAnalysisInput) (*models.Analysis, error) {
	if err := validateStrategy(input.Strategy); err != nil {
		s.log.Warn("Invalid strategy on create", map[string]interface{}{
			"strategy": input.Strategy,
		})
		return nil, err
	}
	if len(input.Payload) == 0 {
		return nil, ErrEmptyPayload
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultAnalysisName
	}

	analysis := &models.Analysis{
		Name:     name,
		Strategy: input.Strategy,
		Payload:  input.Payload,
		Summary:  input.Summary,
		Version:  input.Version,
	}

	created, err := s.repo.Create(ctx, analysis)
	if err != nil {
		s.log.Error("Failed to create analysis", err, map[string]interface{}{
			"name":     name,
			"strategy": input.Strategy,
		})
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	s.log.Info("Analysis created", map[string]interface{}{
		"analysis_id": created.ID.String(),
		"strategy":    created.Strategy,
	})

	return created, nil
}

func (s *analysisService) Get(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch analysis", err, map[string]interface{}{
			"analysis_id": id.String(),
		})
		return nil, fmt.Errorf("failed to fetch analysis: %w", err)
	}
	if analysis == nil {
		return nil, ErrAnalysisNotFound
	}
	return analysis, nil
}

func (s *analysisService) List(ctx context.Context, filter repository.ListFilter) ([]models.Analysis, int, error) {
	if filter.Strategy != "" {
		if err := validateStrategy(filter.Strategy); err != nil {
			return nil, 0, err
		}
	}

	analyses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list analyses", err, map[string]interface{}{
			"query":    filter.Query,
			"strategy": filter.Strategy,
		})
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}

	return analyses, total, nil
}

func (s *analysisService) Update(ctx context.Context, id uuid.UUID, input UpdateAnalysisInput) (*models.Analysis, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch analysis for update", err, map[string]interface{}{
			"analysis_id": id.String(),
		})
		return nil, fmt.Errorf("failed to fetch analysis: %w", err)
	}
	if existing == nil {
		return nil, ErrAnalysisNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			name = DefaultAnalysisName
		}
		existing.Name = name
	}
	if input.Strategy != nil {
		if err := validateStrategy(*input.Strategy); err != nil {
			return nil, err
		}
		existing.Strategy = *input.Strategy
	}
	if input.Payload != nil {
		existing.Payload = input.Payload
	}
	if input.Summary != nil {
		existing.Summary = input.Summary
	}
	if input.Version != nil {
		existing.Version = input.Version
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		s.log.Error("Failed to update analysis", err, map[string]interface{}{
			"analysis_id": id.String(),
		})
		return nil, fmt.Errorf("failed to update analysis: %w", err)
	}
	if updated == nil {
		// Deleted between fetch and update.
		return nil, ErrAnalysisNotFound
	}

	s.log.Info("Analysis updated", map[string]interface{}{
		"analysis_id": updated.ID.String(),
	})

	return updated, nil
}

func (s *analysisService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete analysis", err, map[string]interface{}{
			"analysis_id": id.String(),
		})
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if !deleted {
		return ErrAnalysisNotFound
	}

	s.log.Info("Analysis deleted", map[string]interface{}{
		"analysis_id": id.String(),
	})

	return nil
}
