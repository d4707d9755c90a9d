package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nickgiulioni1/offleash-api/internal/database"
	"github.com/nickgiulioni1/offleash-api/internal/models"
)

// ListFilter narrows and pages a List call. Zero values mean "no filter";
// a zero Limit falls back to the repository default.
type ListFilter struct {
	Query    string
	Strategy string
	Limit    int
	Offset   int
}

// Default and ceiling for List page sizes.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// AnalysisRepository defines the interface for analysis data access operations.
type AnalysisRepository interface {
	// Create inserts a new analysis and returns it with its generated
	// timestamps populated.
	Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error)

	// GetByID fetches a single analysis.
	// Returns nil, nil if no analysis is found (not an error).
	GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error)

	// List returns a page of analyses ordered by creation time, newest
	// first, plus the total count matching the filter.
	List(ctx context.Context, filter ListFilter) ([]models.Analysis, int, error)

	// Update overwrites an existing analysis.
	// Returns nil, nil if no analysis with that ID exists.
	Update(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error)

	// Delete removes an analysis. Returns false if nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// analysisRepository is the concrete implementation of AnalysisRepository.
type analysisRepository struct {
	db *database.Database
}

// NewAnalysisRepository creates a new instance of AnalysisRepository.
func NewAnalysisRepository(db *database.Database) AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

const analysisColumns = `id, name, strategy, payload, summary, version, created_at, updated_at`

func scanAnalysis(row pgx.Row) (*models.Analysis, error) {
	var a models.Analysis
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Strategy,
		&a.Payload,
		&a.Summary,
		&a.Version,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	query := `
		INSERT INTO analyses (id, name, strategy, payload, summary, version)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + analysisColumns

	id := analysis.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanAnalysis(r.db.Pool.QueryRow(ctx, query,
		id,
		analysis.Name,
		analysis.Strategy,
		analysis.Payload,
		analysis.Summary,
		analysis.Version,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert analysis %q: %w", analysis.Name, err)
	}

	return created, nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1`

	analysis, err := scanAnalysis(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		// No rows is not an error at the repository level.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query analysis %s: %w", id, err)
	}

	return analysis, nil
}

func (r *analysisRepository) List(ctx context.Context, filter ListFilter) ([]models.Analysis, int, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// Both filters are optional; empty values match everything.
	where := `WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		AND ($2 = '' OR strategy = $2)`

	countQuery := `SELECT count(*) FROM analyses ` + where

	var total int
	if err := r.db.Pool.QueryRow(ctx, countQuery, filter.Query, filter.Strategy).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	query := `SELECT ` + analysisColumns + ` FROM analyses ` + where + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Pool.Query(ctx, query, filter.Query, filter.Strategy, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	results := []models.Analysis{}
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		results = append(results, *analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating analysis rows: %w", err)
	}

	return results, total, nil
}

func (r *analysisRepository) Update(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	query := `
		UPDATE analyses
		SET name = $2, strategy = $3, payload = $4, summary = $5, version = $6, updated_at = now()
		WHERE id = $1
		RETURNING ` + analysisColumns

	updated, err := scanAnalysis(r.db.Pool.QueryRow(ctx, query,
		analysis.ID,
		analysis.Name,
		analysis.Strategy,
		analysis.Payload,
		analysis.Summary,
		analysis.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update analysis %s: %w", analysis.ID, err)
	}

	return updated, nil
}

func (r *analysisRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
