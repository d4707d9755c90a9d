package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nickgiulioni1/offleash-api/internal/calculator"
	"github.com/nickgiulioni1/offleash-api/internal/logger"
)

// Projection horizon bounds, in months.
const (
	MinProjectionMonths = 1
	MaxProjectionMonths = 600
)

// Service-level errors
var (
	ErrInvalidMonths     = errors.New("months must be between 1 and 600")
	ErrInvalidLoanTerm   = errors.New("loan term must be at least 1 year")
	ErrInvalidPrice      = errors.New("purchase price must be positive")
	ErrInvalidRehabGrade = errors.New("invalid rehab grade")
	ErrUnknownRehabItem  = errors.New("unknown rehab item")
)

// ProjectionService defines the interface for running deal projections.
type ProjectionService interface {
	// BuyHold runs a buy-and-hold projection.
	// Returns ErrInvalidMonths, ErrInvalidLoanTerm, or ErrInvalidPrice for
	// out-of-range inputs.
	BuyHold(ctx context.Context, inputs calculator.BuyHoldInputs) (*calculator.BuyHoldOutputs, error)

	// BRRRR runs a bridge-then-refinance projection.
	BRRRR(ctx context.Context, inputs calculator.BRRRRInputs) (*calculator.BRRRRResult, error)

	// Flip runs the simple flip projection with flat financing costs.
	Flip(ctx context.Context, inputs calculator.FlipInputs) (*calculator.FlipResult, error)

	// FlipDetailed runs the flip projection with incremental bridge draws
	// and rent-offset carrying costs.
	FlipDetailed(ctx context.Context, inputs calculator.FlipInputs) (*calculator.FlipDetailedResult, error)

	// RehabCatalog returns the built-in rehab line-item catalog.
	RehabCatalog(ctx context.Context) []calculator.RehabItem

	// EstimateRehab prices a set of catalog selections at the given finish
	// grade. Returns ErrInvalidRehabGrade or ErrUnknownRehabItem for bad
	// inputs.
	EstimateRehab(ctx context.Context, selections []calculator.RehabSelection, grade calculator.RehabClass) (*calculator.RehabTotalResult, error)
}

// projectionService is the concrete implementation of ProjectionService.
type projectionService struct {
	log *logger.Logger
}

// NewProjectionService creates a new instance of ProjectionService.
func NewProjectionService(log *logger.Logger) ProjectionService {
	return &projectionService{
		log: log,
	}
}

func validateMonths(months int) error {
	if months < MinProjectionMonths || months > MaxProjectionMonths {
		return fmt.Errorf("%w: got %d", ErrInvalidMonths, months)
	}
	return nil
}

func validateLoan(loan calculator.LoanInputs) error {
	if loan.TermYears < 1 {
		return fmt.Errorf("%w: got %d years", ErrInvalidLoanTerm, loan.TermYears)
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidPrice, price)
	}
	return nil
}

func (s *projectionService) BuyHold(ctx context.Context, inputs calculator.BuyHoldInputs) (*calculator.BuyHoldOutputs, error) {
	if err := validateMonths(inputs.Months); err != nil {
		s.log.Warn("Invalid buy-hold inputs", map[string]interface{}{
			"months": inputs.Months,
		})
		return nil, err
	}
	if err := validateLoan(inputs.Loan); err != nil {
		return nil, err
	}
	if err := validatePrice(inputs.PurchasePrice); err != nil {
		return nil, err
	}

	s.log.Info("Running buy-hold projection", map[string]interface{}{
		"purchase_price": inputs.PurchasePrice,
		"months":         inputs.Months,
	})

	outputs, err := calculator.CalculateBuyHold(inputs)
	if err != nil {
		s.log.Error("Buy-hold projection failed", err, map[string]interface{}{
			"purchase_price": inputs.PurchasePrice,
		})
		return nil, fmt.Errorf("failed to run buy-hold projection: %w", err)
	}

	return outputs, nil
}

func (s *projectionService) BRRRR(ctx context.Context, inputs calculator.BRRRRInputs) (*calculator.BRRRRResult, error) {
	if err := validateMonths(inputs.Months); err != nil {
		s.log.Warn("Invalid BRRRR inputs", map[string]interface{}{
			"months": inputs.Months,
		})
		return nil, err
	}
	if err := validateLoan(inputs.LongTermLoan); err != nil {
		return nil, err
	}
	if err := validatePrice(inputs.PurchasePrice); err != nil {
		return nil, err
	}

	s.log.Info("Running BRRRR projection", map[string]interface{}{
		"purchase_price": inputs.PurchasePrice,
		"arv":            inputs.ARV,
		"months":         inputs.Months,
	})

	result, err := calculator.CalculateBRRRR(inputs)
	if err != nil {
		s.log.Error("BRRRR projection failed", err, map[string]interface{}{
			"purchase_price": inputs.PurchasePrice,
		})
		return nil, fmt.Errorf("failed to run BRRRR projection: %w", err)
	}

	return result, nil
}

func (s *projectionService) Flip(ctx context.Context, inputs calculator.FlipInputs) (*calculator.FlipResult, error) {
	if err := validatePrice(inputs.PurchasePrice); err != nil {
		return nil, err
	}

	s.log.Info("Running flip projection", map[string]interface{}{
		"purchase_price": inputs.PurchasePrice,
		"arv":            inputs.ARV,
	})

	result := calculator.CalculateFlip(inputs)
	return &result, nil
}

func (s *projectionService) FlipDetailed(ctx context.Context, inputs calculator.FlipInputs) (*calculator.FlipDetailedResult, error) {
	if err := validatePrice(inputs.PurchasePrice); err != nil {
		return nil, err
	}

	s.log.Info("Running detailed flip projection", map[string]interface{}{
		"purchase_price": inputs.PurchasePrice,
		"arv":            inputs.ARV,
	})

	result := calculator.CalculateFlipDetailed(inputs)
	return &result, nil
}

func (s *projectionService) RehabCatalog(ctx context.Context) []calculator.RehabItem {
	return calculator.DefaultCatalog
}

func (s *projectionService) EstimateRehab(ctx context.Context, selections []calculator.RehabSelection, grade calculator.RehabClass) (*calculator.RehabTotalResult, error) {
	if !grade.Valid() {
		s.log.Warn("Invalid rehab grade", map[string]interface{}{
			"grade": string(grade),
		})
		return nil, fmt.Errorf("%w: %q", ErrInvalidRehabGrade, grade)
	}

	result, err := calculator.CalculateRehabTotal(selections, grade, nil)
	if err != nil {
		s.log.Warn("Rehab estimate failed", map[string]interface{}{
			"grade": string(grade),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrUnknownRehabItem, err)
	}

	s.log.Info("Rehab estimate computed", map[string]interface{}{
		"grade": string(grade),
		"items": len(result.LineItems),
		"total": result.Total,
	})

	return result, nil
}
