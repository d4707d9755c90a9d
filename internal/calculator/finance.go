package calculator

import (
	"fmt"
	"math"
)

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / 100 / 12
}

// Pmt returns the periodic payment that amortizes presentValue (plus
// futureValue) over numberOfPayments at ratePerPeriod, as an absolute value.
// dueAtStart shifts payments to the beginning of each period. A zero rate
// falls back to straight-line division. Errors when numberOfPayments is not
// positive: that indicates a caller defect, not a degenerate deal.
func Pmt(ratePerPeriod float64, numberOfPayments int, presentValue, futureValue float64, dueAtStart bool) (float64, error) {
	if numberOfPayments <= 0 {
		return 0, fmt.Errorf("number of payments must be greater than zero, got %d", numberOfPayments)
	}

	if ratePerPeriod == 0 {
		return math.Abs((presentValue + futureValue) / float64(numberOfPayments)), nil
	}

	pvif := math.Pow(1+ratePerPeriod, float64(numberOfPayments))
	due := 1.0
	if dueAtStart {
		due = 1 + ratePerPeriod
	}
	payment := (ratePerPeriod * (presentValue*pvif + futureValue)) / (due * (pvif - 1))

	return math.Abs(payment), nil
}

// IPmt returns the interest portion of the payment for a 1-indexed period.
// The balance is compounded iteratively from period 1 for numeric stability.
// Errors when period is outside [1, numberOfPayments].
func IPmt(ratePerPeriod float64, period, numberOfPayments int, presentValue, futureValue float64, dueAtStart bool) (float64, error) {
	if period < 1 || period > numberOfPayments {
		return 0, fmt.Errorf("period %d is outside the payment schedule [1, %d]", period, numberOfPayments)
	}

	payment, err := Pmt(ratePerPeriod, numberOfPayments, presentValue, futureValue, dueAtStart)
	if err != nil {
		return 0, err
	}

	balance := presentValue
	for i := 1; i < period; i++ {
		if dueAtStart {
			balance -= payment
		}
		balance *= 1 + ratePerPeriod
		if !dueAtStart {
			balance -= payment
		}
	}

	return balance * ratePerPeriod, nil
}

// PPmt returns the principal portion of the payment for a 1-indexed period.
func PPmt(ratePerPeriod float64, period, numberOfPayments int, presentValue, futureValue float64, dueAtStart bool) (float64, error) {
	payment, err := Pmt(ratePerPeriod, numberOfPayments, presentValue, futureValue, dueAtStart)
	if err != nil {
		return 0, err
	}
	interest, err := IPmt(ratePerPeriod, period, numberOfPayments, presentValue, futureValue, dueAtStart)
	if err != nil {
		return 0, err
	}
	return payment - interest, nil
}

// AmortizationInput parameterizes BuildAmortization.
type AmortizationInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermMonths        int     `json:"termMonths"`
}

// AmortizationResult is a constant payment and the full month-by-month
// schedule it produces.
type AmortizationResult struct {
	Payment  float64           `json:"payment"`
	Schedule []MortgagePayment `json:"schedule"`
}

// BuildAmortization produces a full amortization schedule: constant payment,
// interest on the running balance, and the balance floored at zero. The
// floor means summed principal can drift from the original principal by a
// few cents, and the final row is never trued up.
func BuildAmortization(input AmortizationInput) (*AmortizationResult, error) {
	rate := MonthlyRate(input.AnnualRatePercent)
	payment, err := Pmt(rate, input.TermMonths, input.Principal, 0, false)
	if err != nil {
		return nil, fmt.Errorf("amortization over %d months: %w", input.TermMonths, err)
	}

	balance := input.Principal
	schedule := make([]MortgagePayment, 0, input.TermMonths)

	for month := 1; month <= input.TermMonths; month++ {
		interest := balance * rate
		principalPaid := payment - interest
		balance = math.Max(balance-principalPaid, 0)

		schedule = append(schedule, MortgagePayment{
			Month:     month,
			Payment:   payment,
			Principal: principalPaid,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return &AmortizationResult{Payment: payment, Schedule: schedule}, nil
}
