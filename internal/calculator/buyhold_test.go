package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseBuyHoldRent() RentTimelineInputs {
	return RentTimelineInputs{
		ModelCurrentVsFuture: false,
		TargetMonthlyRent:    1000,
		RehabTiming:          RehabImmediate,
		AsIsValue:            floatPtr(100000),
	}
}

func TestCalculateBuyHold_BaselineScenario(t *testing.T) {
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: baseBuyHoldRent(),
		Loan: LoanInputs{
			PurchasePrice:             100000,
			DownPaymentPercent:        25,
			InterestRateAnnualPercent: 6,
			TermYears:                 30,
		},
		Operating:     OperatingInputs{},
		ARV:           100000,
		PurchasePrice: 100000,
		Months:        12,
	})
	require.NoError(t, err)
	require.Len(t, result.Monthly, 12)
	require.Len(t, result.Annual, 1)

	assert.InDelta(t, 25000, result.Metrics.CashRequired, 0.5)
	assert.InDelta(t, 449.66, result.Monthly[0].Mortgage.Payment, 0.01)
	assert.InDelta(t, 6604, result.Annual[0].CashFlow, 1)
	assert.Greater(t, result.Annual[0].DSCR, 2.0)

	last := result.Monthly[11]
	assert.InDelta(t, 25921, last.Equity, 1)
	assert.InDelta(t, last.CumulativeCashFlow+last.Equity, result.Metrics.TotalReturn, 1e-6)
}

func TestCalculateBuyHold_RehabIncludedInCashRequired(t *testing.T) {
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: RentTimelineInputs{TargetMonthlyRent: 2000, AsIsValue: floatPtr(200000)},
		Loan: LoanInputs{
			PurchasePrice:             200000,
			DownPaymentPercent:        25,
			InterestRateAnnualPercent: 6.5,
			TermYears:                 30,
		},
		ARV:           200000,
		PurchasePrice: 200000,
		Months:        12,
		RehabTotal:    50000,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100000, result.Metrics.CashRequired, 0.5)
	assert.InDelta(t, 50000, result.Metrics.CashRequiredBreakdown.Rehab, 1e-9)
	assert.Greater(t, result.Monthly[0].CashFlow, 0.0)
}

func TestCalculateBuyHold_HighLeverageTightensDSCR(t *testing.T) {
	makeInputs := func(downPercent float64) BuyHoldInputs {
		return BuyHoldInputs{
			Rent: baseBuyHoldRent(),
			Loan: LoanInputs{
				PurchasePrice:             100000,
				DownPaymentPercent:        downPercent,
				InterestRateAnnualPercent: 6,
				TermYears:                 30,
			},
			ARV:           100000,
			PurchasePrice: 100000,
			Months:        12,
		}
	}

	baseline, err := CalculateBuyHold(makeInputs(25))
	require.NoError(t, err)
	leveraged, err := CalculateBuyHold(makeInputs(5))
	require.NoError(t, err)

	assert.Less(t, leveraged.Metrics.CashRequired, baseline.Metrics.CashRequired)
	assert.Less(t, leveraged.Annual[0].DSCR, baseline.Annual[0].DSCR)
	assert.Greater(t, leveraged.Monthly[0].Mortgage.Payment, baseline.Monthly[0].Mortgage.Payment)
}

func TestCalculateBuyHold_ClosingCostsAndPoints(t *testing.T) {
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: baseBuyHoldRent(),
		Loan: LoanInputs{
			PurchasePrice:             100000,
			DownPaymentPercent:        20,
			InterestRateAnnualPercent: 7,
			TermYears:                 30,
			ClosingCostsPercent:       2,
			LenderPointsPercent:       1,
		},
		ARV:           100000,
		PurchasePrice: 100000,
		Months:        12,
	})
	require.NoError(t, err)

	breakdown := result.Metrics.CashRequiredBreakdown
	assert.InDelta(t, 20000, breakdown.DownPayment, 1e-6)
	assert.InDelta(t, 2000, breakdown.ClosingCosts, 1e-6)
	// Points apply to the loan amount, not the purchase price.
	assert.InDelta(t, 800, breakdown.LenderPoints, 1e-6)
	assert.InDelta(t, 22800, result.Metrics.CashRequired, 1e-6)
}

func TestCalculateBuyHold_PartialFinalYear(t *testing.T) {
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: baseBuyHoldRent(),
		Loan: LoanInputs{
			PurchasePrice:             100000,
			DownPaymentPercent:        25,
			InterestRateAnnualPercent: 6,
			TermYears:                 30,
		},
		ARV:           100000,
		PurchasePrice: 100000,
		Months:        18,
	})
	require.NoError(t, err)
	require.Len(t, result.Annual, 2)

	// Year 2 covers six months of cash flow.
	assert.InDelta(t, result.Annual[0].CashFlow/2, result.Annual[1].CashFlow, 1)
}

func TestCalculateBuyHold_AppreciationClampedAtZero(t *testing.T) {
	// A rehab deal where the ARV step lands below the appreciated as-is value
	// would otherwise produce a negative annual appreciation.
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: RentTimelineInputs{
			TargetMonthlyRent: 1200,
			RehabPlanned:      true,
			RehabTiming:       RehabImmediate,
			RehabLengthMonths: 6,
			AsIsValue:         floatPtr(150000),
		},
		Loan: LoanInputs{
			PurchasePrice:             150000,
			DownPaymentPercent:        25,
			InterestRateAnnualPercent: 6,
			TermYears:                 30,
		},
		ARV:                       140000,
		PurchasePrice:             150000,
		AnnualAppreciationPercent: 0,
		Months:                    12,
	})
	require.NoError(t, err)

	for _, year := range result.Annual {
		assert.GreaterOrEqual(t, year.Appreciation, 0.0)
	}
}

func TestCalculateBuyHold_ZeroMonthsProducesEmptySchedules(t *testing.T) {
	result, err := CalculateBuyHold(BuyHoldInputs{
		Rent: baseBuyHoldRent(),
		Loan: LoanInputs{
			PurchasePrice:             100000,
			DownPaymentPercent:        25,
			InterestRateAnnualPercent: 6,
			TermYears:                 30,
		},
		ARV:           100000,
		PurchasePrice: 100000,
		Months:        0,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Monthly)
	assert.Empty(t, result.Annual)
	assert.Zero(t, result.Metrics.TotalReturn)
	assert.InDelta(t, 25000, result.Metrics.CashRequired, 0.5)
}
