package calculator

import "math"

// defaultScheduleMonths is the horizon used when options leave Months unset.
const defaultScheduleMonths = 12

// RentScheduleOptions tunes BuildRentSchedule. A zero Months means a
// twelve-month horizon.
type RentScheduleOptions struct {
	Months int
}

// rentGrowthFactor compounds the annual growth rate monthly; month 1 is
// always the unadjusted rent.
func rentGrowthFactor(annualPercent float64, month int) float64 {
	if annualPercent == 0 {
		return 1
	}
	return math.Pow(1+annualPercent/100, float64(month-1)/12)
}

// BuildRentSchedule builds the month-indexed rent schedule for a deal:
//
//   - Current phase, months 1..tenantMonths: rent only while occupied.
//   - Rehab window: rent forced to zero regardless of any other flag.
//   - Otherwise stabilized at the target rent.
//
// When AnnualRentGrowthPercent is set, current and stabilized rents compound
// monthly; rehab months stay at zero.
func BuildRentSchedule(inputs RentTimelineInputs, options RentScheduleOptions) RentScheduleResult {
	months := options.Months
	if months <= 0 {
		months = defaultScheduleMonths
	}

	phases := DeriveTimeline(inputs)
	schedule := make([]RentEntry, 0, months)
	totalRent := 0.0
	zeroMonths := 0

	for month := 1; month <= months; month++ {
		growth := rentGrowthFactor(inputs.AnnualRentGrowthPercent, month)
		phase := PhaseStabilized
		rent := inputs.TargetMonthlyRent * growth

		switch {
		case inputs.ModelCurrentVsFuture && month <= phases.TenantMonths:
			phase = PhaseCurrent
			rent = 0
			if inputs.IsOccupied {
				rent = inputs.CurrentMonthlyRent * growth
			}
		case inputs.RehabPlanned && phases.RehabStartMonth > 0 &&
			month >= phases.RehabStartMonth && month <= phases.RehabEndMonth:
			phase = PhaseRehab
			rent = 0
		case !inputs.ModelCurrentVsFuture && month == 1:
			// Legacy non-phased mode: stabilized at target from month 1.
			rent = inputs.TargetMonthlyRent
		}

		if rent == 0 {
			zeroMonths++
		}
		totalRent += rent
		schedule = append(schedule, RentEntry{Month: month, Phase: phase, Rent: rent})
	}

	return RentScheduleResult{
		Schedule:   schedule,
		Phases:     phases,
		TotalRent:  totalRent,
		ZeroMonths: zeroMonths,
	}
}
