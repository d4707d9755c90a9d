package calculator

import "math"

// monthlyAppreciationRate converts an annual appreciation percentage to the
// true monthly-compounded equivalent, not a naive /12 division.
func monthlyAppreciationRate(annualPercent float64) float64 {
	return math.Pow(1+annualPercent/100, 1.0/12) - 1
}

// BuildPropertyValueSchedule builds the month-indexed valuation array.
//
// With rehab planned the as-is value appreciates monthly through the rehab
// window, steps to ARV exactly at the month after rehab ends, and the ARV
// appreciates from there. Without rehab the as-is value appreciates
// continuously with no ARV step.
func BuildPropertyValueSchedule(inputs PropertyValueInputs, months int) PropertyValueResult {
	phases := DeriveTimeline(inputs.RentTimelineInputs)
	rate := monthlyAppreciationRate(inputs.AnnualAppreciationPercent)

	asIsValue := inputs.PurchasePrice
	if inputs.AsIsValue != nil {
		asIsValue = *inputs.AsIsValue
	}

	values := make([]PropertyValueEntry, 0, months)

	for month := 1; month <= months; month++ {
		var value float64

		if inputs.RehabPlanned && phases.RehabEndMonth > 0 {
			switch {
			case month <= phases.RehabEndMonth:
				value = asIsValue * math.Pow(1+rate, float64(month))
			case month == phases.RehabEndMonth+1:
				// One-time realization of the after-repair value.
				value = inputs.ARV
			default:
				monthsPostARV := month - (phases.RehabEndMonth + 1)
				value = inputs.ARV * math.Pow(1+rate, float64(monthsPostARV))
			}
		} else {
			value = asIsValue * math.Pow(1+rate, float64(month))
		}

		values = append(values, PropertyValueEntry{Month: month, Value: value})
	}

	return PropertyValueResult{Values: values, MonthlyAppreciationRate: rate}
}
