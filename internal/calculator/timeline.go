package calculator

// DeriveTimeline computes the month boundaries for the current, rehab, and
// stabilized phases of a deal. It is a total function over all valid
// non-negative inputs; there are no failure modes.
//
// An occupied unit cannot be rehabbed while tenanted, so under phased
// modeling with a tenant in place the rehab start is forced after tenant
// departure regardless of the requested timing. RefinanceMonth is always
// RehabEndMonth+1: with no rehab planned it anchors the refinance to tenant
// turnover and the as-is value.
func DeriveTimeline(inputs RentTimelineInputs) RehabPhase {
	tenantMonths := 0
	if inputs.ModelCurrentVsFuture && inputs.MonthsUntilTenantLeaves > 0 {
		tenantMonths = inputs.MonthsUntilTenantLeaves
	}

	forcedAfterTenant := inputs.ModelCurrentVsFuture && inputs.IsOccupied

	rehabPlanned := inputs.RehabPlanned && inputs.RehabLengthMonths > 0
	rehabAfterTenant := forcedAfterTenant ||
		(inputs.ModelCurrentVsFuture && inputs.RehabTiming == RehabAfterTenant)

	rehabStartMonth := tenantMonths + 1
	if rehabPlanned && !rehabAfterTenant {
		rehabStartMonth = 1
	}

	rehabEndMonth := tenantMonths
	if rehabPlanned {
		rehabEndMonth = rehabStartMonth + inputs.RehabLengthMonths - 1
	}

	stabilizedMonth := tenantMonths + 1
	if rehabPlanned {
		stabilizedMonth = rehabEndMonth + 1
	}

	return RehabPhase{
		TenantMonths:    tenantMonths,
		RehabStartMonth: rehabStartMonth,
		RehabEndMonth:   rehabEndMonth,
		StabilizedMonth: stabilizedMonth,
		RefinanceMonth:  rehabEndMonth + 1,
	}
}
