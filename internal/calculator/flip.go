package calculator

import "math"

// resolveFlipRent fills in the default flip timeline when no rent inputs are
// given: vacant, immediate rehab for the requested number of months.
func resolveFlipRent(inputs FlipInputs) RentTimelineInputs {
	if inputs.Rent != nil {
		return *inputs.Rent
	}
	asIs := inputs.PurchasePrice
	return RentTimelineInputs{
		RehabPlanned:      true,
		RehabTiming:       RehabImmediate,
		RehabLengthMonths: inputs.RehabMonths,
		AsIsValue:         &asIs,
	}
}

// flipTimeline derives the financed window for a flip: any inherited-tenant
// period, then rehab, then the post-rehab holding period before sale.
func flipTimeline(inputs FlipInputs, rent RentTimelineInputs) (RehabPhase, int, int) {
	phases := DeriveTimeline(rent)
	rehabDuration := inputs.RehabMonths
	if phases.RehabEndMonth != 0 {
		rehabDuration = phases.RehabEndMonth - phases.RehabStartMonth + 1
	}
	monthsFinanced := rehabDuration + inputs.HoldMonths + phases.TenantMonths
	return phases, rehabDuration, monthsFinanced
}

// flipProfit derives the profit metrics shared by both flip variants. A loss
// is never taxed.
func flipProfit(arv, totalCosts, marginalTaxRatePercent float64) FlipResult {
	netProfit := arv - totalCosts
	taxOnProfit := 0.0
	if netProfit > 0 {
		taxOnProfit = netProfit * pct(marginalTaxRatePercent)
	}
	profitAfterTax := netProfit - taxOnProfit

	result := FlipResult{
		SalePrice:      arv,
		TotalCosts:     totalCosts,
		NetProfit:      netProfit,
		TaxOnProfit:    taxOnProfit,
		ProfitAfterTax: profitAfterTax,
	}
	if totalCosts != 0 {
		result.ROI = netProfit / totalCosts
		result.ROIAfterTax = profitAfterTax / totalCosts
	}
	return result
}

// CalculateFlip runs the simple flip projection: flat bridge interest on the
// full principal and flat carrying costs across the financed window. The
// project cost always reflects the full purchase-plus-rehab spend regardless
// of how much the bridge finances.
func CalculateFlip(inputs FlipInputs) FlipResult {
	rent := resolveFlipRent(inputs)
	_, _, monthsFinanced := flipTimeline(inputs, rent)

	terms := resolveBridge(inputs.Bridge, inputs.PurchasePrice, inputs.RehabTotal)
	points := pct(inputs.Bridge.PointsPercent) * terms.Principal
	closing := pct(inputs.Bridge.ClosingCostsPercent) * inputs.PurchasePrice
	monthlyBridgeRate := pct(inputs.Bridge.InterestRateAnnualPercent) / monthsPerYear
	interest := terms.Principal * monthlyBridgeRate * float64(monthsFinanced)

	carrying := (inputs.TaxesMonthly + inputs.InsuranceMonthly) * float64(monthsFinanced)

	agentFee := inputs.ARV * pct(inputs.AgentFeePercent)
	sellingCosts := inputs.ARV * pct(inputs.SellingCostsPercent)

	projectCost := inputs.PurchasePrice + inputs.RehabTotal
	totalCosts := projectCost + points + closing + interest + carrying + agentFee + sellingCosts

	result := flipProfit(inputs.ARV, totalCosts, inputs.MarginalTaxRatePercent)
	result.SaleMonth = monthsFinanced
	return result
}

// CalculateFlipDetailed runs the flip projection with the same incremental
// bridge draws as BRRRR and a month-by-month net carry against the actual
// rent schedule, so a stabilized month before sale offsets carrying cost
// (carrying can go negative).
func CalculateFlipDetailed(inputs FlipInputs) FlipDetailedResult {
	rent := resolveFlipRent(inputs)
	phases, rehabDuration, monthsFinanced := flipTimeline(inputs, rent)

	terms := resolveBridge(inputs.Bridge, inputs.PurchasePrice, inputs.RehabTotal)
	points := pct(inputs.Bridge.PointsPercent) * terms.Principal
	closing := pct(inputs.Bridge.ClosingCostsPercent) * inputs.PurchasePrice
	monthlyBridgeRate := pct(inputs.Bridge.InterestRateAnnualPercent) / monthsPerYear

	interest := 0.0
	carrying := 0.0
	if monthsFinanced > 0 {
		balances := bridgeBalances(terms, phases, rehabDuration, monthsFinanced)
		rentSchedule := BuildRentSchedule(rent, RentScheduleOptions{Months: monthsFinanced})
		for month := 1; month <= monthsFinanced; month++ {
			interest += balances[month] * monthlyBridgeRate
			carrying += inputs.TaxesMonthly + inputs.InsuranceMonthly - rentSchedule.Schedule[month-1].Rent
		}
	}

	agentFee := inputs.ARV * pct(inputs.AgentFeePercent)
	sellingCosts := inputs.ARV * pct(inputs.SellingCostsPercent)

	projectCost := inputs.PurchasePrice + inputs.RehabTotal
	equityRequired := math.Max(projectCost-terms.Principal, 0)
	totalCosts := projectCost + points + closing + interest + carrying + agentFee + sellingCosts

	cashInvested := math.Max(equityRequired+points+closing+interest+carrying, 0)

	result := FlipDetailedResult{
		FlipResult:      flipProfit(inputs.ARV, totalCosts, inputs.MarginalTaxRatePercent),
		MonthsFinanced:  monthsFinanced,
		BridgePrincipal: terms.Principal,
		Points:          points,
		Closing:         closing,
		Interest:        interest,
		Carrying:        carrying,
		AgentFee:        agentFee,
		SellingCosts:    sellingCosts,
		ProjectCost:     projectCost,
		EquityRequired:  equityRequired,
		CashInvested:    cashInvested,
	}
	result.SaleMonth = monthsFinanced
	if cashInvested > 0 {
		result.CashOnCashROI = result.NetProfit / cashInvested
	}
	return result
}
