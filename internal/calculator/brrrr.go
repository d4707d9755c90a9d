package calculator

import "math"

// CalculateBRRRR runs a BRRRR projection: a bridge loan carries the purchase
// (and optionally the rehab, drawn incrementally over the rehab window) until
// the refinance month, where a fresh long-term loan sized against the
// property's value at that month pays the bridge off.
//
// With no rehab planned the refinance anchors to tenant turnover (or month 1
// when vacant from the start) and the value at refinance is the appreciated
// as-is value, not ARV.
func CalculateBRRRR(inputs BRRRRInputs) (*BRRRRResult, error) {
	rentResult := BuildRentSchedule(inputs.Rent, RentScheduleOptions{Months: inputs.Months})
	phases := rentResult.Phases

	refinanceMonth := phases.RefinanceMonth
	if refinanceMonth < 1 {
		refinanceMonth = 1
	}

	rehabDuration := 0
	if inputs.Rent.RehabPlanned && inputs.Rent.RehabLengthMonths > 0 {
		rehabDuration = phases.RehabEndMonth - phases.RehabStartMonth + 1
	}

	terms := resolveBridge(inputs.Bridge, inputs.PurchasePrice, inputs.RehabTotal)
	bridgePoints := pct(inputs.Bridge.PointsPercent) * terms.Principal
	bridgeClosing := pct(inputs.Bridge.ClosingCostsPercent) * inputs.PurchasePrice
	monthlyBridgeRate := pct(inputs.Bridge.InterestRateAnnualPercent) / monthsPerYear

	// The unfinanced share of purchase plus bridge-financed rehab is paid in
	// cash at close; rehab kept out of the bridge is cash of its own.
	bridgeBase := inputs.PurchasePrice
	rehabCash := inputs.RehabTotal
	if terms.IncludeRehab {
		bridgeBase += inputs.RehabTotal
		rehabCash = 0
	}
	equityGap := math.Max(bridgeBase-terms.Principal, 0)

	horizon := inputs.Months
	if refinanceMonth > horizon {
		horizon = refinanceMonth
	}
	balances := bridgeBalances(terms, phases, rehabDuration, horizon)

	bridgeInterest := 0.0
	for month := 1; month < refinanceMonth; month++ {
		bridgeInterest += balances[month] * monthlyBridgeRate
	}

	monthlyCarry := inputs.Operating.TaxesAnnual/monthsPerYear +
		inputs.Operating.InsuranceAnnual/monthsPerYear +
		inputs.Operating.UtilitiesMonthly +
		inputs.Operating.OtherMonthlyExpenses
	carryingCosts := monthlyCarry * float64(refinanceMonth-1)

	propertyValues := BuildPropertyValueSchedule(PropertyValueInputs{
		RentTimelineInputs:        inputs.Rent,
		ARV:                       inputs.ARV,
		PurchasePrice:             inputs.PurchasePrice,
		AnnualAppreciationPercent: inputs.AnnualAppreciationPercent,
	}, inputs.Months)

	valueAtRefi := inputs.ARV
	if refinanceMonth <= len(propertyValues.Values) {
		valueAtRefi = propertyValues.Values[refinanceMonth-1].Value
	}
	refinanceAmount := valueAtRefi * pct(inputs.RefinanceLTVPercent)

	amortization, err := BuildAmortization(AmortizationInput{
		Principal:         refinanceAmount,
		AnnualRatePercent: inputs.LongTermLoan.InterestRateAnnualPercent,
		TermMonths:        inputs.LongTermLoan.TermYears * monthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	// Refinance costs fall back to the long-term loan's own percentages.
	refiClosingPercent := inputs.LongTermLoan.ClosingCostsPercent
	if inputs.RefinanceClosingCostsPercent != nil {
		refiClosingPercent = *inputs.RefinanceClosingCostsPercent
	}
	refiPointsPercent := inputs.LongTermLoan.LenderPointsPercent
	if inputs.RefinancePointsPercent != nil {
		refiPointsPercent = *inputs.RefinancePointsPercent
	}
	refinanceClosingCosts := pct(refiClosingPercent) * refinanceAmount
	refinancePoints := pct(refiPointsPercent) * refinanceAmount
	refinanceReserves := float64(inputs.RefinanceReserveMonths) * amortization.Payment
	refinanceCosts := refinanceClosingCosts + refinancePoints + refinanceReserves

	finalBridgeBalance := terms.Principal
	payoffBridge := finalBridgeBalance + bridgeInterest
	// A refinance shortfall is absorbed by the investor, never negative.
	cashOut := math.Max(refinanceAmount-payoffBridge-refinanceCosts, 0)

	cashRequired := equityGap + bridgeClosing + bridgePoints + rehabCash +
		bridgeInterest + carryingCosts + refinanceCosts

	monthly := make([]MonthlyResult, 0, inputs.Months)
	cumulativeCashFlow := 0.0
	postRefiCashFlow := 0.0

	for i := 0; i < inputs.Months; i++ {
		month := i + 1
		rent := rentResult.Schedule[i].Rent
		expenses := monthlyExpenses(rent, inputs.Operating)

		var mortgage MortgagePayment
		if month >= refinanceMonth {
			idx := month - refinanceMonth
			if idx >= len(amortization.Schedule) {
				idx = len(amortization.Schedule) - 1
			}
			mortgage = amortization.Schedule[idx]
		} else {
			// Synthetic interest-only bridge row.
			interest := balances[month] * monthlyBridgeRate
			mortgage = MortgagePayment{
				Month:    month,
				Payment:  interest,
				Interest: interest,
				Balance:  balances[month],
			}
		}

		cashFlow := rent - expenses.Total() - mortgage.Payment
		cumulativeCashFlow += cashFlow
		if month >= refinanceMonth {
			postRefiCashFlow += cashFlow
		}

		propertyValue := valueAtRefi
		if i < len(propertyValues.Values) {
			propertyValue = propertyValues.Values[i].Value
		}

		monthly = append(monthly, MonthlyResult{
			Month:              month,
			Rent:               rent,
			Expenses:           expenses,
			Mortgage:           mortgage,
			CashFlow:           cashFlow,
			CumulativeCashFlow: cumulativeCashFlow,
			PropertyValue:      propertyValue,
			Equity:             propertyValue - mortgage.Balance,
		})
	}

	annual := summarizeAnnual(monthly, cashRequired, inputs.PurchasePrice)

	metrics := BuyHoldMetrics{
		CashRequired: cashRequired,
		CashRequiredBreakdown: CashRequiredBreakdown{
			DownPayment:  equityGap,
			ClosingCosts: bridgeClosing + refinanceClosingCosts,
			LenderPoints: bridgePoints + refinancePoints,
			Rehab:        rehabCash,
			Carrying:     bridgeInterest + carryingCosts + refinanceReserves,
		},
	}
	if len(monthly) > 0 {
		last := monthly[len(monthly)-1]
		metrics.TotalReturn = last.CumulativeCashFlow + last.Equity
	}
	if len(annual) > 0 {
		metrics.DSCR = annual[0].DSCR
	}
	if cashRequired != 0 {
		metrics.CashOnCash = postRefiCashFlow / cashRequired
	}

	return &BRRRRResult{
		BuyHoldOutputs:        BuyHoldOutputs{Monthly: monthly, Annual: annual, Metrics: metrics},
		RefinanceMonth:        refinanceMonth,
		BridgeInterest:        bridgeInterest,
		CashOut:               cashOut,
		ValueAtRefi:           valueAtRefi,
		RefinanceAmount:       refinanceAmount,
		PayoffBridge:          payoffBridge,
		CarryingCosts:         carryingCosts,
		RefinanceClosingCosts: refinanceClosingCosts,
		RefinancePoints:       refinancePoints,
		RefinanceReserves:     refinanceReserves,
	}, nil
}
