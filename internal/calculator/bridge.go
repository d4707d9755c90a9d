package calculator

// bridgeTerms is the fully-resolved view of BridgeLoanInputs: LTV defaults
// to 100% and rehab financing defaults to on.
type bridgeTerms struct {
	LTVPercent       float64
	IncludeRehab     bool
	PurchaseFinanced float64
	// FinancedRehab is the rehab portion carried by the bridge, drawn over
	// the rehab window rather than disbursed up front.
	FinancedRehab float64
	// Principal is the fully-drawn bridge balance.
	Principal float64
}

func resolveBridge(bridge BridgeLoanInputs, purchasePrice, rehabTotal float64) bridgeTerms {
	ltv := 100.0
	if bridge.LTVPercent != nil {
		ltv = *bridge.LTVPercent
	}
	includeRehab := true
	if bridge.IncludeRehabInBridge != nil {
		includeRehab = *bridge.IncludeRehabInBridge
	}

	purchaseFinanced := purchasePrice * pct(ltv)
	financedRehab := 0.0
	if includeRehab {
		financedRehab = rehabTotal * pct(ltv)
	}

	return bridgeTerms{
		LTVPercent:       ltv,
		IncludeRehab:     includeRehab,
		PurchaseFinanced: purchaseFinanced,
		FinancedRehab:    financedRehab,
		Principal:        purchaseFinanced + financedRehab,
	}
}

// bridgeBalances builds the month-indexed outstanding bridge balance for
// months 1..horizon (index 0 is unused). The rehab portion is drawn in equal
// monthly increments across the rehab window; with no window it is disbursed
// up front.
func bridgeBalances(terms bridgeTerms, phases RehabPhase, rehabDuration, horizon int) []float64 {
	balances := make([]float64, horizon+1)
	balance := terms.PurchaseFinanced

	draw := 0.0
	if rehabDuration > 0 {
		draw = terms.FinancedRehab / float64(rehabDuration)
	} else {
		balance += terms.FinancedRehab
	}

	for month := 1; month <= horizon; month++ {
		if draw > 0 && month >= phases.RehabStartMonth && month <= phases.RehabEndMonth {
			balance += draw
		}
		balances[month] = balance
	}

	return balances
}
