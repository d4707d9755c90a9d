package calculator

import "math"

const monthsPerYear = 12

func pct(value float64) float64 { return value / 100 }

// CalculateBuyHold runs a Buy & Hold projection: a single long-term loan from
// month 1, rent and value schedules from the deal timeline, and monthly and
// annual cash-flow roll-ups.
func CalculateBuyHold(inputs BuyHoldInputs) (*BuyHoldOutputs, error) {
	loanAmount := inputs.PurchasePrice * (1 - pct(inputs.Loan.DownPaymentPercent))
	downPayment := inputs.PurchasePrice - loanAmount
	closingCosts := pct(inputs.Loan.ClosingCostsPercent) * inputs.PurchasePrice
	lenderPoints := pct(inputs.Loan.LenderPointsPercent) * loanAmount
	cashRequired := downPayment + closingCosts + lenderPoints + inputs.RehabTotal

	amortization, err := BuildAmortization(AmortizationInput{
		Principal:         loanAmount,
		AnnualRatePercent: inputs.Loan.InterestRateAnnualPercent,
		TermMonths:        inputs.Loan.TermYears * monthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	rentResult := BuildRentSchedule(inputs.Rent, RentScheduleOptions{Months: inputs.Months})
	propertyValues := BuildPropertyValueSchedule(PropertyValueInputs{
		RentTimelineInputs:        inputs.Rent,
		ARV:                       inputs.ARV,
		PurchasePrice:             inputs.PurchasePrice,
		AnnualAppreciationPercent: inputs.AnnualAppreciationPercent,
	}, inputs.Months)

	monthly := make([]MonthlyResult, 0, inputs.Months)
	cumulativeCashFlow := 0.0

	for i := 0; i < inputs.Months; i++ {
		month := i + 1
		rent := rentResult.Schedule[i].Rent

		expenses := monthlyExpenses(rent, inputs.Operating)

		// Months beyond the loan term keep the final (paid-off) row.
		mortgage := amortization.Schedule[len(amortization.Schedule)-1]
		if i < len(amortization.Schedule) {
			mortgage = amortization.Schedule[i]
		}

		noi := rent - expenses.Total()
		cashFlow := noi - mortgage.Payment
		cumulativeCashFlow += cashFlow

		propertyValue := inputs.PurchasePrice
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
			DownPayment:  downPayment,
			ClosingCosts: closingCosts,
			LenderPoints: lenderPoints,
			Rehab:        inputs.RehabTotal,
		},
	}
	if len(monthly) > 0 {
		last := monthly[len(monthly)-1]
		metrics.TotalReturn = last.CumulativeCashFlow + last.Equity
	}
	if len(annual) > 0 {
		metrics.CashOnCash = annual[0].CashOnCash
		metrics.DSCR = annual[0].DSCR
	}

	return &BuyHoldOutputs{Monthly: monthly, Annual: annual, Metrics: metrics}, nil
}

// monthlyExpenses itemizes one month of operating expenses: the percent
// categories apply to that month's rent, taxes and insurance are spread over
// twelve months, utilities and other are flat.
func monthlyExpenses(rent float64, op OperatingInputs) MonthlyExpenses {
	return MonthlyExpenses{
		Vacancy:    rent * pct(op.VacancyPercent),
		Repairs:    rent * pct(op.RepairsPercent),
		Capex:      rent * pct(op.CapexPercent),
		Management: rent * pct(op.ManagementPercent),
		Taxes:      op.TaxesAnnual / monthsPerYear,
		Insurance:  op.InsuranceAnnual / monthsPerYear,
		Utilities:  op.UtilitiesMonthly,
		Other:      op.OtherMonthlyExpenses,
	}
}

// summarizeAnnual aggregates monthly rows into calendar-year summaries. The
// final partial year is included when the horizon is not a multiple of
// twelve. Year-over-year appreciation is clamped at zero.
func summarizeAnnual(monthly []MonthlyResult, cashRequired, purchasePrice float64) []AnnualSummary {
	totalYears := (len(monthly) + monthsPerYear - 1) / monthsPerYear
	annual := make([]AnnualSummary, 0, totalYears)

	for year := 1; year <= totalYears; year++ {
		start := (year - 1) * monthsPerYear
		end := start + monthsPerYear
		if end > len(monthly) {
			end = len(monthly)
		}
		slice := monthly[start:end]
		if len(slice) == 0 {
			break
		}

		var noi, debtService, principalPaid, cashFlow float64
		for _, m := range slice {
			noi += m.Rent - m.Expenses.Total()
			debtService += m.Mortgage.Payment
			principalPaid += m.Mortgage.Principal
			cashFlow += m.CashFlow
		}

		first := slice[0]
		last := slice[len(slice)-1]
		appreciation := math.Max(0, last.PropertyValue-first.PropertyValue)

		summary := AnnualSummary{
			Year:          year,
			NOI:           noi,
			CashFlow:      cashFlow,
			DebtService:   debtService,
			PrincipalPaid: principalPaid,
			Appreciation:  appreciation,
			EndingEquity:  last.Equity,
		}
		if cashRequired != 0 {
			summary.CashOnCash = cashFlow / cashRequired
		}
		if purchasePrice != 0 {
			summary.CapRate = noi / purchasePrice
		}
		if debtService != 0 {
			summary.DSCR = noi / debtService
		}

		annual = append(annual, summary)
	}

	return annual
}
