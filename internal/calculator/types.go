package calculator

// Strategy identifies which projection a saved analysis was built with.
type Strategy string

const (
	StrategyBuyHold Strategy = "BUY_HOLD"
	StrategyBRRRR   Strategy = "BRRRR"
	StrategyFlip    Strategy = "FLIP"
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyBuyHold, StrategyBRRRR, StrategyFlip:
		return true
	}
	return false
}

// RehabTiming controls when rehab begins relative to purchase and tenancy.
type RehabTiming string

const (
	RehabImmediate   RehabTiming = "IMMEDIATE"
	RehabAfterTenant RehabTiming = "AFTER_TENANT"
)

// RentPhase tags each scheduled month as current-condition, under rehab, or
// stabilized at the target rent.
type RentPhase string

const (
	PhaseCurrent    RentPhase = "CURRENT"
	PhaseRehab      RentPhase = "REHAB"
	PhaseStabilized RentPhase = "STABILIZED"
)

// RentTimelineInputs describes occupancy and rehab timing for one deal.
// All month counts and rents are expected to be non-negative; a rehab length
// of zero is equivalent to no rehab for phase-boundary purposes.
type RentTimelineInputs struct {
	// ModelCurrentVsFuture opts into the phased current/rehab/stabilized
	// timeline. When false the deal behaves as stabilized from month 1.
	ModelCurrentVsFuture bool `json:"modelCurrentVsFuture"`
	// IsOccupied is the occupancy status during the current-condition phase.
	IsOccupied bool `json:"isOccupied"`
	// CurrentMonthlyRent applies during the current phase; ignored if vacant.
	CurrentMonthlyRent float64 `json:"currentMonthlyRent"`
	// MonthsUntilTenantLeaves is 0 if vacant or unknown.
	MonthsUntilTenantLeaves int `json:"monthsUntilTenantLeaves"`
	// TargetMonthlyRent is the stabilized rent after rehab/turnover.
	TargetMonthlyRent float64 `json:"targetMonthlyRent"`
	// AnnualRentGrowthPercent compounds rents monthly; 0 means flat.
	AnnualRentGrowthPercent float64 `json:"annualRentGrowthPercent,omitempty"`
	RehabPlanned            bool        `json:"rehabPlanned"`
	RehabTiming             RehabTiming `json:"rehabTiming"`
	RehabLengthMonths       int         `json:"rehabLengthMonths"`
	// AsIsValue defaults to the purchase price when nil.
	AsIsValue *float64 `json:"asIsValue,omitempty"`
}

// RehabPhase holds the derived month boundaries for one deal timeline.
// Immutable once computed.
type RehabPhase struct {
	TenantMonths    int `json:"tenantMonths"`
	RehabStartMonth int `json:"rehabStartMonth"`
	RehabEndMonth   int `json:"rehabEndMonth"`
	StabilizedMonth int `json:"stabilizedMonth"`
	RefinanceMonth  int `json:"refinanceMonth"`
}

// RentEntry is one month of the rent schedule.
type RentEntry struct {
	Month int       `json:"month"`
	Phase RentPhase `json:"phase"`
	Rent  float64   `json:"rent"`
}

// RentScheduleResult is the output of BuildRentSchedule.
type RentScheduleResult struct {
	Schedule []RentEntry `json:"schedule"`
	Phases   RehabPhase  `json:"phases"`
	// TotalRent is the rent collected across the schedule window.
	TotalRent float64 `json:"totalRent"`
	// ZeroMonths counts months with no rent (vacancy or rehab pause).
	ZeroMonths int `json:"zeroMonths"`
}

// PropertyValueInputs extends the rent timeline with valuation parameters.
type PropertyValueInputs struct {
	RentTimelineInputs
	ARV           float64 `json:"arv"`
	PurchasePrice float64 `json:"purchasePrice"`
	// AnnualAppreciationPercent, e.g. 3 for 3% per year.
	AnnualAppreciationPercent float64 `json:"annualAppreciationPercent"`
}

// PropertyValueEntry is one month's estimated property value.
type PropertyValueEntry struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// PropertyValueResult is the output of BuildPropertyValueSchedule.
type PropertyValueResult struct {
	Values                  []PropertyValueEntry `json:"values"`
	MonthlyAppreciationRate float64              `json:"monthlyAppreciationRate"`
}

// LoanInputs describes a conventional amortizing loan. The optional cost
// percents default to zero when omitted.
type LoanInputs struct {
	PurchasePrice             float64 `json:"purchasePrice"`
	DownPaymentPercent        float64 `json:"downPaymentPercent"`
	InterestRateAnnualPercent float64 `json:"interestRateAnnualPercent"`
	TermYears                 int     `json:"termYears"`
	ClosingCostsPercent       float64 `json:"closingCostsPercent,omitempty"`
	LenderPointsPercent       float64 `json:"lenderPointsPercent,omitempty"`
}

// OperatingInputs holds recurring operating expenses. The percent fields are
// applied against collected rent; taxes and insurance are annual figures.
type OperatingInputs struct {
	TaxesAnnual          float64 `json:"taxesAnnual"`
	InsuranceAnnual      float64 `json:"insuranceAnnual"`
	RepairsPercent       float64 `json:"repairsPercent"`
	CapexPercent         float64 `json:"capexPercent"`
	ManagementPercent    float64 `json:"managementPercent"`
	VacancyPercent       float64 `json:"vacancyPercent"`
	UtilitiesMonthly     float64 `json:"utilitiesMonthly,omitempty"`
	OtherMonthlyExpenses float64 `json:"otherMonthlyExpenses,omitempty"`
}

// MortgagePayment is one amortization row. Balance is clamped at zero.
type MortgagePayment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// MonthlyExpenses itemizes one month of operating expenses.
type MonthlyExpenses struct {
	Vacancy    float64 `json:"vacancy"`
	Repairs    float64 `json:"repairs"`
	Capex      float64 `json:"capex"`
	Management float64 `json:"management"`
	Taxes      float64 `json:"taxes"`
	Insurance  float64 `json:"insurance"`
	Utilities  float64 `json:"utilities"`
	Other      float64 `json:"other"`
}

// Total sums all expense line items.
func (e MonthlyExpenses) Total() float64 {
	return e.Vacancy + e.Repairs + e.Capex + e.Management +
		e.Taxes + e.Insurance + e.Utilities + e.Other
}

// MonthlyResult combines rent, expenses, debt service, value, and equity for
// one month of a projection.
type MonthlyResult struct {
	Month              int             `json:"month"`
	Rent               float64         `json:"rent"`
	Expenses           MonthlyExpenses `json:"expenses"`
	Mortgage           MortgagePayment `json:"mortgage"`
	CashFlow           float64         `json:"cashFlow"`
	CumulativeCashFlow float64         `json:"cumulativeCashFlow"`
	PropertyValue      float64         `json:"propertyValue"`
	Equity             float64         `json:"equity"`
}

// AnnualSummary aggregates one calendar year of monthly results. The final
// year may cover fewer than twelve months.
type AnnualSummary struct {
	Year          int     `json:"year"`
	NOI           float64 `json:"noi"`
	CashFlow      float64 `json:"cashFlow"`
	DebtService   float64 `json:"debtService"`
	PrincipalPaid float64 `json:"principalPaid"`
	// Appreciation is the value gained within the year, clamped at zero.
	Appreciation float64 `json:"appreciation"`
	EndingEquity float64 `json:"endingEquity"`
	CashOnCash   float64 `json:"cashOnCash"`
	CapRate      float64 `json:"capRate"`
	// DSCR is NOI / debt service; zero when there is no debt service.
	DSCR float64 `json:"dscr"`
}

// CashRequiredBreakdown itemizes the cash needed to close a deal.
type CashRequiredBreakdown struct {
	DownPayment  float64 `json:"downPayment"`
	ClosingCosts float64 `json:"closingCosts"`
	LenderPoints float64 `json:"lenderPoints"`
	Rehab        float64 `json:"rehab"`
	Carrying     float64 `json:"carrying,omitempty"`
}

// BuyHoldMetrics summarizes a projection's headline numbers.
type BuyHoldMetrics struct {
	CashRequired          float64               `json:"cashRequired"`
	CashRequiredBreakdown CashRequiredBreakdown `json:"cashRequiredBreakdown"`
	// TotalReturn is final cumulative cash flow plus final equity.
	TotalReturn float64 `json:"totalReturn"`
	CashOnCash  float64 `json:"coc"`
	DSCR        float64 `json:"dscr"`
}

// BuyHoldOutputs is the full result of a Buy & Hold projection.
type BuyHoldOutputs struct {
	Monthly []MonthlyResult `json:"monthly"`
	Annual  []AnnualSummary `json:"annual"`
	Metrics BuyHoldMetrics  `json:"metrics"`
}

// BuyHoldInputs drives a Buy & Hold projection.
type BuyHoldInputs struct {
	Rent                      RentTimelineInputs `json:"rent"`
	Loan                      LoanInputs         `json:"loan"`
	Operating                 OperatingInputs    `json:"operating"`
	ARV                       float64            `json:"arv"`
	PurchasePrice             float64            `json:"purchasePrice"`
	AnnualAppreciationPercent float64            `json:"annualAppreciationPercent"`
	Months                    int                `json:"months"`
	// RehabTotal is included in cash required; callers pass 0 to exclude it.
	RehabTotal float64 `json:"rehabTotal,omitempty"`
}

// BridgeLoanInputs describes the short-term loan used by BRRRR and flip
// projections. LTVPercent defaults to 100 and IncludeRehabInBridge to true
// when nil.
type BridgeLoanInputs struct {
	InterestRateAnnualPercent float64  `json:"interestRateAnnualPercent"`
	PointsPercent             float64  `json:"pointsPercent,omitempty"`
	ClosingCostsPercent       float64  `json:"closingCostsPercent,omitempty"`
	LTVPercent                *float64 `json:"ltvPercent,omitempty"`
	IncludeRehabInBridge      *bool    `json:"includeRehabInBridge,omitempty"`
}

// BRRRRInputs drives a BRRRR projection: a bridge loan carried through
// purchase and rehab, refinanced into a long-term loan at stabilization.
type BRRRRInputs struct {
	Rent         RentTimelineInputs `json:"rent"`
	LongTermLoan LoanInputs         `json:"longTermLoan"`
	Operating    OperatingInputs    `json:"operating"`
	Bridge       BridgeLoanInputs   `json:"bridge"`
	// RefinanceLTVPercent sizes the long-term loan against value at refinance.
	RefinanceLTVPercent float64 `json:"refinanceLtvPercent"`
	// Refinance cost overrides; when nil the long-term loan's own closing and
	// points percentages are used.
	RefinanceClosingCostsPercent *float64 `json:"refinanceClosingCostsPercent,omitempty"`
	RefinancePointsPercent       *float64 `json:"refinancePointsPercent,omitempty"`
	// RefinanceReserveMonths holds back that many long-term payments at close.
	RefinanceReserveMonths    int     `json:"refinanceReserveMonths,omitempty"`
	PurchasePrice             float64 `json:"purchasePrice"`
	ARV                       float64 `json:"arv"`
	RehabTotal                float64 `json:"rehabTotal"`
	AnnualAppreciationPercent float64 `json:"annualAppreciationPercent"`
	Months                    int     `json:"months"`
}

// BRRRRResult extends the buy-and-hold outputs with the bridge-to-refinance
// lifecycle figures.
type BRRRRResult struct {
	BuyHoldOutputs
	RefinanceMonth        int     `json:"refinanceMonth"`
	BridgeInterest        float64 `json:"bridgeInterest"`
	CashOut               float64 `json:"cashOut"`
	ValueAtRefi           float64 `json:"valueAtRefi"`
	RefinanceAmount       float64 `json:"refinanceAmount"`
	PayoffBridge          float64 `json:"payoffBridge"`
	CarryingCosts         float64 `json:"carryingCosts"`
	RefinanceClosingCosts float64 `json:"refinanceClosingCosts"`
	RefinancePoints       float64 `json:"refinancePoints"`
	RefinanceReserves     float64 `json:"refinanceReserves"`
}

// FlipInputs drives the flip projections. Rent is optional; when nil a
// vacant, immediate-rehab timeline is assumed.
type FlipInputs struct {
	Rent          *RentTimelineInputs `json:"rent,omitempty"`
	PurchasePrice float64             `json:"purchasePrice"`
	ARV           float64             `json:"arv"`
	RehabTotal    float64             `json:"rehabTotal"`
	RehabMonths   int                 `json:"rehabMonths"`
	// HoldMonths is the post-rehab holding period before sale.
	HoldMonths          int              `json:"holdMonths"`
	Bridge              BridgeLoanInputs `json:"bridge"`
	SellingCostsPercent float64          `json:"sellingCostsPercent"`
	AgentFeePercent     float64          `json:"agentFeePercent"`
	TaxesMonthly        float64          `json:"taxesMonthly"`
	InsuranceMonthly    float64          `json:"insuranceMonthly"`
	// MarginalTaxRatePercent applies to positive profit only.
	MarginalTaxRatePercent float64 `json:"marginalTaxRatePercent,omitempty"`
}

// FlipResult summarizes a simple flip projection.
type FlipResult struct {
	SaleMonth      int     `json:"saleMonth"`
	SalePrice      float64 `json:"salePrice"`
	TotalCosts     float64 `json:"totalCosts"`
	NetProfit      float64 `json:"netProfit"`
	ROI            float64 `json:"roi"`
	TaxOnProfit    float64 `json:"taxOnProfit"`
	ProfitAfterTax float64 `json:"profitAfterTax"`
	ROIAfterTax    float64 `json:"roiAfterTax"`
}

// FlipDetailedResult adds the financing and cash breakdown to the flip
// summary. Carrying may be negative when rent collected before sale exceeds
// the holding costs.
type FlipDetailedResult struct {
	FlipResult
	MonthsFinanced  int     `json:"monthsFinanced"`
	BridgePrincipal float64 `json:"bridgePrincipal"`
	Points          float64 `json:"points"`
	Closing         float64 `json:"closing"`
	Interest        float64 `json:"interest"`
	Carrying        float64 `json:"carrying"`
	AgentFee        float64 `json:"agentFee"`
	SellingCosts    float64 `json:"sellingCosts"`
	ProjectCost     float64 `json:"projectCost"`
	EquityRequired  float64 `json:"equityRequired"`
	CashInvested    float64 `json:"cashInvested"`
	CashOnCashROI   float64 `json:"cashOnCashRoi"`
}

// RehabClass selects the finish grade used for catalog pricing.
type RehabClass string

const (
	RehabRental RehabClass = "RENTAL"
	RehabFlip   RehabClass = "FLIP"
	RehabRetail RehabClass = "RETAIL"
)

// Valid reports whether c is a known rehab grade.
func (c RehabClass) Valid() bool {
	switch c {
	case RehabRental, RehabFlip, RehabRetail:
		return true
	}
	return false
}

// UnitType describes how a rehab catalog item is quantified.
type UnitType string

const (
	PerSqft    UnitType = "PER_SQFT"
	PerKitchen UnitType = "PER_KITCHEN"
	PerBath    UnitType = "PER_BATH"
	PerProject UnitType = "PER_PROJECT"
	PerWindow  UnitType = "PER_WINDOW"
	PerDoor    UnitType = "PER_DOOR"
	PerSet     UnitType = "PER_SET"
	PerUnit    UnitType = "PER_UNIT"
	PerCustom  UnitType = "PER_CUSTOM"
)

// RehabItem is one catalog entry with per-grade pricing.
type RehabItem struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category string   `json:"category"`
	UnitType UnitType `json:"unitType"`
	// RentalPrice and FlipPrice are the per-unit costs for those grades.
	RentalPrice float64 `json:"rentalPrice"`
	FlipPrice   float64 `json:"flipPrice"`
	// RetailMultiplier scales the flip price for RETAIL; 0 means the 1.5x
	// default.
	RetailMultiplier float64 `json:"retailMultiplier,omitempty"`
	DefaultQuantity  float64 `json:"defaultQuantity,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

// RehabSelection is a user override of one catalog item.
type RehabSelection struct {
	ItemID string `json:"itemId"`
	// Quantity falls back to the item's catalog default when nil.
	Quantity          *float64 `json:"quantity,omitempty"`
	CustomRetailPrice *float64 `json:"customRetailPrice,omitempty"`
	CustomUnitPrice   *float64 `json:"customUnitPrice,omitempty"`
	// Enabled defaults to true when nil.
	Enabled *bool `json:"enabled,omitempty"`
}

// RehabLineItem is one priced selection within a rehab estimate.
type RehabLineItem struct {
	Item      RehabItem `json:"item"`
	Quantity  float64   `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	LineTotal float64   `json:"lineTotal"`
}

// RehabTotalResult is the output of CalculateRehabTotal.
type RehabTotalResult struct {
	Total     float64         `json:"total"`
	LineItems []RehabLineItem `json:"lineItems"`
}
