package domain

import "time"

type CashFlowProjection struct {
	InitialInvestment    float64   `json:"initial_investment" validate:"gt=0"`
	AnnualCashFlows      []float64 `json:"annual_cash_flows" validate:"max=100"`
	TerminalSaleProceeds float64   `json:"terminal_sale_proceeds"`
}

// Periods is the projection horizon: one period per annual cash flow plus the sale.
func (p CashFlowProjection) Periods() int {
	return len(p.AnnualCashFlows) + 1
}

type InvestmentInputs struct {
	PurchasePrice      float64 `json:"purchase_price" validate:"gte=0"`
	TotalCapex         float64 `json:"total_capex" validate:"gte=0"`
	GrossRent          float64 `json:"gross_rent" validate:"gte=0"`
	OperatingExpenses  float64 `json:"operating_expenses" validate:"gte=0"`
	OwnCapitalInvested float64 `json:"own_capital_invested" validate:"gte=0"`
	AnnualDebtService  float64 `json:"annual_debt_service" validate:"gte=0"`
	VacancyRate        float64 `json:"vacancy_rate" validate:"gte=0,lte=1"`
}

// InvestmentRequest is what the analysis service consumes. Loan is optional;
// when present its debt service replaces InvestmentInputs.AnnualDebtService.
type InvestmentRequest struct {
	Inputs            InvestmentInputs `json:"inputs"`
	Loan              *LoanTerms       `json:"loan,omitempty"`
	HoldingYears      int              `json:"holding_years" validate:"gte=0,lte=50"`
	ExpectedSalePrice float64          `json:"expected_sale_price" validate:"gte=0"`
}

type InvestmentMetrics struct {
	EffectiveGrossIncome float64    `json:"effective_gross_income"`
	NOI                  float64    `json:"noi"`
	AnnualDebtService    float64    `json:"annual_debt_service"`
	AnnualCashFlow       float64    `json:"annual_cash_flow"`
	ROI                  float64    `json:"roi"`
	CapRate              float64    `json:"cap_rate"`
	CashOnCash           float64    `json:"cash_on_cash"`
	LTV                  float64    `json:"ltv"`
	DSCR                 Ratio      `json:"dscr"`
	PaybackPeriod        Ratio      `json:"payback_period"`
	BreakEvenOccupancy   float64    `json:"break_even_occupancy"`
	IRR                  *IRRResult `json:"irr,omitempty"`
}

type IRRResult struct {
	Rate       float64 `json:"rate"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// InvestmentAnalysis is a stored analysis run.
type InvestmentAnalysis struct {
	ID        string            `json:"id"`
	Request   InvestmentRequest `json:"request"`
	Metrics   InvestmentMetrics `json:"metrics"`
	CreatedAt time.Time         `json:"created_at"`
}
