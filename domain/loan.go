package domain

// LoanTerms describes a fixed-rate loan. AnnualInterestRate is a fraction (0.035 = 3.5%).
type LoanTerms struct {
	Principal          float64 `json:"principal" validate:"gte=0"`
	AnnualInterestRate float64 `json:"annual_interest_rate" validate:"gte=0,lte=1"`
	TermYears          int     `json:"term_years" validate:"gt=0,lte=50"`
}

// NumberOfPayments is the total count of monthly installments.
func (t LoanTerms) NumberOfPayments() int {
	return t.TermYears * 12
}

type LoanResult struct {
	MonthlyPayment    float64             `json:"monthly_payment"`
	AnnualDebtService float64             `json:"annual_debt_service"`
	TotalPayment      float64             `json:"total_payment"`
	TotalInterest     float64             `json:"total_interest"`
	Schedule          []AmortizationEntry `json:"schedule,omitempty"`
}

type AmortizationEntry struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Interest         float64 `json:"interest"`
	Principal        float64 `json:"principal"`
	RemainingBalance float64 `json:"remaining_balance"`
}
