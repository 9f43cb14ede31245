package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// CalculateLoan validates the terms and returns the rounded payment figures,
// optionally with the full amortization schedule.
func (s *LoanService) CalculateLoan(
	terms domain.LoanTerms,
	includeSchedule bool,
) (domain.LoanResult, error) {
	if err := validateInput(terms); err != nil {
		return domain.LoanResult{}, err
	}

	cuota := MonthlyPayment(terms)
	total := cuota * float64(terms.NumberOfPayments())

	result := domain.LoanResult{
		MonthlyPayment:    roundTo2Decimals(cuota),
		AnnualDebtService: roundTo2Decimals(AnnualDebtService(terms)),
		TotalPayment:      roundTo2Decimals(total),
		TotalInterest:     roundTo2Decimals(total - terms.Principal),
	}

	if includeSchedule {
		schedule := AmortizationSchedule(terms)
		for i := range schedule {
			schedule[i].Payment = roundTo2Decimals(schedule[i].Payment)
			schedule[i].Interest = roundTo2Decimals(schedule[i].Interest)
			schedule[i].Principal = roundTo2Decimals(schedule[i].Principal)
			schedule[i].RemainingBalance = roundTo2Decimals(schedule[i].RemainingBalance)
		}
		result.Schedule = schedule
	}

	return result, nil
}
