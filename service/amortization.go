package service

import (
	"math"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// MonthlyPayment returns the fixed monthly installment of the annuity.
// Terms with no payments yield 0; callers validate terms beforehand.
func MonthlyPayment(terms domain.LoanTerms) float64 {
	n := terms.NumberOfPayments()
	if n <= 0 {
		return 0
	}

	if terms.AnnualInterestRate == 0 {
		return terms.Principal / float64(n)
	}

	tasaMensual := terms.AnnualInterestRate / MonthsPerYear
	factor := math.Pow(1+tasaMensual, float64(n))

	return terms.Principal * (tasaMensual * factor) / (factor - 1)
}

// AnnualDebtService is twelve monthly payments.
func AnnualDebtService(terms domain.LoanTerms) float64 {
	return MonthlyPayment(terms) * MonthsPerYear
}

func TotalInterest(terms domain.LoanTerms) float64 {
	return MonthlyPayment(terms)*float64(terms.NumberOfPayments()) - terms.Principal
}

// RemainingBalance is the outstanding principal after paymentsMade installments.
func RemainingBalance(terms domain.LoanTerms, paymentsMade int) float64 {
	n := terms.NumberOfPayments()
	if paymentsMade <= 0 {
		return terms.Principal
	}
	if paymentsMade >= n {
		return 0
	}

	if terms.AnnualInterestRate == 0 {
		return terms.Principal * float64(n-paymentsMade) / float64(n)
	}

	r := terms.AnnualInterestRate / MonthsPerYear
	fn := math.Pow(1+r, float64(n))
	fp := math.Pow(1+r, float64(paymentsMade))

	return terms.Principal * (fn - fp) / (fn - 1)
}

// AmortizationSchedule lists every installment. The final entry absorbs the
// floating point residue so the remaining balance ends at exactly zero.
func AmortizationSchedule(terms domain.LoanTerms) []domain.AmortizationEntry {
	n := terms.NumberOfPayments()
	if n <= 0 {
		return []domain.AmortizationEntry{}
	}

	payment := MonthlyPayment(terms)
	r := terms.AnnualInterestRate / MonthsPerYear
	balance := terms.Principal

	schedule := make([]domain.AmortizationEntry, 0, n)
	for period := 1; period <= n; period++ {
		interest := balance * r
		principal := payment - interest
		cuota := payment

		if period == n {
			principal = balance
			cuota = principal + interest
		}

		balance -= principal
		if period == n || balance < 0 {
			balance = 0
		}

		schedule = append(schedule, domain.AmortizationEntry{
			Period:           period,
			Payment:          cuota,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: balance,
		})
	}

	return schedule
}
