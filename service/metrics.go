package service

import "github.com/dvillagrablanco/inmova-app-sub018/domain"

// Percentages are returned multiplied by 100 (12 means 12%).

func NOI(grossRent, operatingExpenses float64) float64 {
	return grossRent - operatingExpenses
}

// EffectiveGrossIncome discounts the vacancy fraction from the gross rent.
func EffectiveGrossIncome(grossRent, vacancyRate float64) float64 {
	return grossRent * (1 - vacancyRate)
}

func ROI(netAnnualIncome, totalInvestment float64) float64 {
	if totalInvestment == 0 {
		return 0
	}
	return (netAnnualIncome / totalInvestment) * 100
}

func CashOnCash(annualCashFlow, ownCapitalInvested float64) float64 {
	if ownCapitalInvested == 0 {
		return 0
	}
	return (annualCashFlow / ownCapitalInvested) * 100
}

func CapRate(noi, purchasePrice float64) float64 {
	if purchasePrice == 0 {
		return 0
	}
	return (noi / purchasePrice) * 100
}

func LTV(loanAmount, propertyValue float64) float64 {
	if propertyValue == 0 {
		return 0
	}
	return (loanAmount / propertyValue) * 100
}

// DSCR has no value without debt service.
func DSCR(noi, annualDebtService float64) domain.Ratio {
	if annualDebtService == 0 {
		return domain.NotApplicable()
	}
	return domain.Finite(noi / annualDebtService)
}

// PaybackPeriod is expressed in years. A zero or negative cash flow never
// recovers the investment, so the period is not applicable.
func PaybackPeriod(totalInvestment, annualCashFlow float64) domain.Ratio {
	if annualCashFlow <= 0 {
		return domain.NotApplicable()
	}
	return domain.Finite(totalInvestment / annualCashFlow)
}

func BreakEvenOccupancy(operatingExpenses, debtService, potentialGrossIncome float64) float64 {
	if potentialGrossIncome == 0 {
		return 0
	}
	return ((operatingExpenses + debtService) / potentialGrossIncome) * 100
}
