package service

import (
	"math"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// NPV discounts the projection at rate. The sale proceeds land one period
// after the last annual cash flow.
func NPV(rate float64, p domain.CashFlowProjection) float64 {
	npv := -p.InitialInvestment
	for i, cf := range p.AnnualCashFlows {
		npv += cf / math.Pow(1+rate, float64(i+1))
	}
	n := len(p.AnnualCashFlows)
	return npv + p.TerminalSaleProceeds/math.Pow(1+rate, float64(n+1))
}

func npvDerivative(rate float64, p domain.CashFlowProjection) float64 {
	var d float64
	for i, cf := range p.AnnualCashFlows {
		t := float64(i + 1)
		d -= t * cf / math.Pow(1+rate, t+1)
	}
	n := float64(len(p.AnnualCashFlows))
	return d - (n+1)*p.TerminalSaleProceeds/math.Pow(1+rate, n+2)
}

// SolveIRR runs Newton-Raphson on the NPV. It always returns a rate (in
// percent); Converged reports whether |NPV| fell under IRRTolerance.
func SolveIRR(p domain.CashFlowProjection) domain.IRRResult {
	rate := IRRInitialGuess

	for i := 0; i < IRRMaxIterations; i++ {
		npv := NPV(rate, p)
		if math.Abs(npv) < IRRTolerance {
			return domain.IRRResult{Rate: rate * 100, Iterations: i + 1, Converged: true}
		}

		// A zero derivative sends the step to ±Inf; clampRate bounds it.
		rate = clampRate(rate - npv/npvDerivative(rate, p))
	}

	return domain.IRRResult{Rate: rate * 100, Iterations: IRRMaxIterations}
}

// IRR is SolveIRR without the convergence details.
func IRR(p domain.CashFlowProjection) float64 {
	return SolveIRR(p).Rate
}

func clampRate(rate float64) float64 {
	if math.IsNaN(rate) {
		return IRRMinRate
	}
	return math.Max(IRRMinRate, math.Min(IRRMaxRate, rate))
}
