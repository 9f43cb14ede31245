package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/config"
	"github.com/dvillagrablanco/inmova-app-sub018/domain"
	"github.com/dvillagrablanco/inmova-app-sub018/repository"
)

type InvestmentService struct {
	repo    repository.AnalysisRepository
	results resultCache
}

// NewInvestmentService creates a new InvestmentService. cache may be nil.
func NewInvestmentService(
	repo repository.AnalysisRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *logrus.Logger,
) *InvestmentService {
	return &InvestmentService{
		repo:    repo,
		results: newResultCache(cache, ttl, logger),
	}
}

// Analyze validates the request, computes its metrics and stores the run.
func (s *InvestmentService) Analyze(
	ctx context.Context,
	req domain.InvestmentRequest,
) (domain.InvestmentAnalysis, error) {
	if err := validateInput(req); err != nil {
		return domain.InvestmentAnalysis{}, err
	}

	metrics := loadOrCompute(ctx, s.results, "investment", req, func() domain.InvestmentMetrics {
		return roundMetrics(ComputeInvestmentMetrics(req))
	})

	analysis, err := s.repo.Save(ctx, domain.InvestmentAnalysis{
		Request: req,
		Metrics: metrics,
	})
	if err != nil {
		config.LogError(s.results.logger, "service", "Analyze", "save analysis", req, err)
		return domain.InvestmentAnalysis{}, fmt.Errorf("guardar análisis: %w", err)
	}

	return analysis, nil
}

func (s *InvestmentService) GetAnalysis(ctx context.Context, id string) (domain.InvestmentAnalysis, error) {
	return s.repo.FindByID(ctx, id)
}

// CalculateIRR validates the projection and solves its IRR.
func (s *InvestmentService) CalculateIRR(p domain.CashFlowProjection) (domain.IRRResult, error) {
	if err := validateInput(p); err != nil {
		return domain.IRRResult{}, err
	}

	result := SolveIRR(p)
	if !result.Converged {
		s.results.logger.WithFields(logrus.Fields{
			"module":     "service",
			"funcName":   "CalculateIRR",
			"iterations": result.Iterations,
			"rate":       result.Rate,
		}).Warn("IRR did not converge")
	}
	result.Rate = roundTo2Decimals(result.Rate)

	return result, nil
}

// ComputeInvestmentMetrics derives every metric of req. NOI is taken after
// vacancy; when a loan is given its annuity replaces the declared debt service.
func ComputeInvestmentMetrics(req domain.InvestmentRequest) domain.InvestmentMetrics {
	in := req.Inputs

	egi := EffectiveGrossIncome(in.GrossRent, in.VacancyRate)
	noi := NOI(egi, in.OperatingExpenses)

	debtService := in.AnnualDebtService
	loanAmount := 0.0
	if req.Loan != nil {
		debtService = AnnualDebtService(*req.Loan)
		loanAmount = req.Loan.Principal
	}

	cashFlow := noi - debtService

	metrics := domain.InvestmentMetrics{
		EffectiveGrossIncome: egi,
		NOI:                  noi,
		AnnualDebtService:    debtService,
		AnnualCashFlow:       cashFlow,
		ROI:                  ROI(cashFlow, in.TotalCapex),
		CapRate:              CapRate(noi, in.PurchasePrice),
		CashOnCash:           CashOnCash(cashFlow, in.OwnCapitalInvested),
		LTV:                  LTV(loanAmount, in.PurchasePrice),
		DSCR:                 DSCR(noi, debtService),
		PaybackPeriod:        PaybackPeriod(in.OwnCapitalInvested, cashFlow),
		BreakEvenOccupancy:   BreakEvenOccupancy(in.OperatingExpenses, debtService, in.GrossRent),
	}

	if p, ok := holdingProjection(req, cashFlow); ok {
		irr := SolveIRR(p)
		metrics.IRR = &irr
	}

	return metrics
}

// holdingProjection models a flat cash flow for HoldingYears. The final year's
// operating cash flow is received together with the net sale proceeds.
func holdingProjection(req domain.InvestmentRequest, cashFlow float64) (domain.CashFlowProjection, bool) {
	if req.HoldingYears <= 0 {
		return domain.CashFlowProjection{}, false
	}

	initial := req.Inputs.OwnCapitalInvested
	if initial <= 0 {
		initial = req.Inputs.TotalCapex
	}
	if initial <= 0 {
		return domain.CashFlowProjection{}, false
	}

	flows := make([]float64, req.HoldingYears-1)
	for i := range flows {
		flows[i] = cashFlow
	}

	saleNet := req.ExpectedSalePrice
	if req.Loan != nil {
		saleNet -= RemainingBalance(*req.Loan, req.HoldingYears*MonthsPerYear)
	}

	return domain.CashFlowProjection{
		InitialInvestment:    initial,
		AnnualCashFlows:      flows,
		TerminalSaleProceeds: saleNet + cashFlow,
	}, true
}

func roundMetrics(m domain.InvestmentMetrics) domain.InvestmentMetrics {
	m.EffectiveGrossIncome = roundTo2Decimals(m.EffectiveGrossIncome)
	m.NOI = roundTo2Decimals(m.NOI)
	m.AnnualDebtService = roundTo2Decimals(m.AnnualDebtService)
	m.AnnualCashFlow = roundTo2Decimals(m.AnnualCashFlow)
	m.ROI = roundTo2Decimals(m.ROI)
	m.CapRate = roundTo2Decimals(m.CapRate)
	m.CashOnCash = roundTo2Decimals(m.CashOnCash)
	m.LTV = roundTo2Decimals(m.LTV)
	m.BreakEvenOccupancy = roundTo2Decimals(m.BreakEvenOccupancy)
	if m.DSCR.Applicable {
		m.DSCR.Value = roundTo2Decimals(m.DSCR.Value)
	}
	if m.PaybackPeriod.Applicable {
		m.PaybackPeriod.Value = roundTo2Decimals(m.PaybackPeriod.Value)
	}
	if m.IRR != nil {
		irr := *m.IRR
		irr.Rate = roundTo2Decimals(irr.Rate)
		m.IRR = &irr
	}
	return m
}
