package repository

import (
	"context"
	"errors"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

var ErrAnalysisNotFound = errors.New("análisis no encontrado")

type AnalysisRepository interface {
	Save(ctx context.Context, analysis domain.InvestmentAnalysis) (domain.InvestmentAnalysis, error)
	FindByID(ctx context.Context, id string) (domain.InvestmentAnalysis, error)
}
