package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// AnalysisRepositoryMemory is an in-memory implementation of AnalysisRepository.
type AnalysisRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.InvestmentAnalysis
	now  func() time.Time
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: make(map[string]domain.InvestmentAnalysis),
		now:  time.Now,
	}
}

// Save stores the analysis, assigning an id and timestamp when missing.
func (r *AnalysisRepositoryMemory) Save(
	ctx context.Context,
	analysis domain.InvestmentAnalysis,
) (domain.InvestmentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.InvestmentAnalysis{}, err
	}

	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[analysis.ID] = analysis

	return analysis, nil
}

func (r *AnalysisRepositoryMemory) FindByID(
	ctx context.Context,
	id string,
) (domain.InvestmentAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return domain.InvestmentAnalysis{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	analysis, ok := r.data[id]
	if !ok {
		return domain.InvestmentAnalysis{}, ErrAnalysisNotFound
	}
	return analysis, nil
}
