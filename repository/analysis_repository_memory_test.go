package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

func TestAnalysisRepositoryMemory_SaveAssignsIdentity(t *testing.T) {
	repo := NewAnalysisRepositoryMemory()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	saved, err := repo.Save(context.Background(), domain.InvestmentAnalysis{})
	require.NoError(t, err)

	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, fixed, saved.CreatedAt)

	found, err := repo.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, found)
}

func TestAnalysisRepositoryMemory_NotFound(t *testing.T) {
	repo := NewAnalysisRepositoryMemory()

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAnalysisNotFound)
}

func TestAnalysisRepositoryMemory_CanceledContext(t *testing.T) {
	repo := NewAnalysisRepositoryMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Save(ctx, domain.InvestmentAnalysis{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalysisRepositoryMemory_ConcurrentSaves(t *testing.T) {
	repo := NewAnalysisRepositoryMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(context.Background(), domain.InvestmentAnalysis{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, repo.data, 50)
}
