package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
	"github.com/dvillagrablanco/inmova-app-sub018/repository"
)

type RentRollService struct {
	policy  RentRollPolicy
	results resultCache
}

func NewRentRollService(
	policy RentRollPolicy,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *logrus.Logger,
) *RentRollService {
	return &RentRollService{
		policy:  policy,
		results: newResultCache(cache, ttl, logger),
	}
}

func (s *RentRollService) Validate(doc domain.RentRollDocument) domain.ValidationResult {
	return s.policy.Validate(doc)
}

func (s *RentRollService) Summarize(doc domain.RentRollDocument) domain.RentRollSummary {
	return SummarizeRentRoll(doc)
}

// Report validates and summarizes doc in one pass. The summary is produced
// even when the document is invalid.
func (s *RentRollService) Report(ctx context.Context, doc domain.RentRollDocument) domain.RentRollReport {
	input := []any{s.policy, doc}
	report := loadOrCompute(ctx, s.results, "rentroll", input, func() domain.RentRollReport {
		return domain.RentRollReport{
			Validation: s.policy.Validate(doc),
			Summary:    SummarizeRentRoll(doc),
		}
	})

	if !report.Validation.Valid {
		s.results.logger.WithFields(logrus.Fields{
			"module":   "service",
			"funcName": "Report",
			"errors":   len(report.Validation.Errors),
			"warnings": len(report.Validation.Warnings),
		}).Info("rent roll failed validation")
	}

	return report
}
