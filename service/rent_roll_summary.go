package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// SummarizeRentRoll builds the descriptive view of doc regardless of whether
// it validates. The declared average and total rent are used as given so that
// potential income and vacancy loss stay consistent with each other.
func SummarizeRentRoll(doc domain.RentRollDocument) domain.RentRollSummary {
	rents := []float64{}
	vacants := []domain.VacantUnit{}

	for _, u := range doc.Units {
		if u.Occupied {
			rents = append(rents, u.CurrentRent)
			continue
		}
		vacants = append(vacants, domain.VacantUnit{
			UnitNumber:    u.UnitNumber,
			PotentialRent: doc.AverageRentPerUnit,
		})
	}
	sort.Float64s(rents)

	avg := decimal.NewFromFloat(doc.AverageRentPerUnit)
	potential := avg.Mul(decimal.NewFromInt(int64(doc.TotalUnits)))
	lost := potential.Sub(decimal.NewFromFloat(doc.TotalMonthlyRent))

	distribution := domain.RentDistribution{Average: doc.AverageRentPerUnit}
	if len(rents) > 0 {
		distribution.Min = rents[0]
		distribution.Max = rents[len(rents)-1]
		distribution.Median = median(rents)
	}

	return domain.RentRollSummary{
		Occupancy: domain.OccupancyOverview{
			TotalUnits:    doc.TotalUnits,
			OccupiedUnits: len(rents),
			VacantUnits:   len(vacants),
			OccupancyRate: doc.OccupancyRate,
		},
		Income: domain.IncomeOverview{
			TotalMonthlyRent:       doc.TotalMonthlyRent,
			AverageRentPerUnit:     doc.AverageRentPerUnit,
			PotentialMonthlyIncome: potential.InexactFloat64(),
			LostIncomeFromVacancy:  lost.InexactFloat64(),
		},
		RentDistribution: distribution,
		VacantUnits:      vacants,
	}
}

// median expects sorted, non-empty input.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
