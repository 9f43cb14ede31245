package domain

import "time"

type RentRollUnit struct {
	UnitNumber   string     `json:"unit_number"`
	Occupied     bool       `json:"occupied"`
	CurrentRent  float64    `json:"current_rent"`
	Tenant       *string    `json:"tenant,omitempty"`
	MarketRent   *float64   `json:"market_rent,omitempty"`
	LeaseStart   *time.Time `json:"lease_start,omitempty"`
	LeaseEnd     *time.Time `json:"lease_end,omitempty"`
	Deposit      *float64   `json:"deposit,omitempty"`
	SquareMeters *float64   `json:"square_meters,omitempty"`
}

// RentRollDocument carries declared aggregates next to the unit list. Units are
// the ground truth; the aggregates come from extraction and may disagree.
type RentRollDocument struct {
	TotalUnits         int            `json:"total_units"`
	OccupiedUnits      int            `json:"occupied_units"`
	TotalMonthlyRent   float64        `json:"total_monthly_rent"`
	AverageRentPerUnit float64        `json:"average_rent_per_unit"`
	OccupancyRate      float64        `json:"occupancy_rate"`
	Units              []RentRollUnit `json:"units"`
}

type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type OccupancyOverview struct {
	TotalUnits    int     `json:"total_units"`
	OccupiedUnits int     `json:"occupied_units"`
	VacantUnits   int     `json:"vacant_units"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type IncomeOverview struct {
	TotalMonthlyRent       float64 `json:"total_monthly_rent"`
	AverageRentPerUnit     float64 `json:"average_rent_per_unit"`
	PotentialMonthlyIncome float64 `json:"potential_monthly_income"`
	LostIncomeFromVacancy  float64 `json:"lost_income_from_vacancy"`
}

type RentDistribution struct {
	Min     float64 `json:"min"`
	Median  float64 `json:"median"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type VacantUnit struct {
	UnitNumber    string  `json:"unit_number"`
	PotentialRent float64 `json:"potential_rent"`
}

type RentRollSummary struct {
	Occupancy        OccupancyOverview `json:"occupancy"`
	Income           IncomeOverview    `json:"income"`
	RentDistribution RentDistribution  `json:"rent_distribution"`
	VacantUnits      []VacantUnit      `json:"vacant_units"`
}

type RentRollReport struct {
	Validation ValidationResult `json:"validation"`
	Summary    RentRollSummary  `json:"summary"`
}
