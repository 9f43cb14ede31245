package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dvillagrablanco/inmova-app-sub018/domain"
)

// RentRollPolicy holds the anomaly thresholds applied by Validate.
type RentRollPolicy struct {
	LowOccupancyThreshold float64 // porcentaje
	HighRentMultiplier    float64
	LowRentMultiplier     float64
	RentTotalTolerance    float64
}

func DefaultRentRollPolicy() RentRollPolicy {
	return RentRollPolicy{
		LowOccupancyThreshold: LowOccupancyThreshold,
		HighRentMultiplier:    HighRentMultiplier,
		LowRentMultiplier:     LowRentMultiplier,
		RentTotalTolerance:    RentTotalTolerance,
	}
}

// ValidateRentRoll checks doc against the default policy.
func ValidateRentRoll(doc domain.RentRollDocument) domain.ValidationResult {
	return DefaultRentRollPolicy().Validate(doc)
}

// Validate cross-checks the declared aggregates of doc against its units.
// Errors mark the document as unusable; warnings only flag suspicion.
func (p RentRollPolicy) Validate(doc domain.RentRollDocument) domain.ValidationResult {
	errs := []string{}
	warnings := []string{}

	// Estructurales
	if doc.TotalUnits <= 0 {
		errs = append(errs, "Número de unidades inválido")
	}
	if len(doc.Units) == 0 {
		errs = append(errs, "No se encontraron unidades en el rent roll")
	}
	if doc.OccupancyRate < 0 || doc.OccupancyRate > 100 {
		errs = append(errs, fmt.Sprintf("Tasa de ocupación inválida: %.2f%%", doc.OccupancyRate))
	}

	if len(doc.Units) != doc.TotalUnits {
		warnings = append(warnings, fmt.Sprintf(
			"El número de unidades listadas (%d) no coincide con el total declarado (%d)",
			len(doc.Units), doc.TotalUnits))
	}

	occupied := 0
	for _, u := range doc.Units {
		if u.Occupied {
			occupied++
		}
	}
	if occupied != doc.OccupiedUnits {
		warnings = append(warnings, fmt.Sprintf(
			"Unidades ocupadas contadas (%d) no coinciden con las declaradas (%d)",
			occupied, doc.OccupiedUnits))
	}

	if doc.OccupancyRate < p.LowOccupancyThreshold {
		warnings = append(warnings, fmt.Sprintf("Tasa de ocupación baja: %.2f%%", doc.OccupancyRate))
	}

	// Por unidad. Sin promedio declarado no hay referencia para comparar rentas,
	// pero un promedio nulo con rentas cobradas es en sí una contradicción.
	avg := doc.AverageRentPerUnit
	if avg <= 0 && hasCollectedRent(doc.Units) {
		warnings = append(warnings, fmt.Sprintf(
			"Promedio de renta declarado inválido (%.2f) con unidades ocupadas con renta", avg))
	}
	for _, u := range doc.Units {
		if u.Occupied && u.CurrentRent <= 0 {
			warnings = append(warnings, fmt.Sprintf("Unidad %s: ocupada pero sin renta", u.UnitNumber))
		}
		if u.CurrentRent < 0 {
			errs = append(errs, fmt.Sprintf("Unidad %s: renta negativa (%.2f)", u.UnitNumber, u.CurrentRent))
		}
		if avg <= 0 {
			continue
		}
		if u.CurrentRent > avg*p.HighRentMultiplier {
			warnings = append(warnings, fmt.Sprintf(
				"Unidad %s: renta muy superior al promedio (%.2f vs %.2f)", u.UnitNumber, u.CurrentRent, avg))
		}
		if u.Occupied && u.CurrentRent < avg*p.LowRentMultiplier {
			warnings = append(warnings, fmt.Sprintf(
				"Unidad %s: renta muy inferior al promedio (%.2f vs %.2f)", u.UnitNumber, u.CurrentRent, avg))
		}
	}

	computed := occupiedRentTotal(doc.Units)
	declared := decimal.NewFromFloat(doc.TotalMonthlyRent)
	if computed.Sub(declared).Abs().GreaterThan(decimal.NewFromFloat(p.RentTotalTolerance)) {
		warnings = append(warnings, fmt.Sprintf(
			"La suma de rentas ocupadas (%s) difiere del total declarado (%s)",
			computed.StringFixed(2), declared.StringFixed(2)))
	}

	return domain.ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func occupiedRentTotal(units []domain.RentRollUnit) decimal.Decimal {
	total := decimal.Zero
	for _, u := range units {
		if u.Occupied {
			total = total.Add(decimal.NewFromFloat(u.CurrentRent))
		}
	}
	return total
}

func hasCollectedRent(units []domain.RentRollUnit) bool {
	for _, u := range units {
		if u.Occupied && u.CurrentRent > 0 {
			return true
		}
	}
	return false
}
