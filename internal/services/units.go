package services

import (
	"errors"

	"github.com/ashujumbo12/FitnessApp/internal/models"
)

var ErrUnknownUnits = errors.New("unknown units")

const (
	kgPerPound = 0.45359237
	cmPerInch  = 2.54
)

func KgToLb(kg float64) float64 {
	return kg / kgPerPound
}

func LbToKg(lb float64) float64 {
	return lb * kgPerPound
}

func CmToIn(cm float64) float64 {
	return cm / cmPerInch
}

func InToCm(in float64) float64 {
	return in * cmPerInch
}

// StepsToKm derives walked distance from a step count using the source
// app's stride constant: 8 km per 8900 steps.
func StepsToKm(steps int64) float64 {
	return float64(steps) * 8.0 / (1780.0 * 5.0)
}

func ValidUnits(units string) bool {
	return units == models.UnitsMetric || units == models.UnitsImperial
}
