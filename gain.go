package uodecode

import "github.com/HornedViper/uodecode/internal/tables"

// gainEnergyFactor decays previous values in the gain energy accumulators,
// 6% per stage, squared.
const gainEnergyFactor = float32(0.94) * float32(0.94)

// updateGainEnergy feeds the product of two gain levels through the
// three-stage cascaded energy accumulator: each stage decays, absorbs the
// running total and becomes part of it. Returns the new top value.
func updateGainEnergy(gain1, gain2 float32, energy *[3]float32) float32 {
	accumulator := gain1 * gain2
	for i := range energy {
		accumulator += gainEnergyFactor * energy[i]
		energy[i] = accumulator
	}
	return energy[2]
}

// selectGainPower walks the gain power ladder top to bottom and returns the
// power of the first rung whose ratio brings the current energy below the
// previous energy, or the fallback power when none does.
func selectGainPower(currentEnergy, previousEnergy float32) float32 {
	for _, rung := range tables.GainPowerLadder {
		if currentEnergy*rung.Ratio < previousEnergy {
			return rung.Power
		}
	}
	return tables.FallbackGainPower
}
