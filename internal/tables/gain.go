package tables

// GainPowerBreak is one rung of the gain power ladder: if the current gain
// energy scaled by Ratio falls below the previous gain energy, Power becomes
// the subframe's codebook gain power.
type GainPowerBreak struct {
	Ratio float32
	Power float32
}

// GainPowerLadder maps the ratio between the current and previous gain
// energies to a codebook gain power. It is walked top to bottom and the
// first matching rung wins; the ratios descend monotonically.
var GainPowerLadder = [15]GainPowerBreak{
	{32190.0 / 32768, 0.92},
	{31482.0 / 32768, 0.90},
	{30775.0 / 32768, 0.88},
	{29890.0 / 32768, 0.86},
	{28829.0 / 32768, 0.83},
	{27415.0 / 32768, 0.80},
	{25646.0 / 32768, 0.75},
	{23877.0 / 32768, 0.70},
	{22109.0 / 32768, 0.65},
	{19456.0 / 32768, 0.60},
	{15919.0 / 32768, 0.50},
	{12381.0 / 32768, 0.40},
	{7960.0 / 32768, 0.30},
	{2654.0 / 32768, 0.15},
	{-1768.0 / 32768, 0.00},
}

// FallbackGainPower is the codebook gain power used when the energy ratio
// exceeds every rung of GainPowerLadder.
const FallbackGainPower = -0.10
