package uodecode

import (
	"math"

	"github.com/HornedViper/uodecode/internal/bits"
	"github.com/HornedViper/uodecode/internal/tables"
)

// Gain levels are 20*log10 values covering a range of 60 dB, i.e. absolute
// gains from 1 to 1000.
const (
	minGainLevel = -32.0
	maxGainLevel = 28.0
)

const (
	valuesPerSubframe = 12
	samplesPerValue   = 4
	synthesisOrder    = 10
	lagBufferLength   = 169
)

// Decoder decodes packed UO frames and carries the synthesis state between
// them.
//
// A Decoder owns its state exclusively: instances are independent and a
// single instance must not be shared between goroutines.
type Decoder struct {
	// prevLSF holds the previous frame's quantized LSF values. When
	// present, the decoder interpolates from these towards the new
	// frame's values across the four subframes; the last subframe uses
	// the new values alone. nil until a frame has been decoded, and
	// again after Reset, in which case the new values are used for the
	// whole frame.
	prevLSF []float32

	// synthesis is a sliding window of recent LPC-filtered output
	// samples, oldest first. Each of the twelve codebook values in a
	// subframe appends (and shifts this window by) four samples.
	synthesis [synthesisOrder]float32

	// lag is a sliding window of recent pre-LPC excitation values,
	// indexed by the pitch lag decoded per subframe. The top 48 entries
	// are regenerated every subframe.
	lag [lagBufferLength]float32

	// currentGainLevel is the log-domain subframe gain. It is clamped to
	// -32 to +28 where it is consumed; the stored value includes the
	// unclamped codebook delta gain, so it can lie outside that range by
	// up to one delta. It is consumed before any codebook update, so it
	// is in effect a component of the next value's gain.
	currentGainLevel float32

	// previousGainLevel is the last value of currentGainLevel, unclamped.
	previousGainLevel float32

	// currentGainEnergy and previousGainEnergy are cascaded decaying
	// accumulators over the recent gain levels: the first is fed the
	// square of the current level, the second the product of the current
	// and previous levels. Their ratio selects the codebook gain power.
	currentGainEnergy  [3]float32
	previousGainEnergy [3]float32

	// codebookGainPower is the multiplier applied to currentGainLevel to
	// form the gain actually applied to a value. Updated at most
	// subframe boundaries from the gain energy ratio; between -0.10 and
	// +0.92.
	codebookGainPower float32
}

// NewDecoder returns a Decoder in the reset state.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset returns the decoder to its initial state, as for a newly constructed
// instance. The container parser calls this at reset blocks; callers using
// the frame-level API should call it at stream discontinuities.
func (d *Decoder) Reset() {
	d.prevLSF = nil
	d.synthesis = [synthesisOrder]float32{}
	d.lag = [lagBufferLength]float32{}
	d.currentGainLevel = minGainLevel
	d.previousGainLevel = minGainLevel
	d.currentGainEnergy = [3]float32{}
	d.previousGainEnergy = [3]float32{}
	d.codebookGainPower = 0
}

// DecodeFrame decodes one 48-byte packed frame starting at startOffset in
// input and returns its 192 output samples, nominally in the range -1024 to
// +1024 (not verified or clipped here).
//
// DecodeFrame never fails: a short buffer reads as zero bits, so a truncated
// frame decodes to a deterministic tail. Stream integrity checking belongs
// to the container parser.
func (d *Decoder) DecodeFrame(input []byte, startOffset int) []float32 {
	r := bits.NewReader(input, startOffset)
	output := make([]float32, SamplesPerFrame)

	// The frame opens with the lag coefficient row and raw lag value for
	// each of the four subframes.
	var subframeLagCoefficients [4][3]float32
	var subframeLag [4]int
	for subframe := 0; subframe < 4; subframe++ {
		subframeLagCoefficients[subframe] = tables.SubframeLagCoefficients[r.GetBits(6)]
		subframeLag[subframe] = int(r.GetBits(7))
	}

	// Next the ten LSF indices, read with decreasing widths towards the
	// later values.
	var lsf [10]float32
	for i := range lsf {
		lsf[i] = tables.LSFTable[i][r.GetBits(tables.LSFIndexBits[i])]
	}

	for subframe := 0; subframe < 4; subframe++ {
		// Interpolate the LSF values across the frame from the
		// previous frame's, where available, and derive this
		// subframe's LPC from them.
		var lpc [synthesisOrder + 1]float32
		if d.prevLSF != nil {
			interpolated := interpolateLSF(d.prevLSF, lsf[:], subframe)
			lpc = lsfToLPC(interpolated[:])
		} else {
			lpc = lsfToLPC(lsf[:])
		}

		// Advance the lag buffer by the 48 samples this subframe will
		// generate.
		copy(d.lag[:], d.lag[SamplesPerSubframe:])

		for value := 0; value < valuesPerSubframe; value++ {
			index := subframe*valuesPerSubframe + value

			// Update the gain energy accumulators, keeping the
			// prior top value for the ratio calculation below.
			initialGainEnergy2 := d.currentGainEnergy[2]
			updateGainEnergy(d.currentGainLevel, d.currentGainLevel, &d.currentGainEnergy)
			updateGainEnergy(d.currentGainLevel, d.previousGainLevel, &d.previousGainEnergy)

			// From the second subframe on, reselect the codebook
			// gain power from the energy ratio at the subframe
			// boundary.
			if subframe != 0 && value == 0 {
				currentEnergy := initialGainEnergy2*0.8836 + d.currentGainEnergy[2]
				previousEnergy := d.previousGainEnergy[2] * 1.88
				d.codebookGainPower = selectGainPower(currentEnergy, previousEnergy)
			}

			// The gain for this value, clamped in the log domain
			// and then taken up to an absolute gain of 1 to 1000.
			codebookGainLevel := d.codebookGainPower * d.currentGainLevel
			if codebookGainLevel < minGainLevel {
				codebookGainLevel = minGainLevel
			}
			if codebookGainLevel > maxGainLevel {
				codebookGainLevel = maxGainLevel
			}
			codebookGain := float32(math.Pow(10, (float64(codebookGainLevel)+32)/20))

			codebookSign := r.Get1Bit() != 0
			codebookIndex := r.GetBits(5)

			// The codebook's delta gain feeds the gain level for
			// the next value, unclamped until it is consumed.
			d.previousGainLevel = d.currentGainLevel
			d.currentGainLevel = codebookGainLevel + tables.CodebookDeltaGain[codebookIndex]

			codebookVector := tables.CodebookVectors[codebookIndex]
			if codebookSign {
				codebookGain = -codebookGain
			}

			// The pitch vector reads three taps from the lag
			// buffer at the decoded lag behind the position this
			// value is about to write.
			writeOffset := lagBufferLength - SamplesPerSubframe + value*samplesPerValue
			readOffset := writeOffset - subframeLag[subframe] - 1
			// The buffer is sized for lags up to 120; a hostile
			// lag would index outside it. Clamp rather than
			// panic; unreachable for valid streams.
			if readOffset < 0 {
				readOffset = 0
			} else if readOffset > lagBufferLength-6 {
				readOffset = lagBufferLength - 6
			}
			coefficients := subframeLagCoefficients[subframe]
			var pitch [samplesPerValue]float32
			for i := 0; i < samplesPerValue; i++ {
				pitch[i] = d.lag[readOffset+i]*coefficients[2] +
					d.lag[readOffset+i+1]*coefficients[1] +
					d.lag[readOffset+i+2]*coefficients[0]
			}

			// Combine the scaled codebook vector with the pitch
			// vector, recording the pre-synthesis values in the
			// lag buffer for later subframes to index.
			var combined [samplesPerValue]float32
			for i := 0; i < samplesPerValue; i++ {
				combined[i] = codebookGain*codebookVector[i] + pitch[i]
				d.lag[writeOffset+i] = combined[i]
			}

			synthesize(&combined, &d.synthesis, &lpc)

			// Emit four samples lagged by one: the sample deferred
			// from the previous value plus the first three just
			// synthesised. The newest carries over into the next
			// value's output (and, for the last value of the
			// frame, into the next frame).
			copy(output[index*samplesPerValue:], d.synthesis[synthesisOrder-5:synthesisOrder-1])
		}
	}

	// Keep this frame's LSF values for interpolation in the next frame.
	d.prevLSF = append(d.prevLSF[:0], lsf[:]...)

	return output
}
