package uodecode

// lsfToLPC computes the eleven Linear Prediction Coefficients from ten
// (interpolated) LSF values via a symmetric polynomial expansion. lpc[0] is
// the coefficient for the newly computed output value and is always one.
func lsfToLPC(lsf []float32) [synthesisOrder + 1]float32 {
	var lpc [synthesisOrder + 1]float32
	lpc[0] = 1

	// Each new LSF value becomes the next LPC and is then folded into
	// the previous coefficients pairwise, outermost pair first. Both
	// values of a pair are captured before either is updated.
	for i := 1; i <= len(lsf); i++ {
		f := lsf[i-1]
		lpc[i] = f

		a, b := 1, i-1
		for b >= a {
			fa, fb := lpc[a], lpc[b]
			lpc[a] = f*fb + fa
			lpc[b] = f*fa + fb
			a++
			b--
		}
	}

	return lpc
}

// interpolateLSF blends the previous frame's LSF values with the new
// frame's, stepping 25% towards the new values per subframe:
//
//	subframe 0: 75% old, 25% new
//	subframe 1: 50% old, 50% new
//	subframe 2: 25% old, 75% new
//	subframe 3: 100% new
func interpolateLSF(prev, lsf []float32, subframe int) [10]float32 {
	var result [10]float32
	newRatio := 0.25 * float32(subframe+1)
	oldRatio := 1 - newRatio

	for i := range result {
		result[i] = oldRatio*prev[i] + newRatio*lsf[i]
	}

	return result
}

// synthesize runs the LPC synthesis filter over four new input values and
// the window of the previous ten outputs, then shifts the window and
// appends the four results.
//
// The first line of each output assumes lpc[0] == 1 and skips the multiply.
// The accumulation order is fixed: reordering the sums moves the lowest
// output bits through float non-associativity.
func synthesize(combined *[4]float32, synthesis *[synthesisOrder]float32, lpc *[synthesisOrder + 1]float32) {
	o0 := combined[0]
	for i := 1; i < 11; i++ {
		o0 -= lpc[i] * synthesis[10-i]
	}

	o1 := combined[1]
	o1 -= lpc[1] * o0
	for i := 2; i < 11; i++ {
		o1 -= lpc[i] * synthesis[11-i]
	}

	o2 := combined[2]
	o2 -= lpc[1] * o1
	o2 -= lpc[2] * o0
	for i := 3; i < 11; i++ {
		o2 -= lpc[i] * synthesis[12-i]
	}

	o3 := combined[3]
	o3 -= lpc[1] * o2
	o3 -= lpc[2] * o1
	o3 -= lpc[3] * o0
	for i := 4; i < 11; i++ {
		o3 -= lpc[i] * synthesis[13-i]
	}

	copy(synthesis[:], synthesis[4:])
	synthesis[6] = o0
	synthesis[7] = o1
	synthesis[8] = o2
	synthesis[9] = o3
}
