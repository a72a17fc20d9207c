package tables

// CodebookVectors holds four consecutive excitation values per codebook
// entry, forming the innovation part of the synthesis input once scaled by
// the codebook gain and sign. One of the 32 rows is chosen by a 5-bit index
// for each of the twelve values within a subframe.
var CodebookVectors = [32][4]float32{
	v4(22121, 15251, -22182, 8509),
	v4(26649, -15167, 4834, -632),
	v4(-11594, 9911, -8591, 9190),
	v4(-2125, -653, 21205, 29253),
	v4(7904, 7263, -16050, -10413),
	v4(3831, 28808, 5596, -29133),
	v4(-9213, 18548, -6515, -1558),
	v4(13657, 20022, 24688, 13796),
	v4(10801, 1688, -7373, 1157),
	v4(8148, -6858, -914, -631),
	v4(2195, -1658, -8843, 5367),
	v4(2494, -4885, -730, 6115),
	v4(2550, 3187, -6035, -4193),
	v4(3413, 8036, -2000, -9696),
	v4(-5193, -2796, -3195, 3049),
	v4(-2872, 3263, 7075, 4588),
	v4(12433, -10905, -17041, 9587),
	v4(12117, -7497, 1951, 4792),
	v4(69, 9261, -9186, 6728),
	v4(4103, 1405, 6634, 12567),
	v4(10913, 3169, 1228, 1750),
	v4(2216, 11248, 7320, -8561),
	v4(764, 8030, 1943, 3537),
	v4(9229, 8364, 9223, 4193),
	v4(6276, -643, -128, -786),
	v4(4878, -5668, 6503, -423),
	v4(2731, 682, -3006, 2809),
	v4(4026, 582, 2227, 4704),
	v4(1744, -2621, 1597, -3),
	v4(3199, -1886, 3758, -5391),
	v4(-1593, 1084, 1869, 2347),
	v4(560, 3429, 782, 179),
}

// CodebookDeltaGain is the gain level delta (on the -32 to +28 logarithmic
// scale) applied after each codebook value, indexed by the same 5-bit
// codebook index as CodebookVectors. It feeds the gain used for the next
// value synthesised, not the current one.
var CodebookDeltaGain = q13(
	105070,
	94805,
	62695,
	105725,
	70090,
	115500,
	69535,
	107755,
	34145,
	19055,
	19030,
	475,
	1835,
	33945,
	-7540,
	10440,
	81100,
	43790,
	41495,
	42360,
	24525,
	47950,
	6845,
	47880,
	-18025,
	13610,
	-35345,
	-15315,
	-59900,
	-5825,
	-59185,
	-59185,
)

// v4 builds one codebook row, dividing each value by 2^12.
func v4(a, b, c, d int32) [4]float32 {
	return [4]float32{
		float32(a) / 4096,
		float32(b) / 4096,
		float32(c) / 4096,
		float32(d) / 4096,
	}
}
