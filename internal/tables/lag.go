package tables

// SubframeLagCoefficients holds the three-tap coefficient rows applied to the
// lag buffer when computing the pitch vector. Element 0 of each row is the
// coefficient for the most recent lag sample, working backwards from there.
// The coefficients are always halved before use and are stored pre-halved.
// A 6-bit index per subframe selects the row.
var SubframeLagCoefficients = [64][3]float32{
	c3(0, 0, 0),
	c3(3003, 4159, 2511),
	c3(9094, 13583, 9435),
	c3(1085, 2590, 547),
	c3(1026, 16932, 14154),
	c3(7930, 8681, 7681),
	c3(8980, 14967, 8031),
	c3(-6636, 27045, 9831),
	c3(4451, 7427, 4779),
	c3(3754, 26088, 2270),
	c3(13508, 17468, 1137),
	c3(14209, 22743, -6722),
	c3(10229, -465, 2310),
	c3(691, 6446, 4087),
	c3(8509, 20397, 3206),
	c3(1364, 7450, 253),
	c3(9787, 24630, -2798),
	c3(6245, 29873, -4916),
	c3(-2042, 27572, 5226),
	c3(3558, 6031, -3291),
	c3(113, -44, 439),
	c3(1975, 15120, 13035),
	c3(8383, 10063, 3112),
	c3(-379, 4135, -1231),
	c3(12715, 15627, 1844),
	c3(3857, 10817, 8170),
	c3(3658, 20477, 7977),
	c3(5127, 7345, 826),
	c3(-1018, 10175, 7433),
	c3(14143, 19889, -5920),
	c3(-5439, 20391, 14773),
	c3(-2345, 21393, 9029),
	c3(-2400, 29370, -344),
	c3(6714, 17917, -3581),
	c3(359, 25499, -2057),
	c3(-8674, 21380, 14614),
	c3(2653, 11153, -2884),
	c3(-4360, 7079, 4791),
	c3(1387, 20492, -12372),
	c3(2408, 2747, 9004),
	c3(-6656, 11479, 1898),
	c3(-1898, 7159, -1626),
	c3(5740, 13561, 2338),
	c3(-1011, 9361, -6838),
	c3(7425, 10840, -1967),
	c3(1674, 11487, 2533),
	c3(-9077, 14205, 8557),
	c3(-1415, 3845, 2438),
	c3(-1938, 12024, -1336),
	c3(3154, 20840, 8119),
	c3(9949, 12255, 9909),
	c3(-3195, 15485, 5113),
	c3(-1646, 9276, 2540),
	c3(-8800, 13880, -7340),
	c3(2550, 15522, 6820),
	c3(-10754, 18685, -2674),
	c3(5963, 11781, -8257),
	c3(14472, 12047, -5293),
	c3(11891, 9821, 10400),
	c3(1747, 19052, 1931),
	c3(6592, 25948, -11065),
	c3(-2812, 17014, -3155),
	c3(5474, -4816, 16360),
	c3(-6565, 6736, -1984),
}

// c3 builds one coefficient row, dividing each value by 2^15.
func c3(a, b, c int32) [3]float32 {
	return [3]float32{
		float32(a) / 32768,
		float32(b) / 32768,
		float32(c) / 32768,
	}
}
