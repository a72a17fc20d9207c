package tables

// LSFIndexBits is the number of index bits to read for each successive
// LSFTable row. The first rows have 64 possible values, the last only 8;
// 46 bits in total. One full set of LSF indices is read per frame.
var LSFIndexBits = [10]uint{6, 6, 5, 5, 4, 4, 4, 4, 3, 3}

// LSFTable holds the quantized Line Spectral Frequency value for each index
// of each of the ten LSF slots. The earlier slots correspond to the
// prediction from the most recent samples and so carry larger magnitudes and
// finer quantization.
var LSFTable = [10][]float32{
	q15(-32651, -32558, -32463, -32362, -32261, -32161, -32058, -31943,
		-31816, -31677, -31531, -31389, -31234, -31071, -30911, -30741,
		-30552, -30335, -30131, -29915, -29676, -29416, -29148, -28871,
		-28593, -28268, -27958, -27632, -27281, -26901, -26512, -26096,
		-25605, -25117, -24633, -24121, -23563, -23003, -22372, -21690,
		-20979, -20253, -19276, -18367, -17267, -16162, -15004, -13717,
		-12312, -10748, -8971, -7125, -5457, -3372, -1592, 174,
		2622, 5094, 7534, 9871, 12724, 15773, 19324, 24116),

	q15(-26896, -22124, -18432, -15256, -12751, -10739, -8930, -7448,
		-6169, -5088, -4017, -3043, -2043, -1127, -177, 593,
		1369, 2158, 2978, 3822, 4686, 5531, 6430, 7327,
		8113, 9005, 9834, 10674, 11488, 12282, 13062, 13936,
		14709, 15482, 16211, 16917, 17705, 18429, 19186, 19888,
		20505, 21162, 21837, 22498, 23050, 23600, 24150, 24657,
		25176, 25699, 26175, 26660, 27133, 27617, 28084, 28574,
		29042, 29513, 29965, 30380, 30798, 31250, 31749, 32653),

	q15(-27245, -25062, -23511, -22105, -20835, -19700, -18618, -17528,
		-16401, -15323, -14353, -13347, -12367, -11374, -10311, -9213,
		-8120, -6994, -5799, -4628, -3467, -2292, -1075, 229,
		1837, 3545, 5198, 6876, 9008, 11430, 14471, 18699),

	q15(-16768, -11510, -8351, -5721, -3640, -1877, -360, 953,
		2142, 3245, 4358, 5421, 6471, 7435, 8430, 9452,
		10460, 11482, 12488, 13538, 14559, 15574, 16670, 17779,
		18959, 20008, 21092, 22355, 23659, 25210, 26952, 28709),

	q15(-21421, -17381, -14380, -11962, -9878, -7929, -6147, -4417,
		-2648, -832, 999, 3151, 5634, 8570, 12739, 19532),

	q15(-9634, -5007, -1968, 390, 2426, 4040, 5534, 7026,
		8462, 9971, 11439, 13122, 15009, 17233, 19802, 23045),

	q15(-20451, -17085, -14483, -12014, -9734, -7827, -6140, -4573,
		-2997, -1445, 141, 1890, 3981, 6436, 9373, 13642),

	q15(-12322, -8437, -5747, -3591, -1824, -328, 1032, 2374,
		3614, 4945, 6266, 7773, 9511, 11663, 14247, 18179),

	q15(-17094, -12340, -8649, -5469, -2609, 226, 3473, 8085),

	q15(-8037, -3630, -698, 1720, 4053, 6449, 9144, 12718),
}
