package uodecode

import "testing"

func TestMuLawMap_SpecialCodes(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  byte
	}{
		{"zero", 8192, 0xFF},
		{"minus one", 8191, 0x7F},
		{"most negative", 0, 0x00},
		{"most positive", 16383, 0x80},
		{"top of positive range", 8192 + 8158, 0x80},
		{"bottom of negative range", 8192 - 8159, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := muLawMap[tt.index]; got != tt.want {
				t.Errorf("muLawMap[%d] = %#02x, want %#02x", tt.index, got, tt.want)
			}
		})
	}
}

func TestMuLawMap_BandBoundaries(t *testing.T) {
	tests := []struct {
		linear int // signed 14-bit value
		want   byte
	}{
		{8158, 0x80},  // loudest positive band starts here
		{7903, 0x80},  // last value of the first 256-wide interval
		{7902, 0x81},  // next interval
		{4063, 0x8F},  // bottom of the 256-wide bands
		{4062, 0x90},  // first 128-wide band
		{2, 0xFE},     // quietest positive interval covers +2..+1
		{1, 0xFE},
		{-2, 0x7E},    // quietest negative interval covers -3..-2
		{-3, 0x7E},
		{-8159, 0x00}, // most negative band
		{-4064, 0x0F},
		{-4063, 0x10},
	}

	for _, tt := range tests {
		if got := muLawMap[tt.linear+8192]; got != tt.want {
			t.Errorf("muLawMap for linear %d = %#02x, want %#02x", tt.linear, got, tt.want)
		}
	}
}

func TestMuLawMap_EveryEntryWritten(t *testing.T) {
	// The map covers the whole 14-bit biased range with no gaps: every
	// positive entry above the zero point carries a code with the sign
	// bit pattern of the positive half (high bit set).
	for i := 8192; i < len(muLawMap); i++ {
		if muLawMap[i]&0x80 == 0 {
			t.Fatalf("muLawMap[%d] = %#02x, positive half must have the high bit set", i, muLawMap[i])
		}
	}
	for i := 0; i < 8192; i++ {
		if muLawMap[i]&0x80 != 0 {
			t.Fatalf("muLawMap[%d] = %#02x, negative half must have the high bit clear", i, muLawMap[i])
		}
	}
}
