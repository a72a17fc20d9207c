package uodecode

import (
	"bytes"
	"testing"
)

func TestWAVWriter_PCM16Header(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPCM16WAVWriter(&buf, 192).WriteHeader(); err != nil {
		t.Fatalf("WriteHeader error: %v", err)
	}

	want := []byte{
		'R', 'I', 'F', 'F',
		0xB0, 0x01, 0x00, 0x00, // content length: 432
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		0x10, 0x00, 0x00, 0x00, // fmt chunk length: 16
		0x01, 0x00, // PCM
		0x01, 0x00, // mono
		0x40, 0x1F, 0x00, 0x00, // 8000 Hz
		0x80, 0x3E, 0x00, 0x00, // 16000 bytes/s
		0x02, 0x00, // block align
		0x10, 0x00, // 16 bits per sample
		'f', 'a', 'c', 't',
		0x04, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, // 192 samples
		'd', 'a', 't', 'a',
		0x80, 0x01, 0x00, 0x00, // data length: 384
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("PCM16 header =\n% x\nwant\n% x", buf.Bytes(), want)
	}
}

func TestWAVWriter_MuLawHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMuLawWAVWriter(&buf, 192).WriteHeader(); err != nil {
		t.Fatalf("WriteHeader error: %v", err)
	}

	want := []byte{
		'R', 'I', 'F', 'F',
		0xF2, 0x00, 0x00, 0x00, // content length: 242
		'W', 'A', 'V', 'E',
		'f', 'm', 't', ' ',
		0x12, 0x00, 0x00, 0x00, // fmt chunk length: 18
		0x07, 0x00, // G.711 mu-law
		0x01, 0x00, // mono
		0x40, 0x1F, 0x00, 0x00, // 8000 Hz
		0x40, 0x1F, 0x00, 0x00, // 8000 bytes/s
		0x01, 0x00, // block align
		0x08, 0x00, // 8 bits per sample
		0x00, 0x00, // no extra format bytes
		'f', 'a', 'c', 't',
		0x04, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, // 192 samples
		'd', 'a', 't', 'a',
		0xC0, 0x00, 0x00, 0x00, // data length: 192
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("mu-law header =\n% x\nwant\n% x", buf.Bytes(), want)
	}
}

func TestClampSample16(t *testing.T) {
	tests := []struct {
		sample float32
		want   int16
	}{
		{0, 0},
		{1, 32},
		{-1, -32},
		{1023.96875, 32767}, // just inside the clamp
		{1024, 32767},       // 32768 clamps down
		{-1024, -32767},     // symmetric clamp, never -32768
		{2000, 32767},       // far out of range
		{-2000, -32767},
		{0.01, 0}, // fractions truncate towards zero
	}

	for _, tt := range tests {
		if got := clampSample16(tt.sample); got != tt.want {
			t.Errorf("clampSample16(%v) = %d, want %d", tt.sample, got, tt.want)
		}
	}
}

func TestWAVWriter_PCM16SampleEncoding(t *testing.T) {
	var buf bytes.Buffer
	ww := NewPCM16WAVWriter(&buf, 4)

	if err := ww.WriteSamples([]float32{0, 1, -1, 1024}); err != nil {
		t.Fatalf("WriteSamples error: %v", err)
	}

	want := []byte{
		0x00, 0x00, // 0
		0x20, 0x00, // 32
		0xE0, 0xFF, // -32
		0xFF, 0x7F, // clamped to 32767
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("PCM16 samples = % x, want % x", buf.Bytes(), want)
	}
}

func TestWAVWriter_MuLawSampleEncoding(t *testing.T) {
	var buf bytes.Buffer
	ww := NewMuLawWAVWriter(&buf, 3)

	// 0 maps through the bias to the mu-law zero code; the extremes land
	// in the loudest bands.
	if err := ww.WriteSamples([]float32{0, 1024, -1024}); err != nil {
		t.Fatalf("WriteSamples error: %v", err)
	}

	want := []byte{0xFF, 0x80, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("mu-law samples = % x, want % x", buf.Bytes(), want)
	}
}
