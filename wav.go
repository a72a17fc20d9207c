package uodecode

import (
	"encoding/binary"
	"io"
)

// WAVWriter writes decoded samples to an io.Writer as a WAV file, in a
// sample encoding chosen at construction.
//
// The RIFF sizes are derived from a sample count fixed up front (see
// Parser.CountSamples), so the header can be written before any samples;
// the writer never seeks.
type WAVWriter struct {
	w           io.Writer
	sampleCount int
	enc         sampleEncoder
}

// sampleEncoder converts output samples to one WAV sample format.
type sampleEncoder interface {
	bytesPerSample() int
	// formatChunk returns the body of the "fmt " chunk.
	formatChunk() []byte
	// encode appends the encoded sample to dst. The input range is
	// -1024 to +1024.
	encode(dst []byte, sample float32) []byte
}

// NewPCM16WAVWriter returns a WAVWriter producing a signed 16-bit PCM WAV
// file holding sampleCount samples.
func NewPCM16WAVWriter(w io.Writer, sampleCount int) *WAVWriter {
	return &WAVWriter{w: w, sampleCount: sampleCount, enc: pcm16Encoder{}}
}

// NewMuLawWAVWriter returns a WAVWriter producing a G.711 mu-law WAV file
// holding sampleCount samples.
func NewMuLawWAVWriter(w io.Writer, sampleCount int) *WAVWriter {
	return &WAVWriter{w: w, sampleCount: sampleCount, enc: muLawEncoder{}}
}

// WriteHeader writes the RIFF, fmt, fact and data chunk headers. It must be
// called once, before any WriteSamples call.
func (ww *WAVWriter) WriteHeader() error {
	dataLength := ww.enc.bytesPerSample() * ww.sampleCount
	fmtChunk := ww.enc.formatChunk()

	contentLength := 4 + // WAVE signature
		8 + len(fmtChunk) + // fmt header and chunk
		8 + 4 + // fact header and chunk
		8 + dataLength // data header and chunk

	b := make([]byte, 0, 20+len(fmtChunk)+24)
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(contentLength))
	b = append(b, "WAVE"...)

	b = append(b, "fmt "...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(fmtChunk)))
	b = append(b, fmtChunk...)

	b = append(b, "fact"...)
	b = binary.LittleEndian.AppendUint32(b, 4)
	b = binary.LittleEndian.AppendUint32(b, uint32(ww.sampleCount))

	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(dataLength))

	_, err := ww.w.Write(b)
	return err
}

// WriteSamples encodes and writes a batch of output samples.
func (ww *WAVWriter) WriteSamples(samples []float32) error {
	buf := make([]byte, 0, len(samples)*ww.enc.bytesPerSample())
	for _, s := range samples {
		buf = ww.enc.encode(buf, s)
	}
	_, err := ww.w.Write(buf)
	return err
}

// clampSample16 scales a decoded sample to the 16-bit PCM range and clamps.
func clampSample16(sample float32) int16 {
	sample16 := sample * 0.125 * 256.0
	if sample16 < -32767.0 {
		sample16 = -32767.0
	}
	if sample16 > 32767.0 {
		sample16 = 32767.0
	}
	return int16(sample16)
}

type pcm16Encoder struct{}

func (pcm16Encoder) bytesPerSample() int { return 2 }

func (pcm16Encoder) formatChunk() []byte {
	b := make([]byte, 0, 16)
	b = binary.LittleEndian.AppendUint16(b, 1)          // 1 = PCM
	b = binary.LittleEndian.AppendUint16(b, 1)          // mono
	b = binary.LittleEndian.AppendUint32(b, SampleRate) // sample rate
	b = binary.LittleEndian.AppendUint32(b, 16000)      // average bytes / second
	b = binary.LittleEndian.AppendUint16(b, 2)          // block align
	b = binary.LittleEndian.AppendUint16(b, 16)         // bits per sample
	return b
}

func (pcm16Encoder) encode(dst []byte, sample float32) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(clampSample16(sample)))
}

type muLawEncoder struct{}

func (muLawEncoder) bytesPerSample() int { return 1 }

func (muLawEncoder) formatChunk() []byte {
	b := make([]byte, 0, 18)
	b = binary.LittleEndian.AppendUint16(b, 7)          // 7 = G.711 mu-law
	b = binary.LittleEndian.AppendUint16(b, 1)          // mono
	b = binary.LittleEndian.AppendUint32(b, SampleRate) // sample rate
	b = binary.LittleEndian.AppendUint32(b, 8000)       // average bytes / second
	b = binary.LittleEndian.AppendUint16(b, 1)          // block align
	b = binary.LittleEndian.AppendUint16(b, 8)          // bits per sample
	b = binary.LittleEndian.AppendUint16(b, 0)          // extra format bytes
	return b
}

func (muLawEncoder) encode(dst []byte, sample float32) []byte {
	s16 := clampSample16(sample)
	return append(dst, muLawMap[(int(s16)+32768)>>2])
}
