package uodecode

import "io"

// wavDecoder is the Handler bridging the parser to a decoder and a WAV
// writer.
type wavDecoder struct {
	output  *WAVWriter
	decoder *Decoder
}

func (d *wavDecoder) Reset() {
	d.decoder.Reset()
}

func (d *wavDecoder) Frame(input []byte, offset int) error {
	return d.output.WriteSamples(d.decoder.DecodeFrame(input, offset))
}

// ToPCM16WAV decodes a complete UO stream and writes a signed 16-bit PCM
// WAV file (8 kHz mono) to w.
func ToPCM16WAV(input []byte, w io.Writer) error {
	return toWAV(input, w, NewPCM16WAVWriter)
}

// ToMuLawWAV decodes a complete UO stream and writes a G.711 mu-law WAV
// file (8 kHz mono) to w.
func ToMuLawWAV(input []byte, w io.Writer) error {
	return toWAV(input, w, NewMuLawWAVWriter)
}

func toWAV(input []byte, w io.Writer, newWriter func(io.Writer, int) *WAVWriter) error {
	parser := NewParser(input)
	sampleCount, err := parser.CountSamples()
	if err != nil {
		return err
	}

	output := newWriter(w, sampleCount)
	if err := output.WriteHeader(); err != nil {
		return err
	}
	return parser.Parse(&wavDecoder{output: output, decoder: NewDecoder()})
}
