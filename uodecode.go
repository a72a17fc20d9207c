package uodecode

// UO stream format parameters.
const (
	// SampleRate is the output sample rate in Hz. UO streams are always
	// 8 kHz mono.
	SampleRate = 8000

	// FrameSize is the size of a packed full-rate frame in bytes.
	FrameSize = 48

	// SamplesPerFrame is the number of samples decoded from one frame,
	// covering 24 ms of audio.
	SamplesPerFrame = 192

	// SamplesPerSubframe is the number of samples per subframe. A frame
	// holds four subframes, each with its own pitch lag and interpolated
	// filter coefficients.
	SamplesPerSubframe = 48
)

// BlockType identifies a UO container block.
type BlockType uint16

// Block types. Any other value in a block header is a stream error.
const (
	// BlockTypeFullRate is a full-rate block: a 4-byte header followed by
	// up to four packed frames.
	BlockTypeFullRate BlockType = 0x0040

	// BlockTypeFullRateReset is a full-rate block that resets decoder
	// state: a 6-byte header followed by up to four packed frames.
	BlockTypeFullRateReset BlockType = 0x0140
)

// blockMarker is the 16-bit word that precedes every block header. A frame
// slot starting with this word is the next block header, not a frame.
const blockMarker = 0xFFAA
