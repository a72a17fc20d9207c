package uodecode

import (
	"encoding/binary"
	"fmt"
)

// Handler receives parse events from a Parser: state resets at reset
// blocks, and one Frame call per packed frame encountered.
type Handler interface {
	// Reset is called before the first frame of a reset block.
	Reset()

	// Frame is called with the whole input buffer and the byte offset of
	// a packed frame within it. Returning an error aborts the parse.
	Frame(input []byte, offset int) error
}

// Parser walks the block structure of a UO stream.
//
// A stream is a sequence of blocks, each opening with the 16-bit marker
// 0xFFAA and a 16-bit block type, both little-endian. Full-rate blocks carry
// up to four 48-byte frames; a frame slot that starts with the marker is the
// next block header instead.
type Parser struct {
	input  []byte
	cursor int
}

// NewParser creates a Parser over a complete UO stream.
func NewParser(input []byte) *Parser {
	return &Parser{input: input}
}

// Parse walks the stream from the start, invoking the handler for resets
// and frames. It returns an error for an unknown block type or a missing
// block marker, or the handler's own error if one aborts the parse.
func (p *Parser) Parse(h Handler) error {
	p.cursor = 0
	for p.cursor+6 < len(p.input) {
		word := binary.LittleEndian.Uint16(p.input[p.cursor:])
		if word != blockMarker {
			return fmt.Errorf("uodecode: %w, got %#04x at offset %d", ErrBadBlockMarker, word, p.cursor)
		}

		blockType := BlockType(binary.LittleEndian.Uint16(p.input[p.cursor+2:]))
		switch blockType {
		case BlockTypeFullRateReset:
			// Two extra header bytes beyond the full-rate case,
			// consumed and discarded.
			p.cursor += 6
			h.Reset()
			if err := p.parseFrames(h); err != nil {
				return err
			}
		case BlockTypeFullRate:
			p.cursor += 4
			if err := p.parseFrames(h); err != nil {
				return err
			}
		default:
			return fmt.Errorf("uodecode: %w %#04x at offset %d", ErrUnknownBlockType, uint16(blockType), p.cursor)
		}
	}
	return nil
}

// parseFrames consumes up to four frames from the cursor, stopping early at
// the next block header.
func (p *Parser) parseFrames(h Handler) error {
	for i := 0; i < 4 && p.cursor+4 < len(p.input); i++ {
		if binary.LittleEndian.Uint16(p.input[p.cursor:]) == blockMarker {
			// New block header
			break
		}
		if err := h.Frame(p.input, p.cursor); err != nil {
			return err
		}
		p.cursor += FrameSize
	}
	return nil
}

// sampleCounter is a Handler that tallies the samples a stream decodes to.
type sampleCounter struct {
	samples int
}

func (c *sampleCounter) Reset() {}

func (c *sampleCounter) Frame(input []byte, offset int) error {
	c.samples += SamplesPerFrame
	return nil
}

// CountSamples parses the stream to count the audio samples it will decode
// to, without decoding anything. The WAV writers need the total up front to
// size their headers.
func (p *Parser) CountSamples() (int, error) {
	var counter sampleCounter
	if err := p.Parse(&counter); err != nil {
		return 0, err
	}
	return counter.samples, nil
}
