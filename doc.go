// Package uodecode provides a pure Go decoder for the UO narrowband speech
// codec: CELP-coded 8 kHz mono audio at 16 kbit/s in fixed 24 ms frames.
//
// # Basic Usage
//
// To convert a whole UO file into a 16-bit PCM WAV file:
//
//	input, err := os.ReadFile("speech.uo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var out bytes.Buffer
//	if err := uodecode.ToPCM16WAV(input, &out); err != nil {
//	    log.Fatal(err)
//	}
//
// ToMuLawWAV produces a G.711 mu-law WAV file instead.
//
// # Frame-level API
//
// For access below the container level, decode frames directly:
//
//	dec := uodecode.NewDecoder()
//	samples := dec.DecodeFrame(frame, 0) // 192 samples per 48-byte frame
//
// The decoder keeps synthesis state between frames; call Reset at a stream
// discontinuity. To walk the block structure of a UO stream yourself,
// implement Handler and drive it with a Parser.
//
// Decoded samples are float32 values nominally in the range -1024 to +1024.
// The decoder does not clip; the WAV writers scale by 32 and clamp when
// converting to 16-bit PCM or mu-law.
package uodecode
