// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrConfigOutOfRange is returned when count bits are outside 1..3, zero bits
	// are negative or large enough to consume the whole offset space, or a
	// terminator longer than one byte is requested.
	ErrConfigOutOfRange = errors.New("config out of range")
	// ErrUncompressibleLiteral is returned when the input contains a byte >= 0x80.
	// The token format reserves the high bit for the backreference discriminator,
	// so literals must be 7-bit clean.
	ErrUncompressibleLiteral = errors.New("input byte not representable as literal")
	// ErrMatchOverflow is returned when a serialized backreference would exceed
	// its token field widths. It indicates a compressor bug, not bad input.
	ErrMatchOverflow = errors.New("internal compressor error: match overflows token")
	// ErrMalformedBitstream is returned when a backreference targets a position
	// before the start of the compressed stream. The encoder never produces such
	// tokens.
	ErrMalformedBitstream = errors.New("malformed bitstream: backreference before start")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
