// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import (
	"io"
	"math"
)

// Decompress decodes src starting at opts.Start and returns the original
// bytes. opts may be nil (whole stream, default layout). A truncated stream
// is not an error: the decoder returns what it produced and callers compare
// the length against the expected size. Returns ErrMalformedBitstream when a
// backreference targets a position before the start of the stream.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	cfg := opts.config()

	start, needed := 0, math.MaxInt
	if opts != nil {
		start = opts.Start
		if opts.OutLen > 0 {
			needed = opts.OutLen
		}
	}

	var dst []byte
	if needed != math.MaxInt {
		dst = make([]byte, 0, needed)
	} else {
		dst = make([]byte, 0, len(src))
	}

	return decompressCore(src, dst, start, needed, cfg)
}

// DecompressRecord decodes one framed record by seeding the decoder with its
// compressed offset and length. A zero-length record decodes to nothing
// without touching its offset (which may be the sentinel 0).
func DecompressRecord(src []byte, rec *Record, cfg *Config) ([]byte, error) {
	if rec.Length == 0 {
		return []byte{}, nil
	}

	return Decompress(src, &DecompressOptions{
		Config: cfg,
		Start:  rec.CompressedOffset,
		OutLen: rec.Length,
	})
}

// DecompressTo decodes like Decompress but writes the produced bytes to w,
// returning the count of original bytes delivered.
func DecompressTo(w io.Writer, src []byte, opts *DecompressOptions) (int, error) {
	out, err := Decompress(src, opts)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(out)
	return n, err
}

// continuation saves the decoder position and remaining budget across a
// nested backreference expansion.
type continuation struct {
	retPos        int // stream position to resume at
	baseNeeded    int // budget before entering the expansion
	startProduced int // bytes produced before entering the expansion
}

// decompressCore is the one-byte-at-a-time decoder. A literal token is
// emitted verbatim; a backreference replays tokens from an earlier stream
// position. When the remaining budget exceeds the backreference's count the
// expansion is entered with its own budget and a continuation is pushed;
// when the budget fits inside the count the decoder tail-continues by
// jumping to the replay position, which is what makes prefix decodes cheap.
//
// The continuation stack replaces recursion. Each nested budget is strictly
// smaller than the one above it, so the depth is bounded by the largest
// match length even for adversarial streams.
func decompressCore(src, dst []byte, start, needed int, cfg *Config) ([]byte, error) {
	if start < 0 {
		return dst, ErrMalformedBitstream
	}

	var stack []continuation
	pos := start
	produced := 0

	for {
		if needed <= 0 || pos >= len(src) {
			if len(stack) == 0 {
				break
			}

			// The expansion delivered produced-startProduced bytes (short
			// only if the stream ran out); resume the outer token walk.
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pos = f.retPos
			needed = f.baseNeeded - (produced - f.startProduced)
			continue
		}

		ch := src[pos]
		pos++

		if ch&backrefFlag == 0 {
			dst = append(dst, ch)
			produced++
			needed--
			continue
		}

		back, count := cfg.unpackBackref(ch)
		target := pos - back - 2
		if target < 0 {
			return dst, ErrMalformedBitstream
		}

		if needed > count {
			stack = append(stack, continuation{retPos: pos, baseNeeded: needed, startProduced: produced})
			pos = target
			needed = count
		} else {
			pos = target
		}
	}

	return dst, nil
}
