// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

/*
Package lzjwm implements a byte-oriented dictionary compressor whose output
can be decoded by very small runtimes (the target includes AVR microcontrollers
reading from program memory) and supports random access: any framed record can
be decoded starting at its recorded offset without scanning from the beginning.

Every token is one byte. A clear high bit means a literal (the format is
7-bit clean; inputs with bytes >= 0x80 are rejected); a set high bit means a
backreference that replays earlier tokens of the bitstream itself. With the
default layout the remaining bits split into a 5-bit distance and a 2-bit
count, giving a 32-token window and match lengths 2..5.

# Compress

Options may be nil (default layout):

	out, err := lzjwm.Compress(data, nil)

To frame multiple named records and obtain per-record offsets:

	recs := []*lzjwm.Record{{Name: "greeting", Data: []byte("hello")}}
	out, err := lzjwm.CompressRecords(recs, nil)
	// recs[0].CompressedOffset and recs[0].Length now index into out

# Decompress

Whole stream:

	out, err := lzjwm.Decompress(compressed, nil)

Random access into one record:

	out, err := lzjwm.DecompressRecord(compressed, rec, nil)

# Code generation

WriteCHeader emits OFFSET_/LENGTH_ macros and the payload as a C string
literal, optionally PROGMEM-qualified for AVR targets.
*/
package lzjwm
