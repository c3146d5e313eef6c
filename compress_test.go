package lzjwm

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0x41}},
		{name: "short-text", data: []byte("hello world, lzjwm test")},
		{name: "ababab", data: []byte("ababab")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 200)},
		{name: "long-run", data: bytes.Repeat([]byte{'a'}, 1200)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}, 120)},
		{name: "sentence", data: []byte("the quick brown fox jumps over the lazy dog the quick brown fox")},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) > len(in.data) {
				t.Fatalf("compressed output longer than input: %d > %d", len(cmp), len(in.data))
			}

			out, err := Decompress(cmp, nil)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) && !(len(out) == 0 && len(in.data) == 0) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompressDecompress_RoundTripAcrossConfigs(t *testing.T) {
	configs := []struct {
		countBits int
		zeroBits  int
	}{
		{countBits: 1, zeroBits: 0},
		{countBits: 2, zeroBits: 0},
		{countBits: 3, zeroBits: 0},
		{countBits: 2, zeroBits: 2},
		{countBits: 1, zeroBits: 3},
	}

	for _, in := range testInputSet() {
		for _, cc := range configs {
			name := fmt.Sprintf("%s/count-%d-zero-%d", in.name, cc.countBits, cc.zeroBits)
			t.Run(name, func(t *testing.T) {
				cfg, err := NewConfig(cc.countBits, cc.zeroBits)
				if err != nil {
					t.Fatalf("NewConfig failed: %v", err)
				}

				cmp, err := Compress(in.data, &CompressOptions{Config: cfg})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				out, err := Decompress(cmp, &DecompressOptions{Config: cfg})
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) && !(len(out) == 0 && len(in.data) == 0) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}
			})
		}
	}
}

func TestCompress_Ababab(t *testing.T) {
	cmp, err := Compress([]byte("ababab"), nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if len(cmp) > 4 {
		t.Fatalf("compressed length = %d, want <= 4", len(cmp))
	}
	if cmp[0] != 'a' || cmp[1] != 'b' {
		t.Fatalf("stream must open with literal a, b: % x", cmp[:2])
	}
	for _, tok := range cmp[2:] {
		if tok&backrefFlag == 0 {
			t.Fatalf("expected backreference tokens after the literals: % x", cmp)
		}
	}
}

func TestCompress_LongRun(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 32)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if cmp[0] != 'a' {
		t.Fatalf("first token = %#x, want literal 'a'", cmp[0])
	}
	// One literal plus ceil(31/5) backreferences at most.
	if len(cmp) > 8 {
		t.Fatalf("compressed length = %d, want <= 8", len(cmp))
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch")
	}
}

func TestCompress_NoCompressKeepsNULsLiteral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetNoCompress(0)

	data := make([]byte, 10)
	cmp, err := Compress(data, &CompressOptions{Config: cfg})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !bytes.Equal(cmp, data) {
		t.Fatalf("NUL bytes must pass through as literals: % x", cmp)
	}
}

func TestCompress_RejectsHighBitInput(t *testing.T) {
	_, err := Compress([]byte{'a', 0x80, 'b'}, nil)
	if !errors.Is(err, ErrUncompressibleLiteral) {
		t.Fatalf("expected ErrUncompressibleLiteral, got %v", err)
	}

	_, err = CompressRecords([]*Record{{Name: "r", Data: []byte{0xff}}}, nil)
	if !errors.Is(err, ErrUncompressibleLiteral) {
		t.Fatalf("records: expected ErrUncompressibleLiteral, got %v", err)
	}
}

func TestCompressRecords_RandomAccess(t *testing.T) {
	recs := []*Record{
		{Name: "0", Data: []byte("hello")},
		{Name: "1", Data: []byte("hello")},
		{Name: "2", Data: []byte("hello")},
	}

	cmp, err := CompressRecords(recs, nil)
	if err != nil {
		t.Fatalf("CompressRecords failed: %v", err)
	}

	for _, r := range recs {
		if r.Length != 5 {
			t.Fatalf("record %s length = %d, want 5", r.Name, r.Length)
		}

		out, err := DecompressRecord(cmp, r, nil)
		if err != nil {
			t.Fatalf("DecompressRecord(%s) failed: %v", r.Name, err)
		}
		if string(out) != "hello" {
			t.Fatalf("record %s decoded to %q", r.Name, out)
		}
	}
}

func TestCompressRecords_Terminator(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.SetTerminator([]byte{0}); err != nil {
		t.Fatalf("SetTerminator failed: %v", err)
	}
	cfg.SetNoCompress(0)

	recs := []*Record{
		{Name: "a", Data: []byte("one")},
		{Name: "b", Data: []byte("two")},
	}

	cmp, err := CompressRecords(recs, &CompressOptions{Config: cfg})
	if err != nil {
		t.Fatalf("CompressRecords failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, []byte("one\x00two\x00")) {
		t.Fatalf("framed stream decoded to %q", out)
	}
}

func TestCompressRecords_ZeroLengthSentinel(t *testing.T) {
	recs := []*Record{
		{Name: "empty", Data: nil},
		{Name: "body", Data: []byte("body")},
	}

	cmp, err := CompressRecords(recs, nil)
	if err != nil {
		t.Fatalf("CompressRecords failed: %v", err)
	}

	if recs[0].CompressedOffset != 0 || recs[0].Length != 0 {
		t.Fatalf("empty record = %+v, want sentinel offset 0", recs[0])
	}

	out, err := DecompressRecord(cmp, recs[0], nil)
	if err != nil {
		t.Fatalf("DecompressRecord(empty) failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("empty record decoded %d bytes", len(out))
	}

	body, err := DecompressRecord(cmp, recs[1], nil)
	if err != nil {
		t.Fatalf("DecompressRecord(body) failed: %v", err)
	}
	if string(body) != "body" {
		t.Fatalf("body decoded to %q", body)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(2))
	f.Add([]byte("hello world hello world"), uint8(2))
	f.Add(bytes.Repeat([]byte("ab"), 300), uint8(1))
	f.Add(bytes.Repeat([]byte{'x'}, 1024), uint8(3))

	f.Fuzz(func(t *testing.T, data []byte, countBits uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}
		// The format is 7-bit clean; fold fuzz input into range.
		masked := make([]byte, len(data))
		for i, b := range data {
			masked[i] = b & 0x7f
		}

		cfg, err := NewConfig(int(countBits%3)+1, 0)
		if err != nil {
			t.Fatalf("NewConfig failed: %v", err)
		}

		cmp, err := Compress(masked, &CompressOptions{Config: cfg})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, &DecompressOptions{Config: cfg})
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, masked) && len(masked) > 0 {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(masked))
		}
	})
}
