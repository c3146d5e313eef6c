package lzjwm

import (
	"bytes"
	"fmt"
	"testing"
)

// Regression corpus exercising the record path end to end: every record must
// decode independently from its compressed offset, and the results must agree
// with a single linear decode of the whole stream.

func regressionCorpus() map[string][][]byte {
	return map[string][][]byte{
		"greetings": {
			[]byte("hello"),
			[]byte("hello"),
			[]byte("hello world"),
		},
		"menu": {
			[]byte("Start Game"),
			[]byte("Load Game"),
			[]byte("Save Game"),
			[]byte("Options"),
			[]byte("Quit"),
		},
		"mixed-sizes": {
			[]byte{},
			[]byte("x"),
			bytes.Repeat([]byte("pattern "), 40),
			[]byte("tail"),
		},
		"runs": {
			bytes.Repeat([]byte{'a'}, 100),
			bytes.Repeat([]byte{'b'}, 3),
			bytes.Repeat([]byte{'a'}, 50),
		},
	}
}

func regressionConfigs(t *testing.T) map[string]*Config {
	t.Helper()

	plain := DefaultConfig()

	nulTerm := DefaultConfig()
	nulTerm.SetNoCompress(0)
	if err := nulTerm.SetTerminator([]byte{0}); err != nil {
		t.Fatalf("SetTerminator failed: %v", err)
	}

	wide, err := NewConfig(3, 0)
	if err != nil {
		t.Fatalf("NewConfig(3, 0) failed: %v", err)
	}

	ext, err := NewConfig(2, 2)
	if err != nil {
		t.Fatalf("NewConfig(2, 2) failed: %v", err)
	}

	return map[string]*Config{
		"default":        plain,
		"nul-terminated": nulTerm,
		"count-3":        wide,
		"zero-extended":  ext,
	}
}

func TestRegression_RecordsDecodeBothWays(t *testing.T) {
	for corpusName, blobs := range regressionCorpus() {
		for cfgName, cfg := range regressionConfigs(t) {
			t.Run(fmt.Sprintf("%s/%s", corpusName, cfgName), func(t *testing.T) {
				recs := make([]*Record, len(blobs))
				var framed []byte
				for i, b := range blobs {
					recs[i] = &Record{Name: fmt.Sprint(i), Data: b}
					framed = append(framed, b...)
					framed = append(framed, cfg.terminator...)
				}

				cmp, err := CompressRecords(recs, &CompressOptions{Config: cfg})
				if err != nil {
					t.Fatalf("CompressRecords failed: %v", err)
				}

				// Linear decode reproduces the whole framed buffer.
				linear, err := Decompress(cmp, &DecompressOptions{Config: cfg})
				if err != nil {
					t.Fatalf("linear Decompress failed: %v", err)
				}
				if !bytes.Equal(linear, framed) {
					t.Fatalf("linear decode mismatch: got=%d want=%d bytes", len(linear), len(framed))
				}

				// Random access agrees with the linear decode per record.
				for i, r := range recs {
					out, err := DecompressRecord(cmp, r, cfg)
					if err != nil {
						t.Fatalf("DecompressRecord(%d) failed: %v", i, err)
					}
					if !bytes.Equal(out, blobs[i]) && len(blobs[i]) > 0 {
						t.Fatalf("record %d decoded %q, want %q", i, out, blobs[i])
					}
				}
			})
		}
	}
}

func TestRegression_DedupManifestDecodes(t *testing.T) {
	recs := []*Record{
		{Name: "a", Data: []byte("shared blob")},
		{Name: "b", Data: []byte("unique one")},
		{Name: "c", Data: []byte("shared blob")},
		{Name: "d", Data: []byte("")},
	}

	reps, groups := DedupRecords(recs)
	cmp, err := CompressRecords(reps, nil)
	if err != nil {
		t.Fatalf("CompressRecords failed: %v", err)
	}

	want := map[string][]byte{
		"a": []byte("shared blob"),
		"b": []byte("unique one"),
		"c": []byte("shared blob"),
		"d": {},
	}

	for _, r := range BackfillDedup(reps, groups) {
		out, err := DecompressRecord(cmp, r, nil)
		if err != nil {
			t.Fatalf("DecompressRecord(%s) failed: %v", r.Name, err)
		}
		if !bytes.Equal(out, want[r.Name]) && len(want[r.Name]) > 0 {
			t.Fatalf("record %s decoded %q, want %q", r.Name, out, want[r.Name])
		}
	}
}
