// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

// Command lzjwm compresses and decompresses lzjwm streams. Inputs can be
// treated as single records, per-line records, or a YAML record list; output
// is the raw bitstream, a YAML manifest, or a generated C header with
// per-record OFFSET_/LENGTH_ macros.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/johnmeacham/lzjwm"
	"github.com/xyproto/env/v2"
)

type options struct {
	compress   bool
	decompress bool
	yamlInput  bool
	lineInput  bool
	unify      bool
	rawNUL     bool // -z: keep NULs uncompressed for downstream scanning
	terminate  bool // -0: NUL terminator after each record
	format     string
	outPath    string
	countBits  int
	zeroBits   int
	verbose    bool
	inputs     []string
}

var errUsage = errors.New("one of -c or -d is required")

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("lzjwm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.compress, "c", false, "compress")
	fs.BoolVar(&opts.decompress, "d", false, "decompress")
	fs.BoolVar(&opts.yamlInput, "y", false, "parse input as a YAML list of {name, data} records")
	fs.BoolVar(&opts.lineInput, "l", false, "treat each line in input as its own record")
	fs.BoolVar(&opts.unify, "s", false, "rearrange and unify identical records for better compression")
	fs.BoolVar(&opts.rawNUL, "z", false, "never compress NUL so it appears unchanged in compressed data (useful for random access)")
	fs.BoolVar(&opts.terminate, "0", false, "append a NUL terminator to each thing compressed")
	fs.BoolVar(&opts.verbose, "v", false, "report sizes on stderr")
	fs.StringVar(&opts.format, "f", env.Str("LZJWM_FORMAT", "raw"), "output format when compressing: raw, yaml, c, c_avr")
	fs.StringVar(&opts.outPath, "o", "", "output file (default stdout)")
	fs.IntVar(&opts.countBits, "b", env.Int("LZJWM_COUNT_BITS", 2), "token count-field width (1-3)")
	fs.IntVar(&opts.zeroBits, "Z", env.Int("LZJWM_ZERO_BITS", 0), "zero-distance count extension bits")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.inputs = fs.Args()

	if opts.compress == opts.decompress {
		fs.Usage()
		return nil, errUsage
	}

	switch opts.format {
	case "raw", "yaml", "c", "c_avr":
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.format)
	}

	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lzjwm:", err)
		os.Exit(1)
	}
}

// namedInput is one input file's contents plus the record name it implies.
type namedInput struct {
	name string
	data []byte
}

func readInputs(opts *options, stdin io.Reader) ([]namedInput, error) {
	if len(opts.inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}

		return []namedInput{{name: "<stdin>", data: data}}, nil
	}

	ins := make([]namedInput, 0, len(opts.inputs))
	for _, path := range opts.inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		ins = append(ins, namedInput{name: path, data: data})
	}

	return ins, nil
}

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := lzjwm.NewConfig(opts.countBits, opts.zeroBits)
	if err != nil {
		return err
	}
	if opts.rawNUL {
		cfg.SetNoCompress(0)
	}
	if opts.terminate {
		if err := cfg.SetTerminator([]byte{0}); err != nil {
			return err
		}
	}

	ins, err := readInputs(opts, stdin)
	if err != nil {
		return err
	}

	out := stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if opts.decompress {
		return runDecompress(opts, cfg, ins, out, stderr)
	}

	return runCompress(opts, cfg, ins, out, stderr)
}

func runDecompress(opts *options, cfg *lzjwm.Config, ins []namedInput, out, stderr io.Writer) error {
	var src []byte
	for _, in := range ins {
		src = append(src, in.data...)
		if opts.terminate {
			src = append(src, 0)
		}
	}

	n, err := lzjwm.DecompressTo(out, src, &lzjwm.DecompressOptions{Config: cfg})
	if err != nil {
		return err
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "lzjwm: %d compressed -> %d bytes\n", len(src), n)
	}

	return nil
}

func runCompress(opts *options, cfg *lzjwm.Config, ins []namedInput, out, stderr io.Writer) error {
	recs, err := gatherRecords(opts, ins)
	if err != nil {
		return err
	}

	compressTarget := recs
	var groups [][]*lzjwm.Record
	if opts.unify {
		compressTarget, groups = lzjwm.DedupRecords(recs)
	}

	raw, err := lzjwm.CompressRecords(compressTarget, &lzjwm.CompressOptions{Config: cfg})
	if err != nil {
		return err
	}

	manifest := compressTarget
	if opts.unify {
		manifest = lzjwm.BackfillDedup(compressTarget, groups)
	}

	if opts.verbose {
		var inputLen int
		for _, r := range manifest {
			inputLen += r.Length
		}
		fmt.Fprintf(stderr, "lzjwm: %d records, %d -> %d bytes\n", len(manifest), inputLen, len(raw))
	}

	switch opts.format {
	case "raw":
		_, err = out.Write(raw)
		return err

	case "yaml":
		doc, err := lzjwm.BuildManifest(raw, manifest).MarshalYAMLBytes()
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err

	default: // c, c_avr
		return lzjwm.WriteCHeader(out, raw, manifest, opts.format == "c_avr")
	}
}

func gatherRecords(opts *options, ins []namedInput) ([]*lzjwm.Record, error) {
	switch {
	case opts.yamlInput:
		var recs []*lzjwm.Record
		for _, in := range ins {
			parsed, err := lzjwm.ParseRecords(in.data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", in.name, err)
			}
			recs = append(recs, parsed...)
		}
		return recs, nil

	case opts.lineInput:
		var joined []byte
		for _, in := range ins {
			joined = append(joined, in.data...)
		}

		var recs []*lzjwm.Record
		for i, line := range splitLines(joined) {
			recs = append(recs, &lzjwm.Record{Name: strconv.Itoa(i), Data: line})
		}
		return recs, nil

	default:
		recs := make([]*lzjwm.Record, 0, len(ins))
		for _, in := range ins {
			recs = append(recs, &lzjwm.Record{Name: in.name, Data: in.data})
		}
		return recs, nil
	}
}

// splitLines splits on \n, \r\n and lone \r without keeping terminators; a
// trailing terminator does not produce an empty final record.
func splitLines(b []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '\n':
			lines = append(lines, b[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, b[start:i])
			if i+1 < len(b) && b[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(b) {
		lines = append(lines, b[start:])
	}

	return lines
}
