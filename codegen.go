// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import (
	"fmt"
	"io"
	"strings"
)

// C header emission: per-record OFFSET_/LENGTH_ macros plus the compressed
// payload as a string literal an AVR can keep in program memory.

const headerGuard = "LZJWM_DATA_H"

// codeWriter emits indented source lines, carrying the first write error.
type codeWriter struct {
	w          io.Writer
	indent     int
	lineLength int
	err        error
}

func newCodeWriter(w io.Writer) *codeWriter {
	return &codeWriter{w: w, lineLength: 80}
}

// p writes each argument as an indented line; an empty string yields a bare
// newline.
func (c *codeWriter) p(lines ...string) {
	for _, x := range lines {
		if c.err != nil {
			return
		}

		if x != "" {
			x = strings.Repeat(" ", c.indent) + x
		}
		_, c.err = io.WriteString(c.w, x+"\n")
	}
}

// DName converts a record name to a macro identifier: letters and digits
// uppercased, everything else an underscore.
func DName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

// escapeCByte renders one byte for a C string literal: named escapes for the
// control characters C spells by letter, printable ASCII verbatim, three-digit
// octal otherwise.
func escapeCByte(b byte) string {
	const named = "\a\b\f\n\r\t\v\\\""
	if i := strings.IndexByte(named, b); i >= 0 {
		return "\\" + string("abfnrtv\\\""[i])
	}

	if b >= 0x20 && b < 0x7f {
		return string(b)
	}

	return fmt.Sprintf("\\%03o", b)
}

// stringLiteral emits `static const char name[]<qualifier> = "...";` with the
// data split into concatenated quoted fragments no wider than the line length.
// Escape sequences are never split across fragments.
func (c *codeWriter) stringLiteral(name string, data []byte, qualifier string) {
	var fragments []string
	var line strings.Builder
	for _, b := range data {
		unit := escapeCByte(b)
		if line.Len() > 0 && line.Len()+len(unit) > c.lineLength {
			fragments = append(fragments, line.String())
			line.Reset()
		}
		line.WriteString(unit)
	}
	if line.Len() > 0 {
		fragments = append(fragments, line.String())
	}

	decl := fmt.Sprintf("static const char %s[]%s = ", name, qualifier)
	if len(fragments) == 0 {
		c.p(decl + `"";`)
		return
	}

	c.p(decl)
	c.indent += 4
	for i, f := range fragments {
		tail := ""
		if i == len(fragments)-1 {
			tail = ";"
		}
		c.p(`"` + f + `"` + tail)
	}
	c.indent -= 4
}

// WriteCHeader emits the C header for a compressed stream: the include guard,
// one OFFSET_/LENGTH_ macro pair per record, and the payload literal. progmem
// adds the AVR PROGMEM qualifier so the array stays in flash.
func WriteCHeader(w io.Writer, raw []byte, recs []*Record, progmem bool) error {
	c := newCodeWriter(w)

	c.p("#ifndef "+headerGuard, "#define "+headerGuard, "")

	for _, r := range recs {
		id := DName(r.Name)
		c.p(
			fmt.Sprintf("#define OFFSET_%s %d", id, r.CompressedOffset),
			fmt.Sprintf("#define LENGTH_%s %d", id, r.Length),
			"",
		)
	}

	qualifier := ""
	if progmem {
		qualifier = " PROGMEM"
	}
	c.stringLiteral("lzjwm_data", raw, qualifier)

	c.p("", "#endif")

	return c.err
}
