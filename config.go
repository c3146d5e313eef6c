// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

// Config holds the token layout for one compression or decompression run.
// The two knobs are the count-field width and the optional zero-distance
// extension; everything else is derived. A Config is immutable once built
// apart from the no-compress set and the record terminator.
type Config struct {
	countBits    int
	zeroBits     int
	offsetBits   int
	maxOffset    int
	maxMatch     int
	maxZeroMatch int
	zeroOffset   int
	noCompress   [256]bool
	terminator   []byte
}

// NewConfig builds a Config from the count-field width (1..3) and the
// zero-distance extension width. zeroBits > 0 trades 2^zeroBits slots of the
// offset space for longer matches at distance zero.
// Returns ErrConfigOutOfRange when the derived offset space is empty.
func NewConfig(countBits, zeroBits int) (*Config, error) {
	if countBits < minCountBits || countBits > maxCountBits {
		return nil, ErrConfigOutOfRange
	}

	if zeroBits < 0 {
		return nil, ErrConfigOutOfRange
	}

	c := &Config{
		countBits:    countBits,
		zeroBits:     zeroBits,
		offsetBits:   tokenBits - countBits,
		maxMatch:     1<<countBits + 1,
		maxZeroMatch: 1<<(countBits+zeroBits) + 1,
	}
	c.maxOffset = 1 << c.offsetBits
	if zeroBits > 0 {
		c.maxOffset -= 1 << zeroBits
		c.zeroOffset = 1
	}

	if c.maxOffset <= 0 {
		return nil, ErrConfigOutOfRange
	}

	return c, nil
}

// DefaultConfig returns the default token layout: 1 discriminator bit,
// 5 offset bits, 2 count bits (window 32, match lengths 2..5).
func DefaultConfig() *Config {
	c, err := NewConfig(2, 0)
	if err != nil {
		panic("lzjwm: default config invalid: " + err.Error())
	}

	return c
}

// MaxMatchFor returns the longest match representable at the given token
// distance: the extended zero-distance cap at distance 0 when zeroBits > 0,
// the plain cap otherwise.
func (c *Config) MaxMatchFor(distance int) int {
	if distance == 0 && c.zeroBits > 0 {
		return c.maxZeroMatch
	}

	return c.maxMatch
}

// MaxOffset returns the backreference window size in tokens.
func (c *Config) MaxOffset() int { return c.maxOffset }

// SetNoCompress marks byte values that must never be covered by a match.
// They always appear verbatim in the bitstream, which keeps them scannable
// for downstream random access.
func (c *Config) SetNoCompress(vals ...byte) {
	for _, v := range vals {
		c.noCompress[v] = true
	}
}

// SetTerminator sets the 0- or 1-byte sequence appended after each framed
// record. Longer terminators return ErrConfigOutOfRange.
func (c *Config) SetTerminator(term []byte) error {
	if len(term) > 1 {
		return ErrConfigOutOfRange
	}

	c.terminator = append([]byte(nil), term...)
	return nil
}
