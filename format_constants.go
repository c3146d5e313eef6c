// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

// Token format constants. Each token is one byte: the high bit discriminates
// literals from backreferences, the remaining seven bits split into an offset
// field and a count field whose widths come from the Config.

const (
	backrefFlag = 0x80 // high bit set marks a backreference token
	literalMax  = 0x7f // largest byte value representable as a literal
)

// Match length bounds.
const (
	minMatch = 2 // a backreference always covers at least two original bytes
)

// Config knob bounds.
const (
	minCountBits = 1
	maxCountBits = 3
	tokenBits    = 7 // countBits + offsetBits; the eighth bit is the discriminator
)
