// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

// Compress compresses src as a single unnamed record. opts may be nil
// (default token layout). Inputs containing bytes >= 0x80 are rejected with
// ErrUncompressibleLiteral: the format is 7-bit clean by construction.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	cfg := opts.config()
	if err := checkSevenBit(src); err != nil {
		return nil, err
	}

	ch := acquireNodeChain()
	defer releaseNodeChain(ch)

	ch.init(src, nil, cfg)
	ch.installMatches()

	return ch.serialize(make([]byte, 0, len(src)), nil)
}

// CompressRecords frames the given records (data plus the configured
// terminator each), compresses the framed buffer, and fills every record's
// Length and CompressedOffset. Record starts are anchored: they are never
// swallowed by a preceding match, so each stays independently decodable.
//
// Records with empty data that share their start position with a following
// record receive the sentinel CompressedOffset 0; with Length 0 there is
// nothing to read there.
func CompressRecords(recs []*Record, opts *CompressOptions) ([]byte, error) {
	cfg := opts.config()

	buf, anchors := frameRecords(recs, cfg)
	if err := checkSevenBit(buf); err != nil {
		return nil, err
	}

	ch := acquireNodeChain()
	defer releaseNodeChain(ch)

	ch.init(buf, anchors, cfg)
	ch.installMatches()

	out, err := ch.serialize(make([]byte, 0, len(buf)), recs)
	if err != nil {
		return nil, err
	}

	for _, r := range recs {
		if r.CompressedOffset < 0 && r.Length == 0 {
			r.CompressedOffset = 0
		}
	}

	return out, nil
}

// checkSevenBit rejects inputs the token format cannot represent as literals.
func checkSevenBit(src []byte) error {
	for _, b := range src {
		if b > literalMax {
			return ErrUncompressibleLiteral
		}
	}

	return nil
}
