// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

// CompressOptions configures compression. A nil options value or a nil Config
// uses DefaultConfig.
type CompressOptions struct {
	// Config selects the token layout, no-compress set and record terminator.
	Config *Config
}

// DefaultCompressOptions returns options with the default token layout.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Config: DefaultConfig()}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// Config must describe the layout the stream was compressed with
	// (nil uses DefaultConfig).
	Config *Config
	// Start is the byte offset in the compressed stream to begin decoding at.
	// Seed it with a record's compressed offset for random access.
	Start int
	// OutLen is the number of original bytes to produce. 0 decodes to the end
	// of the stream. When the stream is truncated the decoder delivers what it
	// can; callers compare the result length against OutLen.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options that decode the whole stream from
// the beginning with the default token layout.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{Config: DefaultConfig()}
}

// config resolves the effective configuration for nil-tolerant entry points.
func (o *CompressOptions) config() *Config {
	if o == nil || o.Config == nil {
		return DefaultConfig()
	}

	return o.Config
}

func (o *DecompressOptions) config() *Config {
	if o == nil || o.Config == nil {
		return DefaultConfig()
	}

	return o.Config
}
