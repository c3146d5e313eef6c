// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML record input and manifest output. The input shape is a top-level
// sequence of {name, data} mappings where data may be a plain string or a
// !!binary scalar; names may be any scalar (line-record manifests use
// integers).

type yamlRecord struct {
	Name scalarString `yaml:"name"`
	Data byteString   `yaml:"data"`
}

// scalarString accepts any YAML scalar and keeps its text.
type scalarString string

func (s *scalarString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("record name must be a scalar, got %s", value.Tag)
	}

	*s = scalarString(value.Value)
	return nil
}

// byteString accepts either a plain string or a !!binary scalar.
type byteString []byte

func (b *byteString) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	*b = []byte(s)
	return nil
}

// ParseRecords parses a YAML sequence of {name, data} records. Records
// without a data field get empty data; Length and CompressedOffset are filled
// later by CompressRecords.
func ParseRecords(in []byte) ([]*Record, error) {
	var raw []yamlRecord
	if err := yaml.Unmarshal(in, &raw); err != nil {
		return nil, err
	}

	recs := make([]*Record, 0, len(raw))
	for _, yr := range raw {
		recs = append(recs, &Record{
			Name: string(yr.Name),
			Data: []byte(yr.Data),
		})
	}

	return recs, nil
}

// Manifest is the YAML output form: the raw bitstream plus the per-record
// offset/length table.
type Manifest struct {
	Raw              []byte         `yaml:"raw"`
	CompressedLength int            `yaml:"compressed_length"`
	Parts            []ManifestPart `yaml:"parts"`
}

// ManifestPart is one record's manifest entry.
type ManifestPart struct {
	Name             string `yaml:"name"`
	Length           int    `yaml:"length"`
	CompressedOffset int    `yaml:"compressed_offset"`
}

// BuildManifest assembles the manifest for a compressed stream and its
// records.
func BuildManifest(raw []byte, recs []*Record) *Manifest {
	m := &Manifest{
		Raw:              raw,
		CompressedLength: len(raw),
		Parts:            make([]ManifestPart, 0, len(recs)),
	}

	for _, r := range recs {
		m.Parts = append(m.Parts, ManifestPart{
			Name:             r.Name,
			Length:           r.Length,
			CompressedOffset: r.CompressedOffset,
		})
	}

	return m
}

// MarshalYAMLBytes renders the manifest as a YAML document.
func (m *Manifest) MarshalYAMLBytes() ([]byte, error) {
	return yaml.Marshal(m)
}
