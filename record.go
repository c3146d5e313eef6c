// SPDX-License-Identifier: MIT
// Source: github.com/johnmeacham/lzjwm

package lzjwm

import "sort"

// Record is one named payload inside a framed stream. Data feeds compression;
// Length and CompressedOffset form the out-of-band manifest consumers use for
// random access.
type Record struct {
	Name             string
	Data             []byte
	Length           int
	CompressedOffset int
}

// frameRecords concatenates record data with the configured terminator after
// each, resetting per-record manifest fields and recording each record's
// start position in the anchor map. Later records win anchor collisions
// (possible only when an empty record is followed by another at the same
// position), matching the sentinel handling in CompressRecords.
func frameRecords(recs []*Record, cfg *Config) (buf []byte, anchors map[int]int) {
	anchors = make(map[int]int, len(recs))

	for i, r := range recs {
		r.Length = len(r.Data)
		r.CompressedOffset = -1
		anchors[len(buf)] = i
		buf = append(buf, r.Data...)
		buf = append(buf, cfg.terminator...)
	}

	return buf, anchors
}

// DedupRecords groups records with identical data and orders the groups by
// data. It returns one representative record per group plus the group members
// in the same order; compress the representatives, then call BackfillDedup to
// spread the results. Sharing one blob across duplicates is what makes
// OFFSET_FOO == OFFSET_BAR for identical payloads.
func DedupRecords(recs []*Record) (reps []*Record, groups [][]*Record) {
	byData := make(map[string][]*Record)
	for _, r := range recs {
		key := string(r.Data)
		byData[key] = append(byData[key], r)
	}

	keys := make([]string, 0, len(byData))
	for k := range byData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		members := byData[k]
		reps = append(reps, &Record{Name: members[0].Name, Data: []byte(k)})
		groups = append(groups, members)
	}

	return reps, groups
}

// BackfillDedup copies each representative's compressed offset and length to
// every member of its group and returns the flattened manifest in group
// order.
func BackfillDedup(reps []*Record, groups [][]*Record) []*Record {
	var out []*Record
	for i, members := range groups {
		for _, m := range members {
			m.Length = reps[i].Length
			m.CompressedOffset = reps[i].CompressedOffset
			out = append(out, m)
		}
	}

	return out
}
