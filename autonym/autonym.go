package autonym

import (
	"slices"
	"strings"
)

// Record describes one language. Optional fields are empty when absent.
type Record struct {
	Tag3    string `json:"tag3"`              // ISO 639-3 tag, e.g. "eng"
	Tag1    string `json:"tag1,omitempty"`    // ISO 639-1 tag, e.g. "en"
	Name    string `json:"name"`              // English name
	Autonym string `json:"autonym,omitempty"` // Native name in its own script
	Source  string `json:"source"`            // Provenance of the autonym
}

// DisplayName returns the autonym, falling back to the English name when the
// language has none on record.
func (r Record) DisplayName() string {
	if r.Autonym != "" {
		return r.Autonym
	}
	return r.Name
}

type indexEntry struct {
	key string
	pos uint16
}

// Get returns the record for tag, which may be the ISO 639-1 or the ISO 639-3
// form. Matching is exact: "EN" is not "en".
// The second return value is false if the tag is not in the table.
func Get(tag string) (Record, bool) {
	i, ok := slices.BinarySearchFunc(index[:], tag, func(e indexEntry, key string) int {
		return strings.Compare(e.key, key)
	})
	if !ok {
		return Record{}, false
	}
	return records[index[i].pos], true
}

// Canonical returns the ISO 639-3 form of tag, or false if tag is unknown.
func Canonical(tag string) (string, bool) {
	r, ok := Get(tag)
	if !ok {
		return "", false
	}
	return r.Tag3, true
}

// All returns a copy of every record, ordered by Tag3.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records[:])
	return out
}

// Keys returns every lookup key (both tag forms) in sorted order.
func Keys() []string {
	out := make([]string, len(index))
	for i, e := range index {
		out[i] = e.key
	}
	return out
}
