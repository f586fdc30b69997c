// Package script maps ISO 639 language tags to the ISO 15924 script the
// language is most commonly written in.
package script

import (
	"slices"
	"strings"
)

// Record holds the default script of one language.
type Record struct {
	Tag3   string `json:"tag3"`
	Tag1   string `json:"tag1,omitempty"`
	Script string `json:"script"` // ISO 15924, title-cased, e.g. "Latn"
	Source string `json:"source"`
}

type indexEntry struct {
	key string
	pos uint16
}

// Get returns the default script record for tag in either ISO 639-1 or
// ISO 639-3 form.
func Get(tag string) (Record, bool) {
	i, ok := slices.BinarySearchFunc(index[:], tag, func(e indexEntry, key string) int {
		return strings.Compare(e.key, key)
	})
	if !ok {
		return Record{}, false
	}
	return records[index[i].pos], true
}

// All returns a copy of every record, ordered by Tag3.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records[:])
	return out
}
