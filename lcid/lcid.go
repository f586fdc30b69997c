// Package lcid resolves (language, script, region) combinations to Microsoft
// Locale Identifiers and back.
//
// Records are stored ordered by (Tag3, Script, Region) and looked up by binary
// search; the reverse lookup uses a second index ordered by LCID value.
package lcid

import (
	"cmp"
	"slices"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/internal/lcidkey"
)

// Record is one registered locale. Empty Tag1, Script or Region mean absent.
type Record struct {
	Tag3   string `json:"tag3"`
	Tag1   string `json:"tag1,omitempty"`
	Script string `json:"script,omitempty"`
	Region string `json:"region,omitempty"`
	LCID   uint32 `json:"lcid"`
}

// Key returns the composite key the table is ordered by.
func (r Record) Key() lcidkey.Key {
	return lcidkey.Key{Tag3: r.Tag3, Script: r.Script, Region: r.Region}
}

// Tag renders the record as a BCP 47 style tag using the shortest language
// form, e.g. "en-US" or "sr-Latn-RS".
func (r Record) Tag() string {
	k := r.Key()
	if r.Tag1 != "" {
		k.Tag3 = r.Tag1
	}
	return k.String()
}

// Get returns the record registered for tag, script and region. tag may be
// in ISO 639-1 or ISO 639-3 form; it is canonicalised through the autonym
// table first. script and region are compared byte for byte and must use the
// casing of the data ("Latn", "US", "419"); pass "" for absent.
func Get(tag, script, region string) (Record, bool) {
	tag3, ok := autonym.Canonical(tag)
	if !ok {
		return Record{}, false
	}
	key := lcidkey.Key{Tag3: tag3, Script: script, Region: region}
	i, ok := slices.BinarySearchFunc(records[:], key, func(r Record, k lcidkey.Key) int {
		return lcidkey.Compare(r.Key(), k)
	})
	if !ok {
		return Record{}, false
	}
	return records[i], true
}

// GetByLCID returns the record whose LCID equals value. When several records
// share a value the one with the smallest composite key is returned.
func GetByLCID(value uint32) (Record, bool) {
	i, ok := slices.BinarySearchFunc(byValue[:], value, func(pos uint16, v uint32) int {
		return cmp.Compare(records[pos].LCID, v)
	})
	if !ok {
		return Record{}, false
	}
	return records[byValue[i]], true
}

// ForLanguage returns every record of the given language, in table order.
func ForLanguage(tag string) []Record {
	tag3, ok := autonym.Canonical(tag)
	if !ok {
		return nil
	}
	start, _ := slices.BinarySearchFunc(records[:], tag3, func(r Record, t string) int {
		return cmp.Compare(r.Tag3, t)
	})
	end := start
	for end < len(records) && records[end].Tag3 == tag3 {
		end++
	}
	if start == end {
		return nil
	}
	return slices.Clone(records[start:end])
}

// All returns a copy of every record in table order.
func All() []Record {
	return slices.Clone(records[:])
}
