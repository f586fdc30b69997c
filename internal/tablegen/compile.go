package tablegen

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/nupi-ai/iso639/internal/lcidkey"
	"github.com/nupi-ai/iso639/internal/validate"
)

var (
	autonymHeader = []string{"tag3", "tag1", "name", "autonym", "source"}
	scriptHeader  = []string{"tag3", "tag1", "script", "name", "source"}
	lcidHeader    = []string{"tag3", "tag1", "script", "region", "lcid"}
)

type autonymRecord struct {
	Tag3, Tag1, Name, Autonym, Source string
}

type scriptRecord struct {
	Tag3, Tag1, Script, Source string
}

type lcidRecord struct {
	Tag3, Tag1, Script, Region string
	LCID                       uint32
	line                       int
}

func (r lcidRecord) key() lcidkey.Key {
	return lcidkey.Key{Tag3: r.Tag3, Script: r.Script, Region: r.Region}
}

// indexEntry maps a lookup key to a position in the record slice.
type indexEntry struct {
	Key string
	Pos int
}

// autonymTable is the compiled form of the autonym TSV.
type autonymTable struct {
	source  string
	records []autonymRecord
	index   []indexEntry
}

type scriptTable struct {
	source  string
	records []scriptRecord
	index   []indexEntry
}

type lcidTable struct {
	source  string
	records []lcidRecord
	byValue []int
	// dupValues lists LCID values shared by more than one record.
	dupValues []uint32
}

// tagRow checks the tag3/tag1 pair every table starts with.
func tagRow(name string, r row) (tag3, tag1 string, err error) {
	tag3, tag1 = r.fields[0], r.fields[1]
	if !validate.Tag3(tag3) {
		return "", "", fmt.Errorf("%s:%d: tag3 %q is not three lowercase ASCII letters", name, r.line, tag3)
	}
	if tag1 != "" && !validate.Tag1(tag1) {
		return "", "", fmt.Errorf("%s:%d: tag1 %q is not two lowercase ASCII letters", name, r.line, tag1)
	}
	return tag3, tag1, nil
}

// aliasSet registers lookup keys and rejects any key claimed twice.
type aliasSet struct {
	name  string
	owner map[string]int // key -> line that registered it
}

func newAliasSet(name string, n int) *aliasSet {
	return &aliasSet{name: name, owner: make(map[string]int, 2*n)}
}

func (a *aliasSet) add(key string, line int) error {
	if prev, ok := a.owner[key]; ok {
		return fmt.Errorf("%s:%d: key %q already registered on line %d", a.name, line, key, prev)
	}
	a.owner[key] = line
	return nil
}

// buildIndex returns the sorted key index over n records already ordered by
// Tag3. Both tag forms of record i point at position i.
func buildIndex(n int, tags func(i int) (tag3, tag1 string)) []indexEntry {
	index := make([]indexEntry, 0, 2*n)
	for i := 0; i < n; i++ {
		tag3, tag1 := tags(i)
		index = append(index, indexEntry{Key: tag3, Pos: i})
		if tag1 != "" {
			index = append(index, indexEntry{Key: tag1, Pos: i})
		}
	}
	slices.SortFunc(index, func(a, b indexEntry) int { return strings.Compare(a.Key, b.Key) })
	return index
}

func compileAutonyms(r io.Reader, name string) (*autonymTable, error) {
	rows, err := readTSV(r, name, autonymHeader)
	if err != nil {
		return nil, err
	}
	aliases := newAliasSet(name, len(rows))
	records := make([]autonymRecord, 0, len(rows))
	for _, row := range rows {
		tag3, tag1, err := tagRow(name, row)
		if err != nil {
			return nil, err
		}
		rec := autonymRecord{
			Tag3:    tag3,
			Tag1:    tag1,
			Name:    norm.NFC.String(row.fields[2]),
			Autonym: norm.NFC.String(row.fields[3]),
			Source:  row.fields[4],
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("%s:%d: %s has no English name", name, row.line, tag3)
		}
		if rec.Source == "" {
			return nil, fmt.Errorf("%s:%d: %s has no source", name, row.line, tag3)
		}
		if err := registerTags(aliases, tag3, tag1, row.line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b autonymRecord) int { return strings.Compare(a.Tag3, b.Tag3) })
	index := buildIndex(len(records), func(i int) (string, string) { return records[i].Tag3, records[i].Tag1 })
	return &autonymTable{source: name, records: records, index: index}, nil
}

func compileScripts(r io.Reader, name string) (*scriptTable, error) {
	rows, err := readTSV(r, name, scriptHeader)
	if err != nil {
		return nil, err
	}
	aliases := newAliasSet(name, len(rows))
	records := make([]scriptRecord, 0, len(rows))
	for _, row := range rows {
		tag3, tag1, err := tagRow(name, row)
		if err != nil {
			return nil, err
		}
		rec := scriptRecord{Tag3: tag3, Tag1: tag1, Script: row.fields[2], Source: row.fields[4]}
		if !validate.Script(rec.Script) {
			return nil, fmt.Errorf("%s:%d: script %q is not a title-cased ISO 15924 code", name, row.line, rec.Script)
		}
		if rec.Source == "" {
			return nil, fmt.Errorf("%s:%d: %s has no source", name, row.line, tag3)
		}
		if err := registerTags(aliases, tag3, tag1, row.line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	slices.SortFunc(records, func(a, b scriptRecord) int { return strings.Compare(a.Tag3, b.Tag3) })
	index := buildIndex(len(records), func(i int) (string, string) { return records[i].Tag3, records[i].Tag1 })
	return &scriptTable{source: name, records: records, index: index}, nil
}

func registerTags(aliases *aliasSet, tag3, tag1 string, line int) error {
	if err := aliases.add(tag3, line); err != nil {
		return err
	}
	if tag1 != "" {
		return aliases.add(tag1, line)
	}
	return nil
}

func compileLCIDs(r io.Reader, name string) (*lcidTable, error) {
	rows, err := readTSV(r, name, lcidHeader)
	if err != nil {
		return nil, err
	}
	records := make([]lcidRecord, 0, len(rows))
	for _, row := range rows {
		tag3, tag1, err := tagRow(name, row)
		if err != nil {
			return nil, err
		}
		rec := lcidRecord{Tag3: tag3, Tag1: tag1, Script: row.fields[2], Region: row.fields[3], line: row.line}
		if rec.Script != "" && !validate.Script(rec.Script) {
			return nil, fmt.Errorf("%s:%d: script %q is not a title-cased ISO 15924 code", name, row.line, rec.Script)
		}
		if rec.Region != "" && !validate.Region(rec.Region) {
			return nil, fmt.Errorf("%s:%d: region %q is neither alpha-2 nor UN M.49", name, row.line, rec.Region)
		}
		v, err := strconv.ParseUint(row.fields[4], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: lcid %q: %w", name, row.line, row.fields[4], err)
		}
		if v&(1<<31) != 0 {
			return nil, fmt.Errorf("%s:%d: lcid %#x sets bit 31, which is reserved for pseudo-LCIDs", name, row.line, v)
		}
		rec.LCID = uint32(v)
		records = append(records, rec)
	}

	slices.SortFunc(records, func(a, b lcidRecord) int { return lcidkey.Compare(a.key(), b.key()) })
	for i := 1; i < len(records); i++ {
		if lcidkey.Compare(records[i-1].key(), records[i].key()) == 0 {
			return nil, fmt.Errorf("%s:%d: %s already registered on line %d",
				name, records[i].line, records[i].key(), records[i-1].line)
		}
	}

	byValue := make([]int, len(records))
	for i := range byValue {
		byValue[i] = i
	}
	slices.SortStableFunc(byValue, func(a, b int) int {
		return cmp.Compare(records[a].LCID, records[b].LCID)
	})
	var dups []uint32
	for i := 1; i < len(byValue); i++ {
		v := records[byValue[i]].LCID
		if v == records[byValue[i-1]].LCID && (len(dups) == 0 || dups[len(dups)-1] != v) {
			dups = append(dups, v)
		}
	}
	return &lcidTable{source: name, records: records, byValue: byValue, dupValues: dups}, nil
}

// crossCheck verifies that every LCID row names a language the autonym table
// knows, with the same ISO 639-1 form, so lcid lookups can always
// canonicalise their input.
func crossCheck(a *autonymTable, l *lcidTable) error {
	byTag3 := make(map[string]autonymRecord, len(a.records))
	for _, r := range a.records {
		byTag3[r.Tag3] = r
	}
	for _, r := range l.records {
		ar, ok := byTag3[r.Tag3]
		if !ok {
			return fmt.Errorf("%s:%d: %s is not in %s", l.source, r.line, r.Tag3, a.source)
		}
		if ar.Tag1 != r.Tag1 {
			return fmt.Errorf("%s:%d: %s has tag1 %q but %s says %q", l.source, r.line, r.Tag3, r.Tag1, a.source, ar.Tag1)
		}
	}
	return nil
}
