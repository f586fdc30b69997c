package tablegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

const header = `// Code generated by iso639-tablegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
`

var tagTableTmpl = template.Must(template.New("tags").Parse(header + `
// records holds {{len .Records}} entries ordered by Tag3.
var records = [...]Record{
{{range .Records}}	{{.}},
{{end}}}

// index holds {{len .Index}} lookup keys ordered by key. Both the Tag3 and the
// Tag1 form of a record point at the same position in records.
var index = [...]indexEntry{
{{range .Index}}	{{.}},
{{end}}}
`))

var lcidTableTmpl = template.Must(template.New("lcids").Parse(header + `
// records holds {{len .Records}} entries ordered by (Tag3, Script, Region).
var records = [...]Record{
{{range .Records}}	{{.}},
{{end}}}

// byValue holds positions in records ordered by LCID.
var byValue = [...]uint16{
{{range .ByValue}}	{{.}},
{{end}}}
`))

type tableData struct {
	Source  string
	Package string
	Records []string
	Index   []string
	ByValue []string
}

// literal renders a keyed composite literal, skipping empty optional fields.
type literal struct {
	parts []string
}

func (l *literal) str(key, val string, required bool) *literal {
	if val != "" || required {
		l.parts = append(l.parts, key+": "+strconv.Quote(val))
	}
	return l
}

func (l *literal) raw(key, val string) *literal {
	l.parts = append(l.parts, key+": "+val)
	return l
}

func (l *literal) String() string {
	return "{" + strings.Join(l.parts, ", ") + "}"
}

func renderIndex(index []indexEntry) []string {
	out := make([]string, len(index))
	for i, e := range index {
		out[i] = fmt.Sprintf("{%s, %d}", strconv.Quote(e.Key), e.Pos)
	}
	return out
}

// maxRecords is the most records a table can hold; positions are emitted as
// uint16.
const maxRecords = 1 << 16

func checkSize(source string, n int) error {
	if n > maxRecords {
		return fmt.Errorf("%s: %d records do not fit uint16 positions", source, n)
	}
	return nil
}

func (t *autonymTable) render(pkg string) ([]byte, error) {
	if err := checkSize(t.source, len(t.records)); err != nil {
		return nil, err
	}
	data := tableData{Source: t.source, Package: pkg, Index: renderIndex(t.index)}
	for _, r := range t.records {
		l := new(literal).
			str("Tag3", r.Tag3, true).
			str("Tag1", r.Tag1, false).
			str("Name", r.Name, true).
			str("Autonym", r.Autonym, false).
			str("Source", r.Source, true)
		data.Records = append(data.Records, l.String())
	}
	return execute(tagTableTmpl, data)
}

func (t *scriptTable) render(pkg string) ([]byte, error) {
	if err := checkSize(t.source, len(t.records)); err != nil {
		return nil, err
	}
	data := tableData{Source: t.source, Package: pkg, Index: renderIndex(t.index)}
	for _, r := range t.records {
		l := new(literal).
			str("Tag3", r.Tag3, true).
			str("Tag1", r.Tag1, false).
			str("Script", r.Script, true).
			str("Source", r.Source, true)
		data.Records = append(data.Records, l.String())
	}
	return execute(tagTableTmpl, data)
}

// byValueRowLen is the number of positions emitted per line of byValue.
const byValueRowLen = 16

func (t *lcidTable) render(pkg string) ([]byte, error) {
	if err := checkSize(t.source, len(t.records)); err != nil {
		return nil, err
	}
	data := tableData{Source: t.source, Package: pkg}
	for _, r := range t.records {
		l := new(literal).
			str("Tag3", r.Tag3, true).
			str("Tag1", r.Tag1, false).
			str("Script", r.Script, false).
			str("Region", r.Region, false).
			raw("LCID", fmt.Sprintf("0x%04X", r.LCID))
		data.Records = append(data.Records, l.String())
	}
	for start := 0; start < len(t.byValue); start += byValueRowLen {
		end := min(start+byValueRowLen, len(t.byValue))
		nums := make([]string, 0, end-start)
		for _, pos := range t.byValue[start:end] {
			nums = append(nums, strconv.Itoa(pos))
		}
		data.ByValue = append(data.ByValue, strings.Join(nums, ", "))
	}
	return execute(lcidTableTmpl, data)
}

func execute(tmpl *template.Template, data tableData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: render: %w", data.Source, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: format generated code: %w", data.Source, err)
	}
	return out, nil
}
