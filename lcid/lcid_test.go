package lcid

import (
	"testing"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/internal/lcidkey"
	"github.com/nupi-ai/iso639/internal/validate"
)

func TestGet(t *testing.T) {
	tests := []struct {
		tag, script, region string
		want                uint32
	}{
		{"en", "", "US", 1033},
		{"eng", "", "US", 0x0409},
		{"en", "", "", 0x0009},
		{"en", "", "GB", 0x0809},
		{"es", "", "419", 0x580A},
		{"sr", "Latn", "RS", 0x241A},
		{"sr", "Cyrl", "RS", 0x281A},
		{"zh", "Hant", "", 0x7C04},
		{"zh", "", "TW", 0x0404},
		{"haw", "", "US", 0x0475},
		{"yi", "", "001", 0x043D},
	}
	for _, tt := range tests {
		name := lcidkey.Key{Tag3: tt.tag, Script: tt.script, Region: tt.region}.String()
		t.Run(name, func(t *testing.T) {
			r, ok := Get(tt.tag, tt.script, tt.region)
			if !ok {
				t.Fatalf("Get returned not found")
			}
			if r.LCID != tt.want {
				t.Errorf("LCID: got %#04x, want %#04x", r.LCID, tt.want)
			}
		})
	}
}

func TestGetAbsent(t *testing.T) {
	tests := []struct {
		tag, script, region string
	}{
		{"zzz", "", "US"},
		{"en", "", "us"},
		{"en", "Latn", "US"},
		{"en", "", "FR"},
		{"sr", "latn", "RS"},
		{"", "", ""},
	}
	for _, tt := range tests {
		if r, ok := Get(tt.tag, tt.script, tt.region); ok {
			t.Errorf("Get(%q, %q, %q) = %+v, want absent", tt.tag, tt.script, tt.region, r)
		}
	}
}

func TestGetByLCID(t *testing.T) {
	r, ok := GetByLCID(1033)
	if !ok {
		t.Fatal("GetByLCID(1033) returned not found")
	}
	if r.Tag3 != "eng" || r.Region != "US" || r.Script != "" {
		t.Errorf("GetByLCID(1033) = %+v, want English/US", r)
	}
	if got := r.Tag(); got != "en-US" {
		t.Errorf("Tag() = %q, want en-US", got)
	}

	for _, v := range []uint32{0, 0x0400, 0x80000409, 0xFFFFFFFF} {
		if r, ok := GetByLCID(v); ok {
			t.Errorf("GetByLCID(%#x) = %+v, want absent", v, r)
		}
	}
}

func TestEveryRecordRoundTrips(t *testing.T) {
	for _, r := range All() {
		got, ok := Get(r.Tag3, r.Script, r.Region)
		if !ok || got != r {
			t.Errorf("Get(%v) = %+v, %v; want %+v", r.Key(), got, ok, r)
		}
		if r.Tag1 != "" {
			if got, ok := Get(r.Tag1, r.Script, r.Region); !ok || got != r {
				t.Errorf("Get via tag1 %q = %+v, %v", r.Tag1, got, ok)
			}
		}
		byVal, ok := GetByLCID(r.LCID)
		if !ok || byVal.LCID != r.LCID {
			t.Errorf("GetByLCID(%#x) = %+v, %v", r.LCID, byVal, ok)
		}
	}
}

func TestTableStrictlyOrdered(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if lcidkey.Compare(all[i-1].Key(), all[i].Key()) >= 0 {
			t.Fatalf("records %d (%v) and %d (%v) out of order", i-1, all[i-1].Key(), i, all[i].Key())
		}
	}
}

func TestByValueOrdered(t *testing.T) {
	if len(byValue) != len(records) {
		t.Fatalf("byValue has %d entries, records %d", len(byValue), len(records))
	}
	seen := make([]bool, len(records))
	for i, pos := range byValue {
		if seen[pos] {
			t.Fatalf("position %d listed twice", pos)
		}
		seen[pos] = true
		if i > 0 && records[byValue[i-1]].LCID > records[pos].LCID {
			t.Fatalf("byValue out of order at %d", i)
		}
	}
}

func TestRecordsWellFormed(t *testing.T) {
	for _, r := range All() {
		if !validate.Tag3(r.Tag3) {
			t.Errorf("%v: malformed Tag3", r.Key())
		}
		if r.Script != "" && !validate.Script(r.Script) {
			t.Errorf("%v: malformed script", r.Key())
		}
		if r.Region != "" && !validate.Region(r.Region) {
			t.Errorf("%v: malformed region", r.Key())
		}
		if r.LCID&0x80000000 != 0 {
			t.Errorf("%v: LCID %#x has bit 31 set", r.Key(), r.LCID)
		}
		a, ok := autonym.Get(r.Tag3)
		if !ok {
			t.Errorf("%v: language missing from autonym table", r.Key())
			continue
		}
		if a.Tag1 != r.Tag1 {
			t.Errorf("%v: Tag1 %q disagrees with autonym table %q", r.Key(), r.Tag1, a.Tag1)
		}
	}
}

func TestForLanguage(t *testing.T) {
	recs := ForLanguage("sr")
	if len(recs) == 0 {
		t.Fatal("ForLanguage(sr) returned nothing")
	}
	for _, r := range recs {
		if r.Tag3 != "srp" {
			t.Errorf("unexpected record %+v", r)
		}
	}
	if got := ForLanguage("zzz"); got != nil {
		t.Errorf("ForLanguage(zzz) = %v, want nil", got)
	}
	if got := ForLanguage("aa"); got != nil {
		t.Errorf("ForLanguage(aa) = %v, want nil", got)
	}
}

func TestGetDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Get("en", "", "US")
		_, _ = GetByLCID(1033)
	})
	if allocs != 0 {
		t.Errorf("lookups allocated %.1f times per run", allocs)
	}
}
