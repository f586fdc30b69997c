package autonym

import (
	"sort"
	"testing"

	"github.com/nupi-ai/iso639/internal/validate"
)

func TestGetKnownLanguage(t *testing.T) {
	tests := []struct {
		tag     string
		tag3    string
		tag1    string
		name    string
		autonym string
	}{
		{"en", "eng", "en", "English", "English"},
		{"eng", "eng", "en", "English", "English"},
		{"de", "deu", "de", "German", "Deutsch"},
		{"ja", "jpn", "ja", "Japanese", "日本語"},
		{"pl", "pol", "pl", "Polish", "Polski"},
		{"haw", "haw", "", "Hawaiian", "ʻŌlelo Hawaiʻi"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			r, ok := Get(tt.tag)
			if !ok {
				t.Fatalf("Get(%q) returned not found", tt.tag)
			}
			if r.Tag3 != tt.tag3 {
				t.Errorf("Tag3: got %q, want %q", r.Tag3, tt.tag3)
			}
			if r.Tag1 != tt.tag1 {
				t.Errorf("Tag1: got %q, want %q", r.Tag1, tt.tag1)
			}
			if r.Name != tt.name {
				t.Errorf("Name: got %q, want %q", r.Name, tt.name)
			}
			if r.Autonym != tt.autonym {
				t.Errorf("Autonym: got %q, want %q", r.Autonym, tt.autonym)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	for _, tag := range []string{"zzz", "xx", "", "EN", "english", "e"} {
		t.Run(tag, func(t *testing.T) {
			if _, ok := Get(tag); ok {
				t.Errorf("Get(%q) should return not found", tag)
			}
		})
	}
}

func TestAliasesResolveToSameRecord(t *testing.T) {
	for _, r := range All() {
		got, ok := Get(r.Tag3)
		if !ok || got != r {
			t.Errorf("Get(%q) = %+v, %v; want %+v", r.Tag3, got, ok, r)
		}
		if r.Tag1 == "" {
			continue
		}
		got, ok = Get(r.Tag1)
		if !ok || got != r {
			t.Errorf("Get(%q) = %+v, %v; want %+v", r.Tag1, got, ok, r)
		}
	}
}

func TestRecordsWellFormed(t *testing.T) {
	seen := make(map[string]string)
	for _, r := range All() {
		if !validate.Tag3(r.Tag3) {
			t.Errorf("record %q: malformed Tag3", r.Tag3)
		}
		if r.Tag1 != "" && !validate.Tag1(r.Tag1) {
			t.Errorf("record %q: malformed Tag1 %q", r.Tag3, r.Tag1)
		}
		if r.Name == "" {
			t.Errorf("record %q: empty Name", r.Tag3)
		}
		for _, key := range []string{r.Tag3, r.Tag1} {
			if key == "" {
				continue
			}
			if prev, dup := seen[key]; dup {
				t.Errorf("key %q claimed by %q and %q", key, prev, r.Tag3)
			}
			seen[key] = r.Tag3
		}
	}
	if len(seen) != len(index) {
		t.Errorf("index has %d keys, records claim %d", len(index), len(seen))
	}
}

func TestIndexSorted(t *testing.T) {
	keys := Keys()
	if !sort.StringsAreSorted(keys) {
		t.Fatal("index keys are not sorted")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] == keys[i-1] {
			t.Fatalf("duplicate index key %q", keys[i])
		}
	}
}

func TestDisplayName(t *testing.T) {
	r, ok := Get("ae")
	if !ok {
		t.Fatal("Get(ae) returned not found")
	}
	if r.Autonym != "" {
		t.Fatalf("expected Avestan to have no autonym, got %q", r.Autonym)
	}
	if got := r.DisplayName(); got != "Avestan" {
		t.Errorf("DisplayName() = %q, want English name fallback", got)
	}
	r, _ = Get("fr")
	if got := r.DisplayName(); got != "Français" {
		t.Errorf("DisplayName() = %q, want Français", got)
	}
}

func TestCanonical(t *testing.T) {
	if got, ok := Canonical("zh"); !ok || got != "zho" {
		t.Errorf("Canonical(zh) = %q, %v", got, ok)
	}
	if _, ok := Canonical("qq"); ok {
		t.Error("Canonical(qq) should fail")
	}
}

func TestAllReturnsDefensiveCopy(t *testing.T) {
	a := All()
	a[0] = Record{Tag3: "MODIFIED"}
	if All()[0].Tag3 == "MODIFIED" {
		t.Error("All() does not return a defensive copy")
	}
}

func TestGetDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Get("en")
		_, _ = Get("zzz")
	})
	if allocs != 0 {
		t.Errorf("Get allocated %.1f times per run", allocs)
	}
}
