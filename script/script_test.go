package script

import (
	"testing"

	"github.com/nupi-ai/iso639/internal/validate"
)

func TestGet(t *testing.T) {
	tests := []struct {
		tag    string
		script string
	}{
		{"jpn", "Jpan"},
		{"ja", "Jpan"},
		{"en", "Latn"},
		{"rus", "Cyrl"},
		{"zh", "Hans"},
		{"yue", "Hant"},
		{"chr", "Cher"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			r, ok := Get(tt.tag)
			if !ok {
				t.Fatalf("Get(%q) returned not found", tt.tag)
			}
			if r.Script != tt.script {
				t.Errorf("Script: got %q, want %q", r.Script, tt.script)
			}
		})
	}
}

func TestGetUnknown(t *testing.T) {
	for _, tag := range []string{"zzz", "", "Latn", "JA"} {
		if _, ok := Get(tag); ok {
			t.Errorf("Get(%q) should return not found", tag)
		}
	}
}

func TestAliasesResolveToSameRecord(t *testing.T) {
	for _, r := range All() {
		if got, ok := Get(r.Tag3); !ok || got != r {
			t.Errorf("Get(%q) = %+v, %v", r.Tag3, got, ok)
		}
		if r.Tag1 != "" {
			if got, ok := Get(r.Tag1); !ok || got != r {
				t.Errorf("Get(%q) = %+v, %v", r.Tag1, got, ok)
			}
		}
	}
}

func TestScriptsWellFormed(t *testing.T) {
	for _, r := range All() {
		if !validate.Script(r.Script) {
			t.Errorf("record %q: malformed script %q", r.Tag3, r.Script)
		}
	}
}
