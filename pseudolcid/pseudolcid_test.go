package pseudolcid

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/lcid"
)

func TestMakeKnownValues(t *testing.T) {
	tests := []struct {
		tag, region string
		want        uint32
	}{
		{"eng", "", 0x80000BE8},
		{"en", "", 0x80000BE8},
		{"eng", "US", 0xC3600BE8},
		{"eng", "us", 0xC3600BE8},
		{"eng", "AA", 0x80200BE8},
		{"eng", "840", 0xE9008BE8},
		{"eng", "001", 0x80208BE8},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"-"+tt.region, func(t *testing.T) {
			got, err := Make(tt.tag, tt.region)
			if err != nil {
				t.Fatalf("Make(%q, %q) returned error: %v", tt.tag, tt.region, err)
			}
			if got != tt.want {
				t.Errorf("Make(%q, %q) = %#08x, want %#08x", tt.tag, tt.region, got, tt.want)
			}
		})
	}
}

func TestMakeErrors(t *testing.T) {
	tests := []struct {
		tag, region string
		want        error
	}{
		{"xyz", "", ErrInvalidTag},
		{"", "US", ErrInvalidTag},
		{"ENG", "", ErrInvalidTag},
		{"eng", "U", ErrInvalidRegion},
		{"eng", "USA", ErrInvalidRegion},
		{"eng", "84", ErrInvalidRegion},
		{"eng", "8400", ErrInvalidRegion},
		{"eng", "U1", ErrInvalidRegion},
		{"eng", "Ü", ErrInvalidRegion},
	}
	for _, tt := range tests {
		_, err := Make(tt.tag, tt.region)
		if !errors.Is(err, tt.want) {
			t.Errorf("Make(%q, %q) error = %v, want %v", tt.tag, tt.region, err, tt.want)
		}
	}
}

func TestParseScenarios(t *testing.T) {
	v, err := Make("eng", "US")
	if err != nil {
		t.Fatalf("Make returned error: %v", err)
	}
	if !IsPseudo(v) {
		t.Fatalf("%#08x does not have bit 31 set", v)
	}
	tag, region, err := Parse(v)
	if err != nil || tag != "eng" || region != "US" {
		t.Errorf("Parse(%#08x) = %q, %q, %v; want eng, US", v, tag, region, err)
	}

	v, err = Make("eng", "840")
	if err != nil {
		t.Fatalf("Make returned error: %v", err)
	}
	if v&(1<<31) == 0 || v&(1<<15) == 0 {
		t.Fatalf("%#08x: want bits 31 and 15 set", v)
	}
	tag, region, err = Parse(v)
	if err != nil || tag != "eng" || region != "840" {
		t.Errorf("Parse(%#08x) = %q, %q, %v; want eng, 840", v, tag, region, err)
	}

	tag, region, err = Parse(0x80000000)
	if err != nil || tag != "aaa" || region != "" {
		t.Errorf("Parse(0x80000000) = %q, %q, %v; want aaa and no region", tag, region, err)
	}
	tag, _, err = Parse(0x80000019)
	if err != nil || tag != "aaz" {
		t.Errorf("Parse(0x80000019) = %q, %v; want aaz", tag, err)
	}
}

func TestParseRejectsRealLCIDs(t *testing.T) {
	if _, _, err := Parse(0x00000409); !errors.Is(err, ErrNotPseudoLCID) {
		t.Errorf("Parse(0x0409) error = %v, want ErrNotPseudoLCID", err)
	}
	for v := uint32(0); v < 1<<31; v += 0x10001 {
		if _, _, err := Parse(v); !errors.Is(err, ErrNotPseudoLCID) {
			t.Fatalf("Parse(%#08x) error = %v, want ErrNotPseudoLCID", v, err)
		}
	}
	if _, _, err := Parse(1<<31 - 1); !errors.Is(err, ErrNotPseudoLCID) {
		t.Errorf("Parse(0x7fffffff) error = %v, want ErrNotPseudoLCID", err)
	}
}

func TestParseRejectsOutOfRangeFields(t *testing.T) {
	for _, v := range []uint32{
		// tag number past "zzz"
		0x80000000 | 17576,
		// alphabetic region past "ZZ"
		0x80000000 | 677<<21,
		// M.49 region past 999
		0x80000000 | 1<<15 | 1000<<21,
	} {
		_, _, err := Parse(v)
		if !errors.Is(err, ErrMalformedPseudoLCID) {
			t.Errorf("Parse(%#08x) error = %v, want ErrMalformedPseudoLCID", v, err)
		}
		if errors.Is(err, ErrNotPseudoLCID) {
			t.Errorf("Parse(%#08x) reported bit 31 clear", v)
		}
	}
	if _, _, err := Parse(0xFFFFFFFF); !errors.Is(err, ErrMalformedPseudoLCID) {
		t.Errorf("Parse(0xffffffff) error = %v, want ErrMalformedPseudoLCID", err)
	}
}

func TestRoundTripAlphaRegions(t *testing.T) {
	for _, r := range autonym.All() {
		for a := 'a'; a <= 'z'; a++ {
			for b := 'a'; b <= 'z'; b++ {
				region := string([]rune{a, b})
				v, err := Make(r.Tag3, region)
				if err != nil {
					t.Fatalf("Make(%q, %q) returned error: %v", r.Tag3, region, err)
				}
				tag, got, err := Parse(v)
				if err != nil || tag != r.Tag3 || got != strings.ToUpper(region) {
					t.Fatalf("round trip of (%q, %q) = %q, %q, %v", r.Tag3, region, tag, got, err)
				}
			}
		}
	}
}

func TestRoundTripNumericRegions(t *testing.T) {
	for _, r := range autonym.All() {
		for n := 0; n <= 999; n++ {
			region := fmt.Sprintf("%03d", n)
			v, err := Make(r.Tag3, region)
			if err != nil {
				t.Fatalf("Make(%q, %q) returned error: %v", r.Tag3, region, err)
			}
			tag, got, err := Parse(v)
			if err != nil || tag != r.Tag3 || got != region {
				t.Fatalf("round trip of (%q, %q) = %q, %q, %v", r.Tag3, region, tag, got, err)
			}
		}
	}
}

func TestRoundTripCanonicalisesTag1(t *testing.T) {
	for _, r := range autonym.All() {
		if r.Tag1 == "" {
			continue
		}
		v, err := Make(r.Tag1, "")
		if err != nil {
			t.Fatalf("Make(%q) returned error: %v", r.Tag1, err)
		}
		tag, region, err := Parse(v)
		if err != nil || tag != r.Tag3 || region != "" {
			t.Errorf("round trip of %q = %q, %q, %v; want %q", r.Tag1, tag, region, err, r.Tag3)
		}
	}
}

func TestNoCollisionWithRealLCIDs(t *testing.T) {
	for _, r := range lcid.All() {
		if IsPseudo(r.LCID) {
			t.Errorf("real LCID %#x for %s looks like a pseudo-LCID", r.LCID, r.Tag())
		}
	}
}

func TestString(t *testing.T) {
	if got := String("eng", ""); got != "eng" {
		t.Errorf("String(eng) = %q", got)
	}
	if got := String("eng", "US"); got != "eng-US" {
		t.Errorf("String(eng, US) = %q", got)
	}
}
