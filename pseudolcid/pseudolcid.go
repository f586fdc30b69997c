// Package pseudolcid packs a language and an optional region into a 32-bit
// value shaped like a Microsoft LCID, for software that insists on an LCID
// for locales Microsoft never assigned one.
//
// Layout, most significant bit first:
//
//	bit  31      always 1; real LCIDs never set it
//	bits 30..21  region number (0 = no region)
//	bits 20..16  reserved, zero
//	bit  15      M49 flag: region number is a UN M.49 code
//	bits 14..0   base-26 value of the ISO 639-3 tag ("aaa" = 0)
//
// Alphabetic regions are stored as their base-26 value plus one so that "AA"
// does not collide with "no region". Scripts are not encoded: a round trip
// through Make and Parse loses any script the caller had.
package pseudolcid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/internal/base26"
	"github.com/nupi-ai/iso639/internal/validate"
)

var (
	// ErrInvalidTag is returned by Make when the tag is not a known language.
	ErrInvalidTag = errors.New("pseudolcid: invalid tag")
	// ErrInvalidRegion is returned by Make when the region is neither two
	// ASCII letters nor three ASCII digits.
	ErrInvalidRegion = errors.New("pseudolcid: invalid region")
	// ErrNotPseudoLCID is returned by Parse for values with bit 31 clear.
	ErrNotPseudoLCID = errors.New("pseudolcid: not a pseudo-LCID")
	// ErrMalformedPseudoLCID is returned by Parse for values with bit 31 set
	// whose tag or region number is outside the range Make produces.
	ErrMalformedPseudoLCID = errors.New("pseudolcid: malformed pseudo-LCID")
)

const (
	flagBit     = 1 << 31
	m49Bit      = 1 << 15
	tagMask     = 0x7FFF
	regionShift = 21
	regionMask  = 0x3FF

	maxTag         = 26*26*26 - 1
	maxAlphaRegion = 26 * 26 // base-26 "zz" plus one
	maxM49Region   = 999
)

// IsPseudo reports whether v carries the pseudo-LCID discriminator bit.
func IsPseudo(v uint32) bool {
	return v&flagBit != 0
}

// Make encodes tag and region. tag may be any form the autonym table knows
// and is canonicalised to ISO 639-3. region is "" for none, two ASCII letters
// of either case (ISO 3166-1 alpha-2) or three ASCII digits (UN M.49).
func Make(tag, region string) (uint32, error) {
	tag3, ok := autonym.Canonical(tag)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	tagNr, ok := base26.Decode(tag3)
	if !ok || tagNr > maxTag {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	v := uint32(flagBit) | uint32(tagNr)
	switch {
	case region == "":
	case validate.NumericRegion(region):
		n := int(region[0]-'0')*100 + int(region[1]-'0')*10 + int(region[2]-'0')
		v |= m49Bit | uint32(n)<<regionShift
	case validate.Letters(region, 2):
		n, _ := base26.Decode(region)
		v |= uint32(n+1) << regionShift
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRegion, region)
	}
	return v, nil
}

// Parse decodes a value produced by Make into the ISO 639-3 tag and the
// region in canonical form: two uppercase letters, three digits, or "" when
// the value carries no region. The tag is not checked against the autonym
// table.
func Parse(v uint32) (tag, region string, err error) {
	if !IsPseudo(v) {
		return "", "", fmt.Errorf("%w: %#08x has bit 31 clear", ErrNotPseudoLCID, v)
	}
	tagNr := int(v & tagMask)
	if tagNr > maxTag {
		return "", "", fmt.Errorf("%w: tag number %d out of range", ErrMalformedPseudoLCID, tagNr)
	}
	regionNr := int(v>>regionShift) & regionMask
	tag = base26.Encode(tagNr, 3)

	switch {
	case v&m49Bit != 0:
		if regionNr > maxM49Region {
			return "", "", fmt.Errorf("%w: M.49 region %d out of range", ErrMalformedPseudoLCID, regionNr)
		}
		region = fmt.Sprintf("%03d", regionNr)
	case regionNr == 0:
	default:
		if regionNr > maxAlphaRegion {
			return "", "", fmt.Errorf("%w: region number %d out of range", ErrMalformedPseudoLCID, regionNr)
		}
		region = strings.ToUpper(base26.Encode(regionNr-1, 2))
	}
	return tag, region, nil
}

// String renders a decoded pair the way the CLI prints it: "eng" or "eng-US".
func String(tag, region string) string {
	if region == "" {
		return tag
	}
	return tag + "-" + region
}
