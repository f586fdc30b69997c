package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nupi-ai/iso639/internal/logging"
	"github.com/nupi-ai/iso639/lcid"
	"github.com/nupi-ai/iso639/pseudolcid"
	"github.com/spf13/cobra"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC8800")).Bold(true)

// titleCase turns "latn" or "LATN" into "Latn" so scripts can be typed in any
// case. Regions are upper-cased, which leaves M.49 digits untouched.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func newLCIDCommand() *cobra.Command {
	var (
		scriptCode string
		region     string
		pseudo     bool
	)
	cmd := &cobra.Command{
		Use:   "lcid <tag> [-s script] [-r region] [-p]",
		Short: "Print the Windows LCID of a language, script and region",
		Long: `Print the Windows locale identifier registered for a language, optionally
narrowed by an ISO 15924 script and an ISO 3166-1 alpha-2 or UN M.49 region.

With --pseudo, a combination Windows does not know is encoded as a
pseudo-LCID instead. Pseudo-LCIDs carry only the language and region and are
not valid [MS-LCID] values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commandLogger(cmd)
			tag := args[0]
			s, r := titleCase(scriptCode), strings.ToUpper(region)
			out := newOutputFormatter(cmd)

			if rec, ok := lcid.Get(tag, s, r); ok {
				log.WithField("key", rec.Key()).Debug("resolved registered LCID")
				return out.Result(strconv.FormatUint(uint64(rec.LCID), 10), map[string]any{
					"tag":    rec.Tag(),
					"lcid":   rec.LCID,
					"pseudo": false,
				})
			}
			if !pseudo {
				log.WithFields(logging.Fields{"tag": tag, "script": s, "region": r}).Debug("no registered LCID")
				return errNotFound
			}

			v, err := pseudolcid.Make(tag, r)
			if err != nil {
				return err
			}
			if s != "" {
				log.WithField("script", s).Debug("script is not carried by pseudo-LCIDs")
			}
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("WARNING: Pseudo-LCID."))
			return out.Result(strconv.FormatUint(uint64(v), 10), map[string]any{
				"tag":    tag,
				"lcid":   v,
				"pseudo": true,
			})
		},
	}
	cmd.Flags().StringVarP(&scriptCode, "script", "s", "", "ISO 15924 script, if required")
	cmd.Flags().StringVarP(&region, "region", "r", "", "ISO 3166-1 alpha-2 or UN M.49 region, if required")
	cmd.Flags().BoolVarP(&pseudo, "pseudo", "p", false, "Fall back to a pseudo-LCID when none is registered")
	return cmd
}

// parseLCID reads a decimal LCID, or a hexadecimal one with an explicit 0x
// prefix. Leading zeros are padding, never an octal marker.
func parseLCID(s string) (uint32, error) {
	base, digits := 10, s
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		base, digits = 16, rest
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		base, digits = 16, rest
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid LCID %q: expected a 32-bit decimal or 0x value", s)
	}
	return uint32(v), nil
}

func newFromLCIDCommand() *cobra.Command {
	var pseudo bool
	cmd := &cobra.Command{
		Use:   "from-lcid <value> [-p]",
		Short: "Print the language tag of a Windows LCID",
		Long: `Print the language tag registered for an LCID given in decimal or as 0x
hexadecimal. With --pseudo, values produced by "lcid --pseudo" are decoded
too and printed as tag3[-REGION].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseLCID(args[0])
			if err != nil {
				return err
			}
			out := newOutputFormatter(cmd)

			if rec, ok := lcid.GetByLCID(value); ok {
				return out.Result(rec.Tag(), rec)
			}
			if !pseudo {
				commandLogger(cmd).WithField("lcid", fmt.Sprintf("%#x", value)).Debug("no registered LCID")
				return errNotFound
			}
			tag, region, err := pseudolcid.Parse(value)
			if err != nil {
				return err
			}
			return out.Result(pseudolcid.String(tag, region), map[string]any{
				"tag3":   tag,
				"region": region,
				"pseudo": true,
			})
		},
	}
	cmd.Flags().BoolVarP(&pseudo, "pseudo", "p", false, "Accept pseudo-LCIDs")
	return cmd
}
