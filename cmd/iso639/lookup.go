package main

import (
	"github.com/nupi-ai/iso639/autonym"
	"github.com/nupi-ai/iso639/script"
	"github.com/spf13/cobra"
)

func newAutonymCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "autonym <tag>",
		Short: "Print the name a language uses for itself, or its English name",
		Args:  cobra.ExactArgs(1),
		RunE:  runAutonym,
	}
}

func runAutonym(cmd *cobra.Command, args []string) error {
	r, ok := autonym.Get(args[0])
	if !ok {
		commandLogger(cmd).WithField("tag", args[0]).Debug("unknown tag")
		return errNotFound
	}
	return newOutputFormatter(cmd).Result(r.DisplayName(), r)
}

// addFormFlags registers the mutually exclusive -1/-3 flags shared by tag and is.
func addFormFlags(cmd *cobra.Command, tag1, tag3 *bool) {
	cmd.Flags().BoolVarP(tag1, "tag1", "1", false, "ISO 639-1 (two-letter) form")
	cmd.Flags().BoolVarP(tag3, "tag3", "3", false, "ISO 639-3 (three-letter) form")
	cmd.MarkFlagsOneRequired("tag1", "tag3")
	cmd.MarkFlagsMutuallyExclusive("tag1", "tag3")
}

func newTagCommand() *cobra.Command {
	var tag1, tag3 bool
	cmd := &cobra.Command{
		Use:   "tag (-1|-3) <tag>",
		Short: "Convert a tag to its ISO 639-1 or ISO 639-3 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := autonym.Get(args[0])
			if !ok {
				return errNotFound
			}
			out := r.Tag3
			if tag1 {
				if r.Tag1 == "" {
					commandLogger(cmd).WithField("tag3", r.Tag3).Debug("language has no ISO 639-1 code")
					return errNotFound
				}
				out = r.Tag1
			}
			return newOutputFormatter(cmd).Result(out, map[string]string{"input": args[0], "tag": out})
		},
	}
	addFormFlags(cmd, &tag1, &tag3)
	return cmd
}

func newIsCommand() *cobra.Command {
	var tag1, tag3 bool
	cmd := &cobra.Command{
		Use:   "is (-1|-3) <tag>",
		Short: "Exit 0 if the tag is a known code of the given form",
		Long: `Exit 0 if the tag, exactly as written, is the ISO 639-1 (-1) or ISO 639-3
(-3) code of a known language. Tags are case sensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag := args[0]
			var valid bool
			if r, ok := autonym.Get(tag); ok {
				if tag1 {
					valid = r.Tag1 != "" && r.Tag1 == tag
				} else {
					valid = r.Tag3 == tag
				}
			}
			return printVerdict(cmd, tag, valid)
		},
	}
	addFormFlags(cmd, &tag1, &tag3)
	return cmd
}

func newHas1Command() *cobra.Command {
	return &cobra.Command{
		Use:   "has-1 <tag>",
		Short: "Exit 0 if the language has an ISO 639-1 code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := autonym.Get(args[0])
			return printVerdict(cmd, args[0], ok && r.Tag1 != "")
		},
	}
}

// printVerdict reports a yes/no answer. Text mode prints nothing; the exit
// status carries the answer.
func printVerdict(cmd *cobra.Command, tag string, valid bool) error {
	out := newOutputFormatter(cmd)
	if out.jsonMode {
		if err := out.Print(map[string]any{"tag": tag, "valid": valid}); err != nil {
			return err
		}
	}
	if !valid {
		return errNotFound
	}
	return nil
}

func newScriptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "script <tag>",
		Short: "Print the ISO 15924 script a language is usually written in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := script.Get(args[0])
			if !ok {
				return errNotFound
			}
			return newOutputFormatter(cmd).Result(r.Script, r)
		},
	}
}
