package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

func init() {
	placeholderCmd.RunE = runPlaceholder
	placeholderCmd.Flags().BoolVarP(&placeholderCmd.names, "names", "n", false,
		"Treat arguments as names in the loaded set; list the whole set when none are given")
	rootCmd.AddCommand(&placeholderCmd.Command)
}

var placeholderCmd = struct {
	cobra.Command
	names bool
}{
	Command: cobra.Command{
		Use:   "placeholder [format...]",
		Short: "Print mask placeholders and lengths",
	},
}

func runPlaceholder(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MASK\tPLACEHOLDER\tTEXT\tVALUE")

	if !placeholderCmd.names {
		if len(args) == 0 {
			return fmt.Errorf("placeholder needs at least one format")
		}
		for _, format := range args {
			m, err := mask.Compile(format)
			if err != nil {
				return err
			}
			writeLengths(tw, format, m)
		}
		return tw.Flush()
	}

	set, err := loadSet()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = set.List()
	}
	for _, name := range args {
		sel, err := set.Selector(name)
		if err != nil {
			return err
		}
		writeLengths(tw, name, sel.Primary())
	}
	return tw.Flush()
}

func writeLengths(tw *tabwriter.Writer, label string, m *mask.Mask) {
	fmt.Fprintf(tw, "%s\t%s\t%d-%d\t%d-%d\n", label, m.Placeholder(),
		m.AcceptableTextLength(), m.TotalTextLength(),
		m.AcceptableValueLength(), m.TotalValueLength())
}
