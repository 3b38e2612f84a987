package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/phone"
)

func init() {
	phoneCmd.RunE = runPhone
	flags := phoneCmd.Flags()
	flags.StringSliceVar(&phoneCmd.enabled, "enable", nil, "Only use these countries (name, ISO code or flag)")
	flags.StringSliceVar(&phoneCmd.disabled, "disable", nil, "Never use these countries")
	flags.BoolVar(&phoneCmd.list, "list", false, "List the country table and exit")
	flags.BoolVar(&phoneCmd.asJSON, "json", false, "Print one JSON record per input")
	rootCmd.AddCommand(&phoneCmd.Command)
}

var phoneCmd = struct {
	cobra.Command
	enabled  []string
	disabled []string
	list     bool
	asJSON   bool
}{
	Command: cobra.Command{
		Use:     "phone [number...]",
		Short:   "Format international phone numbers",
		Example: `  inputmask phone +375291234567`,
	},
}

func runPhone(cmd *cobra.Command, args []string) error {
	sel, err := phone.NewSelector(
		phone.WithEnabled(phoneCmd.enabled...),
		phone.WithDisabled(phoneCmd.disabled...),
	)
	if err != nil {
		return err
	}

	if phoneCmd.list {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range sel.Table() {
			fmt.Fprintf(tw, "%s\t%s\t+%s\t%s\t%s\n", c.Emoji, c.ISO, c.CallingCode, c.Name, c.PrimaryFormat)
		}
		return tw.Flush()
	}

	texts, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	for _, text := range texts {
		state, err := format(sel, text, -1, true, false)
		if err != nil {
			return err
		}
		rec := newRecord(text, state)
		if c, ok := sel.Country(); ok {
			rec.Country = c.ISO
		}
		logger().Debug("phone: candidates", "input", text, "count", len(sel.Countries()))
		if err := writeRecord(cmd.OutOrStdout(), phoneCmd.asJSON, rec); err != nil {
			return err
		}
	}
	return nil
}
