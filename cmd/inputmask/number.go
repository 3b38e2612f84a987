package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/goliatone/go-inputmask/pkg/number"
)

func init() {
	numberCmd.RunE = runNumber
	flags := numberCmd.Flags()
	flags.StringVarP(&numberCmd.locale, "locale", "l", "en", "BCP 47 locale for grouping and decimals")
	flags.StringVarP(&numberCmd.currency, "currency", "c", "", "ISO 4217 currency code")
	flags.IntVar(&numberCmd.fraction, "max-fraction", -1, "Maximum fraction digits (no cap when negative)")
	flags.IntVar(&numberCmd.integer, "max-integer", 15, "Maximum integer digits")
	flags.BoolVar(&numberCmd.asJSON, "json", false, "Print one JSON record per input")
	rootCmd.AddCommand(&numberCmd.Command)
}

var numberCmd = struct {
	cobra.Command
	locale   string
	currency string
	fraction int
	integer  int
	asJSON   bool
}{
	Command: cobra.Command{
		Use:     "number [amount...]",
		Short:   "Format numbers and amounts for a locale",
		Example: `  inputmask number -l de -c EUR 1234567,5`,
	},
}

func numberSelector(locale, code string, fraction, integer int) (*number.Selector, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	opts := []number.Option{
		number.WithLocale(tag),
		number.WithMaxFractionDigits(fraction),
		number.WithMaxIntegerDigits(integer),
	}
	if code != "" {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("currency %q: %w", code, err)
		}
		opts = append(opts, number.WithCurrency(unit))
	}
	return number.NewSelector(opts...)
}

func runNumber(cmd *cobra.Command, args []string) error {
	sel, err := numberSelector(numberCmd.locale, numberCmd.currency, numberCmd.fraction, numberCmd.integer)
	if err != nil {
		return err
	}
	texts, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	for _, text := range texts {
		state, err := format(sel, text, -1, false, false)
		if err != nil {
			return err
		}
		if err := writeRecord(cmd.OutOrStdout(), numberCmd.asJSON, newRecord(text, state)); err != nil {
			return err
		}
	}
	return nil
}
