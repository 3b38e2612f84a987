package main

import (
	"github.com/spf13/cobra"
)

func init() {
	applyCmd.RunE = runApply
	flags := applyCmd.Flags()
	flags.StringVarP(&applyCmd.format, "mask", "m", "", "Mask format")
	flags.StringSliceVarP(&applyCmd.affine, "affine", "a", nil, "Affine formats competing with --mask")
	flags.StringVar(&applyCmd.affinity, "affinity", "whole_string", "Affinity strategy: whole_string, prefix or capacity")
	flags.StringVarP(&applyCmd.name, "name", "n", "", "Name of a mask in the loaded set")
	flags.BoolVar(&applyCmd.rtl, "rtl", false, "Fill the mask from the end of the text")
	flags.IntVar(&applyCmd.caret, "caret", -1, "Caret position in the input (end when negative)")
	flags.BoolVar(&applyCmd.noAutocomplete, "no-autocomplete", false, "Do not append literals after the caret")
	flags.BoolVar(&applyCmd.asJSON, "json", false, "Print one JSON record per input")
	rootCmd.AddCommand(&applyCmd.Command)
}

var applyCmd = struct {
	cobra.Command
	maskFlags
	caret          int
	noAutocomplete bool
	asJSON         bool
}{
	Command: cobra.Command{
		Use:   "apply [text...]",
		Short: "Format text through a mask",
		Long:  "Format each argument, or each line of stdin, through a mask.",
		Example: `  inputmask apply -m "+7 ([000]) [000]-[00]-[00]" 9161234567
  inputmask apply -n card --json 4111111111111111`,
	},
}

func runApply(cmd *cobra.Command, args []string) error {
	sel, rtl, err := applyCmd.selector()
	if err != nil {
		return err
	}
	texts, err := inputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	for _, text := range texts {
		state, err := format(sel, text, applyCmd.caret, !applyCmd.noAutocomplete, rtl)
		if err != nil {
			return err
		}
		if err := writeRecord(cmd.OutOrStdout(), applyCmd.asJSON, newRecord(text, state)); err != nil {
			return err
		}
	}
	return nil
}
