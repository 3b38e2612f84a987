package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/phone"
	"github.com/goliatone/go-inputmask/pkg/prompt"
	"github.com/goliatone/go-inputmask/pkg/selector"
)

func init() {
	promptCmd.RunE = runPrompt
	flags := promptCmd.Flags()
	flags.StringVarP(&promptCmd.format, "mask", "m", "", "Mask format")
	flags.StringSliceVarP(&promptCmd.affine, "affine", "a", nil, "Affine formats competing with --mask")
	flags.StringVar(&promptCmd.affinity, "affinity", "whole_string", "Affinity strategy")
	flags.StringVarP(&promptCmd.name, "name", "n", "", "Name of a mask in the loaded set")
	flags.BoolVar(&promptCmd.rtl, "rtl", false, "Fill the mask from the end of the text")
	flags.BoolVar(&promptCmd.phone, "phone", false, "Ask for an international phone number")
	flags.StringVar(&promptCmd.locale, "number", "", "Ask for a number in this locale")
	flags.StringVar(&promptCmd.message, "message", "Value", "Question shown to the user")
	flags.StringVar(&promptCmd.defaultText, "default", "", "Default answer")
	flags.BoolVar(&promptCmd.allowIncomplete, "allow-incomplete", false, "Accept answers that leave slots empty")
	flags.BoolVar(&promptCmd.asJSON, "json", false, "Print the answer as JSON")
	rootCmd.AddCommand(&promptCmd.Command)
}

var promptCmd = struct {
	cobra.Command
	maskFlags
	phone           bool
	locale          string
	message         string
	defaultText     string
	allowIncomplete bool
	asJSON          bool
}{
	Command: cobra.Command{
		Use:   "prompt",
		Short: "Ask for a masked value on the terminal",
	},
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	var (
		sel  selector.Selector
		rtl  bool
		help string
		err  error
	)
	switch {
	case promptCmd.phone:
		sel, err = phone.NewSelector()
	case promptCmd.locale != "":
		sel, err = numberSelector(promptCmd.locale, "", -1, 15)
	default:
		sel, rtl, err = promptCmd.selector()
		if err == nil && promptCmd.name != "" {
			help, err = hintOf(promptCmd.name)
		}
	}
	if err != nil {
		return err
	}

	p, err := prompt.New(sel,
		prompt.WithMessage(promptCmd.message),
		prompt.WithHelp(help),
		prompt.WithDefault(promptCmd.defaultText),
		prompt.WithAllowIncomplete(promptCmd.allowIncomplete),
		prompt.WithRightToLeft(rtl),
		prompt.WithLogger(logger()),
	)
	if err != nil {
		return err
	}

	ans, err := p.Ask(cmd.Context())
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger().Debug("prompt: aborted")
		}
		return err
	}

	if promptCmd.asJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(ans)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ans.Formatted)
	return err
}

func hintOf(name string) (string, error) {
	set, err := loadSet()
	if err != nil {
		return "", err
	}
	def, err := set.Get(name)
	if err != nil {
		return "", err
	}
	return def.Hint, nil
}
