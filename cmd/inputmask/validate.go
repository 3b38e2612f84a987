package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

func init() {
	validateCmd.RunE = runValidate
	flags := validateCmd.Flags()
	flags.BoolVar(&validateCmd.openapi, "openapi", false, "Read x-inputmask extensions from OpenAPI documents")
	flags.BoolVar(&validateCmd.schema, "schema", false, "Print the mask document JSON Schema and exit")
	rootCmd.AddCommand(&validateCmd.Command)
}

var validateCmd = struct {
	cobra.Command
	openapi bool
	schema  bool
}{
	Command: cobra.Command{
		Use:   "validate [path...]",
		Short: "Check mask documents, directories or OpenAPI files",
	},
}

func runValidate(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	if validateCmd.schema {
		_, err := out.Write(maskconfig.SchemaJSON())
		return err
	}
	if len(paths) == 0 {
		if rootCmd.masks == "" {
			return fmt.Errorf("validate needs at least one path")
		}
		paths = []string{rootCmd.masks}
	}

	failed := 0
	for _, path := range paths {
		set, err := validatePath(cmd, path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "%s: %d masks (%s)\n", path, set.Len(), strings.Join(set.List(), ", "))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d paths failed validation", failed, len(paths))
	}
	return nil
}

func validatePath(cmd *cobra.Command, path string) (*maskconfig.Set, error) {
	if !validateCmd.openapi {
		return maskconfig.LoadPath(path, maskconfig.WithLogger(logger()))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return maskconfig.FromOpenAPI(cmd.Context(), data, maskconfig.WithLogger(logger()))
}
