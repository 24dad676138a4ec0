package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChrisEOlsen/resume-site/internal/config"
	"github.com/ChrisEOlsen/resume-site/internal/observability"
	"github.com/ChrisEOlsen/resume-site/internal/profile"
	"github.com/ChrisEOlsen/resume-site/internal/schemas"
)

var (
	validateProfileInput  string
	validateProfileSchema string
)

var validateProfileCmd = &cobra.Command{
	Use:   "validate-profile",
	Short: "Validate a profile JSON file",
	Long: `Checks a profile file against the embedded JSON Schema and the field rules,
then prints a summary. Without --in the configured profile (or the built-in one) is checked.
With --schema the file is first checked against that schema as well, for example a
stricter variant used before publishing.`,
	RunE: runValidateProfile,
}

func init() {
	validateProfileCmd.Flags().StringVarP(&validateProfileInput, "in", "i", "", "Path to profile JSON file")
	validateProfileCmd.Flags().StringVar(&validateProfileSchema, "schema", "", "Additional JSON Schema file to check the profile against")
	rootCmd.AddCommand(validateProfileCmd)
}

func runValidateProfile(_ *cobra.Command, _ []string) error {
	path := validateProfileInput
	if path == "" {
		resolved, err := resolveProfilePath()
		if err != nil {
			return err
		}
		path = resolved
	}
	return validateProfile(path, validateProfileSchema, os.Stdout)
}

// resolveProfilePath returns the profile path the other commands would use
// without loading it, so validation errors are reported in full.
func resolveProfilePath() (string, error) {
	if profilePath != "" {
		return profilePath, nil
	}
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return "", err
	}
	return cfg.ProfilePath, nil
}

// validateProfile loads path and reports the result to w. An empty path checks the built-in profile.
// A non-empty schemaPath is checked first, in addition to the embedded schema.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func validateProfile(path, schemaPath string, w io.Writer) error {
	if schemaPath != "" {
		if path == "" {
			return fmt.Errorf("--schema needs a profile file (--in, --profile or config)")
		}
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			printSchemaErrors(w, path, err)
			return err
		}
	}

	store, err := profile.Load(path)
	if err != nil {
		printSchemaErrors(w, path, err)
		return err
	}

	p := store.Profile()
	observability.NewPrinter(w).PrintProfile(&p)

	source := path
	if source == "" {
		source = "built-in profile"
	}
	fmt.Fprintf(w, "✓ %s is valid\n", source)
	return nil
}

//nolint:errcheck // writing to stdout
func printSchemaErrors(w io.Writer, path string, err error) {
	var validationErr *schemas.ValidationError
	if !errors.As(err, &validationErr) {
		return
	}
	fmt.Fprintf(w, "Profile %s failed schema validation:\n", path)
	for _, fe := range validationErr.Errors {
		fmt.Fprintf(w, "  - %s: %s\n", fe.Field, fe.Message)
	}
}
