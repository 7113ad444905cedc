package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docloom/docloom/internal/config"
	"github.com/docloom/docloom/internal/license"
	"github.com/docloom/docloom/internal/pipeline"
	"github.com/docloom/docloom/internal/weaver"
)

var (
	licenseName   string
	versionString string
	authorFlags   []string
	configRoot    string
)

// rootCmd is the weave command itself: docloom takes files, extracts their
// embedded documentation and prints the woven result.
var rootCmd = &cobra.Command{
	Use:   "docloom [flags] <file|glob> [<file|glob>...]",
	Short: "Extract and weave embedded documentation from Ruby sources",
	Long: `docloom extracts the embedded documentation blocks (=begin ... =end) from
Ruby source files, runs them through the weaving pipeline configured in
docloom.yml, and prints the woven document for each file to stdout.

The pipeline adds boilerplate sections (NAME, VERSION, AUTHORS, COPYRIGHT
AND LICENSE) from command-line metadata and reorders the sections already
present in the source.

Examples:
  # Weave one file
  docloom lib/parser.rb

  # Weave everything under lib/, stamping version and authorship
  docloom --version 1.0 --author "Jane Doe <jane@example.com>" 'lib/**/*.rb'

  # Declare a license; the first --author is the holder
  docloom --license Perl_5 --author "Jane Doe <jane@example.com>" lib/parser.rb
`,
	Args:         cobra.MinimumNArgs(1),
	RunE:         runWeave,
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "docloom:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&licenseName, "license", "", "license identifier to declare (requires --author)")
	rootCmd.Flags().StringVar(&versionString, "version", "", "version string woven into the VERSION section")
	rootCmd.Flags().StringArrayVar(&authorFlags, "author", nil, "author (repeatable; the first is the license holder)")
	rootCmd.Flags().StringVar(&configRoot, "config-root", "", "directory containing docloom.yml (default: working directory)")
}

func runWeave(cmd *cobra.Command, args []string) error {
	root := configRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		root = wd
	}

	// Pre-flight: config and license must resolve before any file is read.
	cfg, err := config.NewLoader(root).Load()
	if err != nil {
		return err
	}

	meta := weaver.Metadata{
		Version: versionString,
		Authors: authorFlags,
	}
	if licenseName != "" {
		if len(authorFlags) == 0 {
			return fmt.Errorf("--license %s requires at least one --author as the holder", licenseName)
		}
		lic, err := license.Resolve(licenseName, authorFlags[0])
		if err != nil {
			return fmt.Errorf("could not resolve license %s: %w", licenseName, err)
		}
		meta.License = lic
	}

	w, err := weaver.New(cfg)
	if err != nil {
		return err
	}

	files, err := expandArgs(args, root)
	if err != nil {
		return err
	}

	p := pipeline.New(w, meta)
	for _, file := range files {
		result, err := p.ProcessFile(file)
		if err != nil {
			return err
		}
		if result.Rejected {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", result.Warning)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	}
	return nil
}
