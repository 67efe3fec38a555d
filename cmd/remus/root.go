// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables step tracing on stderr.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string
	// catalogFile allows specifying a custom remusfile path.
	catalogFile string
	// shellOverride forces the shell mode for this invocation.
	shellOverride string
	// listFlag prints the public recipes instead of running one.
	listFlag bool

	// rootCmd represents the base command when called without any subcommands.
	rootCmd = &cobra.Command{
		Use:   "remus [recipe] [args...]",
		Short: "A recipe runner for project task catalogs",
		Long: TitleStyle.Render("remus") + SubtitleStyle.Render(" - a recipe runner for project task catalogs") + `

remus runs named recipes defined in a remusfile.cue catalog. Recipes wrap
shell command lines, declare positional parameters (with defaults and a
trailing variadic "rest" parameter), and depend on other recipes; remus
runs every transitive dependency exactly once, in order, before the
recipe itself.

` + SubtitleStyle.Render("Examples:") + `
  remus                     Run the catalog's default recipe
  remus --list              List public recipes
  remus build               Run the 'build' recipe and its dependencies
  remus run mypkg --release Pass arguments through to recipe parameters
  remus show build          Show a recipe's documentation and commands`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFlag {
				return listRecipes(cmd.OutOrStdout())
			}
			return runRecipe(cmd.Context(), args)
		},
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list public recipes and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable step tracing")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/remus/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "", "recipe catalog (default is the nearest remusfile.cue)")
	rootCmd.PersistentFlags().StringVar(&shellOverride, "shell", "", "shell mode for this invocation (native|virtual)")

	// Stop flag parsing at the first positional argument so recipe
	// arguments like "--release" flow through to the parameter binder
	// instead of being rejected as unknown flags.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dumpCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). A forwarded interrupt
// cancels the command context, which terminates the running recipe step;
// the child's termination status becomes the process exit code.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
