package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/projectbaker/baker/internal/branding"
	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Persistent flags shared by every command.
var (
	configDir string
	verbose   bool
	quiet     bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the directory layout of a new project from a declarative
structure, seeds README, LICENSE and CHANGELOG with boilerplate, and can set up
a virtual environment and a git repository.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: $"+branding.EnvVar("CONFIG_DIR")+" or ~/"+branding.HomeDir()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// resolveConfigDir returns --config-dir when given, else the default.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	return config.Dir()
}

// newLogger builds the console logger for a command from the verbosity flags.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: verbose, Quiet: quiet})
}
