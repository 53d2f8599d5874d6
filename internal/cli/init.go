package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/runtime"
)

var (
	initAuthor    string
	initDirectory string
)

func init() {
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Author written into info.yaml (default: git config user.name)")
	initCmd.Flags().StringVar(&initDirectory, "default-directory", ".", "Default directory new projects are created in")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Write info.yaml, templates.yaml and structures.yaml into the configuration
directory. Documents that already exist are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveConfigDir()
		out := cmd.OutOrStdout()

		author := initAuthor
		if author == "" {
			author = gitUserName(cmd)
		}

		fmt.Fprintf(out, "Initializing configuration at %s\n", dir)
		data := config.DefaultsData{Author: author, DefaultDirectory: initDirectory}
		if err := config.WriteDefaults(dir, out, data); err != nil {
			return fmt.Errorf("writing default configuration: %w", err)
		}

		fmt.Fprintln(out, "\nConfiguration initialized.")
		if author == "" {
			fmt.Fprintln(out, "Set an author before creating projects:")
			fmt.Fprintln(out, "  baker config set author \"Your Name\"")
		}
		return nil
	},
}

// gitUserName returns git's user.name, or "" when git is unavailable or unset.
func gitUserName(cmd *cobra.Command) string {
	out, err := runtime.Exec(cmd.Context(), "", nil, nil, "git", "config", "--get", "user.name")
	if err != nil || out.ExitCode != 0 {
		return ""
	}
	return strings.TrimSpace(out.Stdout)
}
