package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/cobra"

	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/git"
	"github.com/projectbaker/baker/internal/project"
	"github.com/projectbaker/baker/internal/runtime"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var (
	newDestination string
	newStructure   string
	newSubdirs     []string
	newGit         bool
	newNoVenv      bool
)

func init() {
	newCmd.Flags().StringVarP(&newDestination, "destination", "d", "", "Directory to build the new project in (default: info.default_directory)")
	newCmd.Flags().StringVarP(&newStructure, "structure", "t", "", "Project structure to use (default: info.default_structure)")
	newCmd.Flags().StringSliceVarP(&newSubdirs, "subdirectories", "s", nil, "Extra subdirectories to create inside the project")
	newCmd.Flags().BoolVarP(&newGit, "git", "g", false, "Initialize a git repository in the new project")
	newCmd.Flags().BoolVar(&newNoVenv, "no-venv", false, "Do not create a virtual environment in the project directory")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:     "new <name>",
	Aliases: []string{"create"},
	Short:   "Scaffold a new project",
	Long: `Create a new project from a configured structure.

Examples:
  baker new demo
  baker new demo -d ~/code -t basic
  baker new demo -s notebooks,scripts --git --no-venv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		log := newLogger(cmd)
		cfg, err := config.Load(resolveConfigDir())
		if err != nil {
			return err
		}
		log.Debug("loaded configuration", "dir", cfg.Dir, "structures", len(cfg.Structures), "templates", len(cfg.Templates))

		env := &project.Env{
			Log:     log,
			Config:  cfg,
			Now:     time.Now,
			Runtime: runtime.DispatchRuntime(cfg.Info.Runtime),
			Git:     git.New(),
		}
		req := project.Request{
			Name:        name,
			Destination: newDestination,
			Structure:   newStructure,
			Subdirs:     newSubdirs,
			SkipEnv:     newNoVenv,
			InitGit:     newGit,
		}

		result, err := project.Run(cmd.Context(), env, req)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

// ─── Helpers ───────────────────────────────────────────────────────

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [A-Za-z0-9][A-Za-z0-9._-]*", name)
	}
	return nil
}

func printResult(w io.Writer, result *project.Result) {
	fmt.Fprintf(w, "Created project at %s/ (structure: %s)\n", result.Root, result.Structure)
	for _, d := range result.CreatedDirs {
		fmt.Fprintf(w, "  %s/\n", relTo(result.Root, d))
	}
	for _, f := range result.CreatedFiles {
		fmt.Fprintf(w, "  %s\n", relTo(result.Root, f))
	}
	if result.EnvProvisioned {
		fmt.Fprintln(w, "  virtual environment ready")
	}
	if result.GitInitialized {
		fmt.Fprintln(w, "  git repository initialized")
	}
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
