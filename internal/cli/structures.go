package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projectbaker/baker/internal/config"
	"github.com/projectbaker/baker/internal/manifest"
)

var (
	structuresValidate bool
	structuresJSON     bool
)

func init() {
	structuresCmd.Flags().BoolVar(&structuresValidate, "validate", false, "Validate structures.yaml against its schema")
	structuresCmd.Flags().BoolVar(&structuresJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(structuresCmd)
}

var structuresCmd = &cobra.Command{
	Use:   "structures [name]",
	Short: "List configured project structures",
	Long: `List the structures defined in structures.yaml with their entries.

With --validate, check the document against its schema and report every issue.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStructures,
}

func runStructures(cmd *cobra.Command, args []string) error {
	dir := resolveConfigDir()
	out := cmd.OutOrStdout()

	if structuresValidate {
		return validateStructures(out, filepath.Join(dir, config.StructuresFile))
	}

	structures, err := config.LoadStructures(dir)
	if err != nil {
		return err
	}

	names := manifest.Names(structures)
	if len(args) == 1 {
		if _, ok := structures[args[0]]; !ok {
			return fmt.Errorf("structure %q not found (available: %s)", args[0], strings.Join(names, ", "))
		}
		names = []string{args[0]}
	}

	if structuresJSON {
		selected := make(map[string]manifest.Structure, len(names))
		for _, name := range names {
			selected[name] = structures[name]
		}
		data, err := json.MarshalIndent(toJSON(selected), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling structures: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(names) == 0 {
		fmt.Fprintln(out, "No structures defined.")
		return nil
	}

	defaultName, err := config.Get(dir, "default_structure")
	if err != nil {
		return err
	}

	for _, name := range names {
		marker := ""
		if name == defaultName {
			marker = " (default)"
		}
		fmt.Fprintf(out, "%s%s\n", name, marker)
		printStructure(out, structures[name])
	}
	return nil
}

func validateStructures(w io.Writer, path string) error {
	result, err := manifest.ValidateStructuresFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintf(w, "  [ OK ] %s\n", path)
		return nil
	}
	fmt.Fprintf(w, "  [FAIL] %s\n", path)
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "         %s\n", issue)
	}
	return fmt.Errorf("%s has %d validation issue(s)", path, len(result.Issues))
}

func printStructure(w io.Writer, s manifest.Structure) {
	for _, e := range s {
		if !e.IsDir() {
			fmt.Fprintf(w, "  %s\n", e.File)
			continue
		}
		fmt.Fprintf(w, "  %s/\n", e.Dir)
		for _, f := range e.Files {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}
}

// toJSON converts structures into the same shape they are declared in.
func toJSON(structures map[string]manifest.Structure) map[string][]any {
	out := make(map[string][]any, len(structures))
	for name, s := range structures {
		entries := make([]any, 0, len(s))
		for _, e := range s {
			entries = append(entries, entryJSON(e))
		}
		out[name] = entries
	}
	return out
}

func entryJSON(e manifest.Entry) any {
	if !e.IsDir() {
		return e.File
	}
	files := e.Files
	if files == nil {
		files = []string{}
	}
	return map[string][]string{e.Dir: files}
}
