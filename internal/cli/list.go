package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/skillsmith-labs/skillsmith/internal/discovery"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [dir]...",
	Short: "List skill packages under one or more directories",
	Long: `List every skill package (a directory with a SKILL.md) directly beneath
the given directories. Defaults to the current directory.`,
	RunE: runList,
}

// listEntry represents a discovered package for display.
type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	d := discovery.NewDiscovery(discovery.WithRoots(roots...))
	pkgs, err := d.Discover()
	if err != nil {
		return fmt.Errorf("discovering skill packages: %w", err)
	}

	if len(pkgs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No skill packages found.")
		return nil
	}

	entries := make([]listEntry, 0, len(pkgs))
	for _, p := range pkgs {
		entries = append(entries, listEntry{
			Name:        p.Name,
			Version:     p.Version,
			Description: p.Description,
			Path:        p.Dir,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, version, truncate(e.Description, 60))
	}
	return w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
