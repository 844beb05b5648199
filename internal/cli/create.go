package cli

import (
	"fmt"
	"path/filepath"

	"github.com/skillsmith-labs/skillsmith/internal/branding"
	"github.com/skillsmith-labs/skillsmith/internal/config"
	"github.com/skillsmith-labs/skillsmith/internal/scaffold"
	"github.com/skillsmith-labs/skillsmith/internal/skillfile"
	"github.com/spf13/cobra"
)

var (
	createName       string
	createAuthor     string
	createCategory   string
	createTags       []string
	createVersion    string
	createLicense    string
	createScripts    bool
	createReferences bool
	createAssets     bool
	createOutput     string
	createDryRun     bool
)

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Skill name in kebab-case (required)")
	createCmd.Flags().StringVar(&createAuthor, "author", "", "Author name (default: config author, then 'Unknown')")
	createCmd.Flags().StringVar(&createCategory, "category", "", "Skill category (default: config category, then 'productivity')")
	createCmd.Flags().StringSliceVar(&createTags, "tags", nil, "Comma-separated tags")
	createCmd.Flags().StringVar(&createVersion, "skill-version", "1.0.0", "Initial version (semver)")
	createCmd.Flags().StringVar(&createLicense, "license", "", "License identifier (optional)")
	createCmd.Flags().BoolVar(&createScripts, "scripts", false, "Include a scripts/ directory")
	createCmd.Flags().BoolVar(&createReferences, "references", false, "Include a references/ directory")
	createCmd.Flags().BoolVar(&createAssets, "assets", false, "Include an assets/ directory")
	createCmd.Flags().StringVar(&createOutput, "output", "", "Output parent directory (default: config output, then current directory)")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Preview the structure without creating files")
	_ = createCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create --name <skill-name>",
	Short: "Scaffold a new skill package",
	Long: `Scaffold a new skill package with a prefilled SKILL.md stub and optional
scripts/, references/, and assets/ subdirectories. The target directory is
never overwritten.

Examples:
  skillsmith create --name sprint-planner --author Dana --scripts --references
  skillsmith create --name meeting-notes --output ./skills --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		author := createAuthor
		if author == "" {
			author = config.GetOr(config.KeyAuthor, config.DefaultAuthor)
		}
		category := createCategory
		if category == "" {
			category = config.GetOr(config.KeyCategory, config.DefaultCategory)
		}
		output := createOutput
		if output == "" {
			output = config.GetOr(config.KeyOutput, ".")
		}

		result, err := scaffold.Generate(scaffold.Params{
			Name:       createName,
			Author:     author,
			Category:   category,
			Tags:       createTags,
			Version:    createVersion,
			License:    createLicense,
			Scripts:    createScripts,
			References: createReferences,
			Assets:     createAssets,
			OutputDir:  output,
			DryRun:     createDryRun,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if result.DryRun {
			fmt.Fprintf(out, "[DRY RUN] The following structure would be created in: %s\n\n", filepath.Dir(result.PackageDir))
			fmt.Fprint(out, result.Tree())
			fmt.Fprintln(out, "\n  No files were created (--dry-run mode).")
			return nil
		}

		fmt.Fprintf(out, "Created skill package at %s/\n\n", result.PackageDir)
		fmt.Fprint(out, result.Tree())

		if len(result.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "  - %s\n", w)
			}
		}

		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Open %s and fill in the description, steps, and examples.\n",
			filepath.Join(result.PackageDir, skillfile.FileName))
		fmt.Fprintf(out, "  2. Run '%s validate %s' to check the package before publishing.\n",
			branding.CLIName(), result.PackageDir)
		return nil
	},
}
