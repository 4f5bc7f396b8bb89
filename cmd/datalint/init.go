package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datalint/datalint/internal/rules"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create starter config and rules files",
	Long: `Set up a directory for datalint.

Creates:
  - .datalint.yaml        project configuration template
  - datalint.rules.yaml   starter rule set

The directory argument is optional and defaults to the current directory.

Examples:
  datalint init              # Initialize current directory
  datalint init ./data       # Initialize specific directory
  datalint init --force      # Overwrite existing files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", absPath, err)
	}

	fmt.Printf("Initializing datalint in %s...\n\n", absPath)

	created, err := createProjectConfig(absPath)
	if err != nil {
		return fmt.Errorf("creating project config: %w", err)
	}
	if created {
		printStatus("✓", "Created .datalint.yaml", color.FgGreen)
	} else {
		printStatus("⚠", ".datalint.yaml already exists (use --force to overwrite)", color.FgYellow)
	}

	created, err = createStarterRules(absPath)
	if err != nil {
		return fmt.Errorf("creating starter rules: %w", err)
	}
	if created {
		printStatus("✓", "Created datalint.rules.yaml", color.FgGreen)
	} else {
		printStatus("⚠", "datalint.rules.yaml already exists (use --force to overwrite)", color.FgYellow)
	}

	fmt.Printf("\n%s datalint initialization complete!\n\n", color.GreenString("✓"))
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit datalint.rules.yaml to match your data")
	fmt.Println()
	fmt.Println("  2. Validate a file:")
	fmt.Println("     datalint validate data.csv --rules datalint.rules.yaml")
	fmt.Println()
	fmt.Println("  3. Learn more:")
	fmt.Println("     datalint --help")

	return nil
}

// createProjectConfig writes .datalint.yaml unless it already exists.
func createProjectConfig(dir string) (bool, error) {
	path := filepath.Join(dir, ".datalint.yaml")
	if _, err := os.Stat(path); err == nil && !initForce {
		return false, nil
	}

	template := `# datalint project configuration.
# This file overrides defaults from ~/.config/datalint/config.yaml

# output:
#   dir: ./reports
#   suffix: _validated

# session:
#   path: ~/.local/share/datalint/datalint.db
#   retention_days: 30

# no_color: false
# verbose: false
`

	if err := os.WriteFile(path, []byte(template), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// createStarterRules writes datalint.rules.yaml unless it already exists.
func createStarterRules(dir string) (bool, error) {
	path := filepath.Join(dir, "datalint.rules.yaml")
	if _, err := os.Stat(path); err == nil && !initForce {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(rules.StarterYAML), 0644); err != nil {
		return false, err
	}
	return true, nil
}
