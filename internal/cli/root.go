// Package cli defines the devctl cobra commands. Argument parsing and
// process exit codes live here; the workflows below only return values.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "devctl",
		Short:   "Synchronize feature branches across multiple repos",
		Long:    `devctl coordinates a single feature branch across a fleet of git repositories: creating it, pushing it, and reporting divergence.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Workspace directory containing devctl.yaml")

	rootCmd.AddCommand(newInitCmd(&dir))
	rootCmd.AddCommand(newStartCmd(&dir))
	rootCmd.AddCommand(newStatusCmd(&dir))

	return rootCmd
}

// workspaceDir resolves the -C flag to an absolute path once, so nothing
// below the CLI depends on the process working directory.
func workspaceDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace directory: %w", err)
	}
	return abs, nil
}
