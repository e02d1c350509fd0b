package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"devctl.dev/devctl/internal/config"
	"devctl.dev/devctl/internal/git"
	"devctl.dev/devctl/internal/output"
)

// newInitCmd creates the init command
func newInitCmd(dir *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scan the workspace directory for git repos and write devctl.yaml",
		Long: `Scan the workspace directory's immediate subdirectories for git
repositories and write devctl.yaml, recording each repo's default branch
as its base. An existing config is overwritten after confirmation.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceDir(*dir)
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			defer splog.Close()

			configPath := filepath.Join(ws, config.FileName)
			if _, err := os.Stat(configPath); err == nil && !yes {
				if !output.IsTTY() {
					return fmt.Errorf("%s already exists (pass --yes to overwrite)", configPath)
				}
				var overwrite bool
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("%s already exists. Overwrite?", config.FileName),
					Default: false,
				}
				if err := survey.AskOne(prompt, &overwrite); err != nil {
					return fmt.Errorf("canceled")
				}
				if !overwrite {
					return fmt.Errorf("canceled")
				}
			}

			entries, err := os.ReadDir(ws)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", ws, err)
			}

			var repos []string
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				if git.IsRepository(filepath.Join(ws, entry.Name())) {
					repos = append(repos, entry.Name())
				}
			}
			sort.Strings(repos)

			if len(repos) == 0 {
				return fmt.Errorf("no git repositories found in %s", ws)
			}

			var b strings.Builder
			b.WriteString("repos:\n")
			for _, name := range repos {
				runner := git.NewRunner(filepath.Join(ws, name))
				base := runner.DefaultBranch(cmd.Context())
				fmt.Fprintf(&b, "  %s:\n", name)
				fmt.Fprintf(&b, "    path: ./%s\n", name)
				fmt.Fprintf(&b, "    base: %s\n", base)
			}

			if err := os.WriteFile(configPath, []byte(b.String()), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", configPath, err)
			}

			splog.Info("Wrote %s with %d repo(s):", config.FileName, len(repos))
			for _, name := range repos {
				splog.Info("  %s", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an existing devctl.yaml without prompting")

	return cmd
}
