package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"devctl.dev/devctl/internal/config"
	devctlerrors "devctl.dev/devctl/internal/errors"
	"devctl.dev/devctl/internal/output"
	"devctl.dev/devctl/internal/state"
	"devctl.dev/devctl/internal/workflow"
)

// newStatusCmd creates the status command
func newStatusCmd(dir *string) *cobra.Command {
	var repos []string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show branch synchronization status for all configured repos",
		Long: `Check every configured repo against the recorded sync state and print a
table of local branch, remote presence and working tree cleanliness. Exits
non-zero when any repo has drifted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspaceDir(*dir)
			if err != nil {
				return err
			}

			cfg, err := config.Load(ws)
			if err != nil {
				return err
			}

			rec, err := state.Load(ws)
			if errors.Is(err, devctlerrors.ErrStateNotFound) {
				return fmt.Errorf("no sync state recorded yet, run 'devctl start TICKET-123' first")
			}
			if err != nil {
				return err
			}

			splog := output.NewSplog()
			defer splog.Close()

			var filter []string
			if cmd.Flags().Changed("repos") {
				filter = repos
			}

			wctx := workflow.NewContext(cfg, splog)
			report, err := workflow.Status(cmd.Context(), wctx, workflow.StatusOptions{
				ExpectedBranch: rec.Branch,
				Repos:          filter,
			})
			if err != nil {
				return err
			}

			table := output.NewStatusTable()
			for _, row := range report.Rows {
				if row.Err != nil {
					table.AddErrorRow(row.Repo, row.Err.Error())
					continue
				}
				note := ""
				if !row.Matches {
					note = rec.Branch
				}
				table.AddRow(row.Repo, row.Branch, row.RemoteExists, row.Clean, note)
			}
			splog.Info("%s", table.Render())

			if report.HasIssues() {
				return fmt.Errorf("one or more repos need attention")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&repos, "repos", nil, "Only check these repos (default: all repos in config)")

	return cmd
}
