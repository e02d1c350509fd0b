package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"devctl.dev/devctl/internal/config"
	"devctl.dev/devctl/internal/output"
	"devctl.dev/devctl/internal/state"
	"devctl.dev/devctl/internal/workflow"
)

// newStartCmd creates the start command
func newStartCmd(dir *string) *cobra.Command {
	var (
		base  string
		force bool
		repos []string
	)

	cmd := &cobra.Command{
		Use:   "start TICKET",
		Short: "Create and push a feature branch across all configured repos",
		Long: `Create a feature branch named after the ticket in every configured repo
and push it to origin with upstream tracking.

Each repo is fetched, switched to its base branch, fast-forwarded, and the
new branch is created from the updated base. Repos fail independently; the
sync state is recorded only when every repo succeeds.`,
		Args:         cobra.ExactArgs(1),
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

			splog := output.NewSplog()
			defer splog.Close()

			wctx := workflow.NewContext(cfg, splog)
			wctx.Progress = output.NewSyncProgressUI(splog)
			wctx.WriteState = func(rec state.Record) error {
				return state.Write(ws, rec)
			}

			var filter []string
			if cmd.Flags().Changed("repos") {
				filter = repos
			}

			report, err := workflow.Start(cmd.Context(), wctx, workflow.StartOptions{
				Ticket:       args[0],
				BaseOverride: base,
				Force:        force,
				Repos:        filter,
			})
			if err != nil {
				return err
			}

			if report.Failed() {
				failed := 0
				for _, o := range report.Outcomes {
					if o.Kind == workflow.OutcomeFailed {
						failed++
					}
				}
				return fmt.Errorf("%d of %d repo(s) failed", failed, len(report.Outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Override the base branch for every repo (default: per-repo 'base' in config)")
	cmd.Flags().BoolVar(&force, "force", false, "Re-use a branch that already exists locally instead of erroring")
	cmd.Flags().StringSliceVar(&repos, "repos", nil, "Only operate on these repos (default: all repos in config)")

	return cmd
}
