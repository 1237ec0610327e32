package cli

import (
	"fmt"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/format/table"
	"github.com/atomicstack/tmux-ggg/internal/roots"
	"github.com/spf13/cobra"
)

func newAddCommand(rt *runState) *cobra.Command {
	var existOK, workspace bool
	cmd := &cobra.Command{
		Use:   "add PATH",
		Short: "Register a directory whose subdirectories are projects",
		Long: `Register a directory whose subdirectories are offered as sessions.
With --workspace, PATH is a directory of such directories: each of its
subdirectories is used as a root when the launcher runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := roots.KindProject
			if workspace {
				kind = roots.KindWorkspace
			}
			store := roots.NewSet(rt.cfg.App.DataDir).Store(kind)
			return app.Register(store, args[0], existOK, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&existOK, "exist-ok", false, "do not fail when the path is already registered")
	cmd.Flags().BoolVar(&workspace, "workspace", false, "register a directory whose subdirectories are roots")
	return cmd
}

func newRootsCommand(rt *runState) *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "List registered roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.ListRoots(roots.NewSet(rt.cfg.App.DataDir))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(statuses) == 0 {
				fmt.Fprintf(out, "No roots registered, run `%s add path/to/projects/dir`\n", rt.cfg.App.Name)
				return nil
			}
			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				state := "ok"
				if s.Missing {
					state = "missing"
				}
				rows = append(rows, []string{state, string(s.Kind), s.Path})
			}
			for _, line := range table.Format(rows, nil) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
