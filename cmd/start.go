package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <workspace-id>",
	Short: "Start timing a workspace",
	Long: `Start the timer on a workspace.

If another workspace is already timing, its interval is flushed into an
entry first. Starting the workspace that is already timing does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid workspace id %q", args[0])
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		previous := engine.ActiveWorkspace()
		if err := engine.Start(workspaceID); err != nil {
			return err
		}

		if previous == workspaceID {
			fmt.Printf("%s is already timing\n", engine.WorkspaceName(workspaceID))
			return nil
		}
		if previous != 0 {
			fmt.Printf("Stopped %s\n", engine.WorkspaceName(previous))
		}
		fmt.Printf("Started %s\n", engine.WorkspaceName(workspaceID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
