package cmd

import (
	"fmt"
	"strconv"

	"github.com/iksnae/worktimer/internal"
	"github.com/spf13/cobra"
)

var stopMessage string

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop [workspace-id]",
	Short: "Stop the running timer and record an entry",
	Long: `Stop a workspace's timer, flushing the elapsed interval into an entry.

Without an argument the active workspace is stopped. Stopping a workspace
that is not timing does nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		var entry *internal.Entry
		if len(args) == 1 {
			workspaceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid workspace id %q", args[0])
			}
			entry, err = engine.Stop(workspaceID, stopMessage)
			if err != nil {
				return err
			}
		} else {
			entry, err = engine.StopActive(stopMessage)
			if err != nil {
				return err
			}
		}

		if entry == nil {
			fmt.Println("No timer running")
			return nil
		}
		fmt.Printf("Recorded %s on %s: %s\n",
			internal.FormatClockDuration(entry.DurationMS),
			engine.WorkspaceName(entry.WorkspaceID),
			entry.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	stopCmd.Flags().StringVarP(&stopMessage, "message", "m", "", "Description for the recorded entry")
}
