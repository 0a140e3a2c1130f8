package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// workspacesCmd represents the workspaces command
var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List and manage workspaces",
	Long: `List workspaces, rename one, or change the workspace count.

Reducing the count hides the higher-numbered workspaces without deleting
them or their entries; raising it again brings them back intact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		active := engine.ActiveWorkspace()
		for _, w := range engine.Workspaces() {
			marker := " "
			if w.ID == active {
				marker = "●"
			}
			fmt.Printf("%s %d. %s (%d entries)\n", marker, w.ID, w.Name, len(engine.Entries(w.ID)))
		}
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <workspace-id> <name>",
	Short: "Rename a workspace",
	Args:  cobra.MinimumNArgs(2),
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

		if err := engine.RenameWorkspace(workspaceID, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Printf("Workspace %d is now %q\n", workspaceID, engine.WorkspaceName(workspaceID))
		return nil
	},
}

var countCmd = &cobra.Command{
	Use:   "count <n>",
	Short: "Set the number of workspaces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q", args[0])
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := engine.SetWorkspaceCount(n); err != nil {
			return err
		}
		fmt.Printf("Workspace count set to %d\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.AddCommand(renameCmd)
	workspacesCmd.AddCommand(countCmd)
}
