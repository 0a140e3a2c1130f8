package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iksnae/worktimer/internal"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <entry-id> <description>",
	Short: "Change an entry's description",
	Long:  `Change the description of a recorded entry. Everything else about an entry is immutable.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := parseEntryID(args[0])
		if err != nil {
			return err
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := engine.EditDescription(entryID, strings.Join(args[1:], " ")); err != nil {
			return err
		}
		fmt.Printf("Entry %d updated\n", entryID)
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete one entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := parseEntryID(args[0])
		if err != nil {
			return err
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := engine.DeleteEntry(entryID); err != nil {
			return err
		}
		fmt.Printf("Entry %d deleted\n", entryID)
		return nil
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole entry history",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := engine.ClearEntries(); err != nil {
			return err
		}
		fmt.Println("All entries deleted")
		return nil
	},
}

func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, &internal.ValidationError{Field: "entry id", Msg: fmt.Sprintf("%q is not a valid id", arg)}
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
