package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/worktimer/internal"
	"github.com/spf13/cobra"
)

var (
	recordsWorkspace int
	recordsRange     string
)

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("243"))

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the entry history with filters and summary stats",
	Long: `Show recorded entries, newest first, with count, total and average.

Entries can be narrowed to one workspace and to a date range anchored at
local midnight: today, the last seven days, or the last calendar month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateRange, err := internal.ParseDateRange(recordsRange)
		if err != nil {
			return err
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		filter := internal.FilterState{Workspace: recordsWorkspace, Range: dateRange}
		entries := internal.ApplyFilter(engine.AllEntries(), filter, time.Now())

		if len(entries) == 0 {
			fmt.Println("No entries match")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWORKSPACE\tDATE\tSTART\tEND\tDURATION\tDESCRIPTION")
		for _, e := range entries {
			start := e.StartTime.Local()
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				e.ID,
				engine.WorkspaceName(e.WorkspaceID),
				start.Format("2006-01-02"),
				start.Format("15:04:05"),
				e.EndTime.Local().Format("15:04:05"),
				internal.FormatClockDuration(e.DurationMS),
				e.Description)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println(summaryStyle.Render(summaryLine(internal.Summarize(entries))))
		return nil
	},
}

func summaryLine(s internal.Summary) string {
	return fmt.Sprintf("%d entries, total %s, average %s",
		s.Count,
		internal.FormatClockDuration(s.TotalMS),
		internal.FormatClockDuration(s.AverageMS))
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().IntVar(&recordsWorkspace, "workspace", 0, "Only this workspace id (0 = all)")
	recordsCmd.Flags().StringVar(&recordsRange, "range", "all", "Date range: all, today, week, month")
}
