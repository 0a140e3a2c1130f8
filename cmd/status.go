package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/worktimer/internal"
	"github.com/spf13/cobra"
)

var (
	watch         bool
	watchInterval time.Duration
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	runningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-workspace timers and today's total",
	Long: `Show every workspace with its elapsed time and today's total worked time.

The elapsed time of the timing workspace keeps counting; --watch refreshes
the view until interrupted. Watching only reads engine state, it never
mutates it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		if !watch {
			fmt.Print(renderStatus(engine))
			return nil
		}

		for {
			// Home the cursor and clear before each repaint
			fmt.Print("\033[H\033[2J")
			fmt.Print(renderStatus(engine))
			fmt.Println(idleStyle.Render("Press Ctrl+C to exit"))
			time.Sleep(watchInterval)
		}
	},
}

func renderStatus(engine *internal.Engine) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Workspaces"))
	b.WriteByte('\n')

	active := engine.ActiveWorkspace()
	for _, w := range engine.Workspaces() {
		elapsed := internal.FormatClockDuration(engine.CurrentElapsed(w.ID).Milliseconds())
		if w.ID == active {
			b.WriteString(fmt.Sprintf("  %d. %s  %s %s\n",
				w.ID, w.Name, runningStyle.Render(elapsed), runningStyle.Render("● timing")))
		} else {
			b.WriteString(fmt.Sprintf("  %d. %s  %s\n", w.ID, w.Name, idleStyle.Render(elapsed)))
		}
	}

	total := internal.FormatClockDuration(engine.TotalToday().Milliseconds())
	b.WriteString(fmt.Sprintf("\nWorked today: %s\n", totalStyle.Render(total)))
	return b.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep refreshing the status view")
	statusCmd.Flags().DurationVar(&watchInterval, "interval", time.Second, "Refresh interval for --watch")
}
