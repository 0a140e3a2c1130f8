package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/iksnae/worktimer/internal"
	"github.com/iksnae/worktimer/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat    string
	exportDir       string
	exportWorkspace int
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries to a file",
	Long: `Export the entry history to a file (csv, json, yaml).

Rows are written newest first with dates and times rendered in the local
timezone. Exporting with no matching entries is reported and produces no
file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		format := exportFormat
		if format == "" {
			format = cfg.ExportFormat
		}
		outDir := exportDir
		if outDir == "" {
			outDir = cfg.ExportDir
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		engine, cleanup, err := openEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		var entries []internal.Entry
		if exportWorkspace > 0 {
			entries = engine.Entries(exportWorkspace)
		} else {
			entries = engine.AllEntries()
		}
		if len(entries) == 0 {
			return internal.ErrNoEntries
		}

		names := make(map[int]string)
		for _, w := range engine.Workspaces() {
			names[w.ID] = w.Name
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		filename := fmt.Sprintf("worktimer_%s.%s", time.Now().Format("2006-01-02_150405"), exporter.Extension())
		path := filepath.Join(outDir, filename)

		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create file %s: %w", path, err)
		}
		if err := exporter.Export(entries, names, file); err != nil {
			file.Close()
			os.Remove(path)
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close file %s: %w", path, err)
		}

		fmt.Printf("Exported %d entries to %s\n", len(entries), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format (csv, json, yaml)")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "", "Output directory")
	exportCmd.Flags().IntVar(&exportWorkspace, "workspace", 0, "Only this workspace id (0 = all)")
}
