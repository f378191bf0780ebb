package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yassirfh/shopforge/internal/datauri"
	"github.com/yassirfh/shopforge/internal/export"
	"github.com/yassirfh/shopforge/internal/history"
	"github.com/yassirfh/shopforge/internal/progress"
	"github.com/yassirfh/shopforge/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Build the site and write it as a zip archive",
	Long: `Validates the store, generates every page and asset, and writes a
self-contained zip archive. With --dir the site is written as plain
files instead of an archive.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("out", "", "archive path (default <output_dir>/<store-slug>.zip)")
	exportCmd.Flags().String("dir", "", "write plain files into this directory instead of an archive")
	exportCmd.Flags().Bool("skip-validation", false, "export even when validation reports errors")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadStore(cfg)
	if err != nil {
		return err
	}

	skipValidation, _ := cmd.Flags().GetBool("skip-validation")
	res := store.Validate(s)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		if !skipValidation {
			return fmt.Errorf("store has %d validation error(s); fix them or pass --skip-validation", len(res.Errors))
		}
	}

	e := export.NewExporter(s, cfg.Currency)

	reporter := progress.NewReporter()
	reporter.Start(estimateFiles(s))
	done := 0
	e.Progress = func(path string) {
		done++
		reporter.Update(done, path)
	}

	outDir, _ := cmd.Flags().GetString("dir")
	out, _ := cmd.Flags().GetString("out")

	var sum export.Summary
	var exportErr error
	var output string

	if outDir != "" {
		var site *export.Site
		site, sum, exportErr = e.Build(ctx)
		if exportErr == nil {
			exportErr = site.WriteDir(outDir)
		}
		output = outDir
	} else {
		if out == "" {
			out = filepath.Join(cfg.OutputDir, store.Slugify(s.Name)+".zip")
		}
		output = out
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		var f *os.File
		f, exportErr = os.Create(out)
		if exportErr == nil {
			sum, exportErr = e.Export(ctx, f)
			if closeErr := f.Close(); exportErr == nil {
				exportErr = closeErr
			}
		}
	}
	reporter.Finish()

	recordExport(ctx, cfg.HistoryDB, history.Record{
		StartedAt: start,
		Duration:  time.Since(start),
		StoreName: s.Name,
		Pages:     sum.Pages,
		Images:    sum.Images,
		Bytes:     sum.Bytes,
		Status:    statusFor(exportErr),
		Output:    output,
		Error:     errString(exportErr),
	})

	if exportErr != nil {
		return exportErr
	}
	fmt.Printf("Exported %s: %d page(s), %d image(s), %s\n",
		output, sum.Pages, sum.Images, formatBytes(sum.Bytes))
	return nil
}

// estimateFiles predicts the build's file count for the progress bar:
// home + listing + published pages + css + js + decodable images +
// optional logo + README.
func estimateFiles(s *store.Store) int {
	n := 2 + len(s.PublishedPages()) + 2 + 1
	if datauri.IsDataURI(s.Logo) {
		n++
	}
	for _, p := range s.Products {
		if datauri.IsDataURI(p.Image) {
			n++
		}
	}
	return n
}

// recordExport appends to export history. History is best-effort; a
// broken database must not fail the export itself.
func recordExport(ctx context.Context, dbPath string, rec history.Record) {
	db, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: export history unavailable: %v\n", err)
		return
	}
	defer db.Close()
	if err := history.NewStore(db).Log(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording export history: %v\n", err)
	}
}

func statusFor(err error) history.Status {
	if err != nil {
		return history.StatusFailed
	}
	return history.StatusOK
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
