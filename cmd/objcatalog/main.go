// Package main provides the CLI entry point for objcatalog.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/output"
	"github.com/ukaji3/objcatalog-go/pkg/objcatalog/report"
)

var (
	baseDir      string
	configPath   string
	workbookPath string
	sheetName    string
	mode         string
	outputPath   string
	baselinePath string
	imageDir     string
	reportFormat string
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "objcatalog",
		Short: "Generate the object catalog from the object workbook",
		Long: `objcatalog reads the Object sheet of a workbook, reports what changed
since the previous run, and publishes the catalog data either into the
HTML catalog's data line or as a standalone JSON file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&baseDir, "dir", ".", "Base directory for relative paths")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (.json5 or .yaml; default: <dir>/catalog.json5 if present)")
	rootCmd.Flags().StringVarP(&workbookPath, "workbook", "w", "", "Input workbook (default: object.xlsx)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet holding object rows (default: Object)")
	rootCmd.Flags().StringVar(&mode, "mode", "", "Output mode: html, json (default: html)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: inzoi_catalog.html or data/objects.json)")
	rootCmd.Flags().StringVar(&baselinePath, "baseline", "", "Previous snapshot file (default: _prev_data.json)")
	rootCmd.Flags().StringVar(&imageDir, "images", "", "Icon image directory (default: img)")
	rootCmd.Flags().StringVar(&reportFormat, "report", "", "Report format: text, json, none (default: text)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	err := generate(cmd, logger)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nerror: %v\n", err)
	}
	return err
}

func generate(cmd *cobra.Command, logger *slog.Logger) error {
	cfg, err := objcatalog.LoadConfig(baseDir, configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(&cfg); err != nil {
		return err
	}
	cfg.Logger = logger

	reporter, err := report.New(cfg.Report)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out, time.Now())

	res, err := objcatalog.Run(cfg)
	if res != nil {
		if rerr := reporter.Report(out, res); rerr != nil {
			logger.Warn("failed to render report", "error", rerr)
		}
	}
	if err != nil {
		return err
	}

	printFooter(out, res.Target)
	return nil
}

// applyFlags overrides config values with the flags given on the command
// line. Flags left at their empty default do not touch the config.
func applyFlags(cfg *objcatalog.Config) error {
	return objcatalog.ApplyOverrides(cfg, objcatalog.Config{
		Workbook: workbookPath,
		Sheet:    sheetName,
		Mode:     output.Mode(mode),
		Output:   outputPath,
		Baseline: baselinePath,
		Images:   imageDir,
		Report:   reportFormat,
	})
}

func printBanner(w io.Writer, now time.Time) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  Object Catalog Generator")
	fmt.Fprintf(w, "  %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, rule)
}

func printFooter(w io.Writer, target string) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "  Done. Open the catalog in a browser:")
	fmt.Fprintf(w, "  %s\n", target)
	fmt.Fprintln(w, rule)
}
