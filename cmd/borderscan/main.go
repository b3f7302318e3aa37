// Package main provides the CLI entry point for borderscan-go.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/borderscan-go/internal/config"
	"github.com/ukaji3/borderscan-go/internal/logging"
	"github.com/ukaji3/borderscan-go/pkg/borderscan"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/models"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/output"
	"github.com/ukaji3/borderscan-go/pkg/borderscan/parser"
)

var (
	outputPath string
	pretty     bool
	format     string
	sheets     []string
	sheetsDir  string
	configPath string
	startRow   int
	maxRow     int
	maxCol     int
	strict     bool
	logLevel   string
	logFormat  string
	areaRange  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "borderscan [input.xlsx]",
		Short: "Extract border-delimited tables from Excel files",
		Long: `borderscan-go finds tables boxed by medium borders in Excel sheets,
flattens simple tables into records and rebuilds indentation-coded
financial statements into nested trees.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&format, "format", "json", "Output format: json, yaml")
	flags.StringSliceVar(&sheets, "sheet", nil, "Sheet to extract (repeatable, default: all sheets)")
	flags.StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	flags.StringVar(&configPath, "config", "", "YAML configuration file")
	flags.IntVar(&startRow, "start-row", 0, "First row scanned for table corners")
	flags.IntVar(&maxRow, "max-row", 0, "Last row scanned for table corners")
	flags.IntVar(&maxCol, "max-col", 0, "Last column searched for closing corners (0: sheet width)")
	flags.BoolVar(&strict, "strict", false, "Fail instead of recovering from malformed tables")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: json, text")
	flags.StringVar(&areaRange, "range", "", "Only output tables intersecting this range, e.g. A40:H120")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", borderscan.ErrFileNotFound, inputPath)
	}

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Sheets = sheets
	opts.Logger = logging.New(cfg.Logging, os.Stderr)

	// Extract data
	wb, err := borderscan.ExtractWorkbook(context.Background(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if areaRange != "" {
		area, err := parser.ParseRange(areaRange)
		if err != nil {
			return err
		}
		for name, sheet := range wb.Sheets {
			wb.Sheets[name] = borderscan.FilterSheet(sheet, area)
		}
	}

	// Serialize
	data, err := output.Marshal(wb, outFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Println(string(data))
	}

	// Write per-sheet files
	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir, outFormat); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

// loadConfig reads the config file and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("start-row") {
		cfg.Detection.StartRow = startRow
	}
	if flags.Changed("max-row") {
		cfg.Detection.MaxRow = maxRow
	}
	if flags.Changed("max-col") {
		cfg.Detection.MaxCol = maxCol
	}
	if flags.Changed("strict") {
		cfg.Detection.Strict = strict
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeSheetFiles(wb *models.WorkbookData, dir string, outFormat output.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range wb.Sheets {
		data, err := output.Marshal(&sheet, outFormat, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+"."+string(outFormat))
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}
