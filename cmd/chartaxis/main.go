// Package main provides the CLI entry point for chartaxis.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ukaji3/chartaxis-go/internal/config"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/models"
	"github.com/ukaji3/chartaxis-go/pkg/chartaxis/output"
)

type flags struct {
	outputPath string
	pretty     bool
	mode       string
	split      int
	decimals   int
	timeFormat string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "chartaxis [input.xlsx|charts.toml]",
		Short: "Resolve chart axis ranges, ticks and labels",
		Long: `chartaxis resolves the axes of charts declared in an Excel workbook or a
TOML chart file: effective ranges, tick positions and tick labels, written as JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if f.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level)
			ctx := chartaxis.WithLogger(cmd.Context(), logger)

			if err := run(ctx, stdout, args[0], f); err != nil {
				logger.Error(err.Error())
				return err
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&f.mode, "mode", "standard", "Read mode: light, standard, verbose")
	rootCmd.Flags().IntVar(&f.split, "split", 0, "Interval count for continuous axes (default: per axis)")
	rootCmd.Flags().IntVar(&f.decimals, "decimals", -1, "Digits on value labels (default: per axis)")
	rootCmd.Flags().StringVar(&f.timeFormat, "time-format", "", "Pattern for time labels, e.g. yyyy-MM-dd or %Y-%m-%d")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func run(ctx context.Context, stdout io.Writer, inputPath string, f flags) error {
	logger := chartaxis.LoggerFromContext(ctx)

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	mode, ok := chartaxis.ParseMode(f.mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", f.mode)
	}

	opts := chartaxis.Options{
		Mode:           mode,
		SplitNumber:    f.split,
		DateTimeFormat: f.timeFormat,
	}
	if f.decimals >= 0 {
		opts.DecimalCount = &f.decimals
	}

	var jsonData []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(inputPath)); ext {
	case ".toml":
		jsonData, err = resolveChartFile(inputPath, opts, f.pretty)
	case ".xlsx", ".xlsm":
		var wb *models.WorkbookData
		wb, err = chartaxis.Resolve(ctx, inputPath, opts)
		if err != nil {
			return fmt.Errorf("resolution failed: %w", err)
		}
		jsonData, err = output.ToJSON(wb, f.pretty)
	default:
		return fmt.Errorf("unsupported input %q: expected .xlsx or .toml", inputPath)
	}
	if err != nil {
		return err
	}

	if f.outputPath != "" {
		if err := os.WriteFile(f.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote output", "path", f.outputPath, "size", humanize.Bytes(uint64(len(jsonData))))
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(jsonData))
	return err
}

// resolveChartFile resolves every chart of a TOML chart file.
func resolveChartFile(path string, opts chartaxis.Options, pretty bool) ([]byte, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	charts, err := file.Build()
	if err != nil {
		return nil, err
	}

	resolved := make([]models.Chart, 0, len(charts))
	for _, c := range charts {
		opts.Apply(c.XAxis)
		opts.Apply(c.YAxis)
		mc, err := c.Resolve()
		if err != nil {
			return nil, err
		}
		if !opts.ShouldIncludeValues() {
			for i := range mc.Series {
				mc.Series[i].Values = nil
			}
		}
		resolved = append(resolved, mc)
	}

	data, err := output.ChartsToJSON(resolved, pretty)
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return data, nil
}
