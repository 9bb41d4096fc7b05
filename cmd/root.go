// Package cmd is for command line interactions with fastqstats
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thorn95/fastqstats/benchmark"
	"github.com/Thorn95/fastqstats/config"
	"github.com/Thorn95/fastqstats/tools/fastq_qcsum"
	"github.com/Thorn95/fastqstats/tools/qc_report"
)

// NewRootCmd builds the fastqstats command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string
	var bench bool

	rootCmd := &cobra.Command{
		Use:   "fastqstats <fastq_path>",
		Short: "FASTQ quality control and summary tool",
		Long: `fastqstats computes summary statistics for a FASTQ file (plain or gzip),
classifies per-base quality, per-base content, per-read quality and adapter
content as PASS, Warning or FAIL, and writes <filename>_summary.txt.

Thresholds can also be set in a YAML/TOML/JSON file (--config) or through
FASTQSTATS_* environment variables, e.g. FASTQSTATS_ADAPTER_WARN=0.02.`,
		Version:       config.Main_version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
				}
			}
			thresholds, opts, err := config.Load(v)
			if err != nil {
				return err
			}

			logger := log.New(cmd.ErrOrStderr(), "fastqstats: ", 0)
			run := func() error {
				return runQCSum(cmd.OutOrStdout(), logger, args[0], thresholds, opts)
			}
			if bench {
				label := fmt.Sprintf("fastqstats %s", strings.Join(os.Args[1:], " "))
				return benchmark.Run(logger, label, run)
			}
			return run()
		},
	}

	flags := rootCmd.Flags()
	d := config.DefaultThresholds()
	flags.Float64("base-quality-warn", d.BaseQualityWarn, "Base quality warning threshold")
	flags.Float64("base-quality-fail", d.BaseQualityFail, "Base quality fail threshold")
	flags.Float64("base-content-warn", d.BaseContentWarn, "Base frequency warning threshold")
	flags.Float64("base-content-fail", d.BaseContentFail, "Base frequency fail threshold")
	flags.Float64("read-quality-warn", d.ReadQualityWarn, "Mean read quality warning threshold")
	flags.Float64("read-quality-fail", d.ReadQualityFail, "Mean read quality fail threshold")
	flags.Float64("adapter-warn", d.AdapterWarn, "Adapter contamination warning threshold")
	flags.Float64("adapter-fail", d.AdapterFail, "Adapter contamination fail threshold")
	flags.String("out-dir", ".", "Directory the report files are written to")
	flags.Bool("csv", false, "Also write per-position statistics to <filename>_per_position.csv")
	flags.Bool("json", false, "Also write the summary to <filename>_summary.json")
	flags.Bool("plots", false, "Also write per-base quality and content SVG plots")
	flags.Bool("no-color", false, "Disable coloured verdicts on the console")
	flags.StringVar(&cfgFile, "config", "", "Threshold config file (yaml, toml, json)")
	flags.BoolVar(&bench, "benchmark", false, "Report run time and memory usage")

	config.SetDefaults(v)
	v.SetEnvPrefix("FASTQSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		log.Fatalf("unable to bind flags: %v", err)
	}

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runQCSum(out io.Writer, logger *log.Logger, path string, t config.Thresholds, opts config.Options) error {
	logger.Printf("reading sequences from %s", path)
	summary, err := fastq_qcsum.StatsFastq(path, t)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	resfile, err := qc_report.WriteText(opts.OutDir, summary)
	if err != nil {
		return err
	}
	if opts.CSV {
		p, err := qc_report.WritePerPositionCSV(opts.OutDir, summary)
		if err != nil {
			return err
		}
		logger.Printf("wrote per-position statistics to %s", p)
	}
	if opts.JSON {
		p, err := qc_report.WriteJSON(opts.OutDir, summary)
		if err != nil {
			return err
		}
		logger.Printf("wrote JSON summary to %s", p)
	}
	if opts.Plots {
		paths, err := qc_report.WritePlots(opts.OutDir, summary)
		if err != nil {
			return err
		}
		logger.Printf("wrote plots to %s", strings.Join(paths, ", "))
	}

	printVerdicts(out, summary, opts.NoColor)
	fmt.Fprintf(out, "Results written to %s\n", resfile)
	return nil
}

func printVerdicts(out io.Writer, s *fastq_qcsum.Summary, noColor bool) {
	paint := map[fastq_qcsum.Verdict]*color.Color{
		fastq_qcsum.Pass:    color.New(color.FgGreen),
		fastq_qcsum.Warning: color.New(color.FgYellow),
		fastq_qcsum.Fail:    color.New(color.FgRed, color.Bold),
	}
	for _, v := range s.Verdicts {
		c := paint[v.Verdict]
		if noColor {
			c.DisableColor()
		}
		fmt.Fprintf(out, "%-27s %s\n", v.Metric.String()+":", c.Sprint(v.Verdict))
	}
}
