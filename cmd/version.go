package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thorn95/fastqstats/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information for fastqstats and its components",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "fastqstats - Version Information Menu")
			fmt.Fprintln(out, "Central Executable:")
			fmt.Fprintf(out, "\tfastqstats:\t\t%s\n", config.Main_version)
			fmt.Fprintf(out, "\nComponents:\n")
			fmt.Fprintf(out, "\tFASTQ QC Summary:\t%s\n", config.FASTQ_QCSum)
			fmt.Fprintf(out, "\tQC Report Writer:\t%s\n", config.QC_Report)
			fmt.Fprintf(out, "\tBenchmark:\t\t%s\n", config.Benchmark)
		},
	}
}
