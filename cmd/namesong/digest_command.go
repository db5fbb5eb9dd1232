package main

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/spf13/cobra"

	"namesong/internal/digest"
)

func newDigestCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var showFreq bool

	cmd := &cobra.Command{
		Use:   "digest <name>",
		Short: "Compute the 32-bit fingerprint of a name",
		Args:  exactNameArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := digest.Sum(args[0])

			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processing name: %s\n", report.Name)
			fmt.Fprintln(out, report.DiagnosticLine())

			if showFreq {
				fmt.Fprintln(out, renderFrequencyTable(report.Frequencies))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&showFreq, "freq", false, "Show the character frequency table")
	return cmd
}

func renderFrequencyTable(counts digest.FrequencyTable) string {
	rows := make([][]string, 0, counts.Distinct())
	for value := 0; value < len(counts); value++ {
		if counts[value] == 0 {
			continue
		}
		display := ""
		if unicode.IsPrint(rune(value)) {
			display = string(rune(value))
		}
		rows = append(rows, []string{
			strconv.Itoa(value),
			display,
			strconv.Itoa(counts[value]),
		})
	}
	return renderTable(
		[]string{"Byte", "Char", "Count"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	)
}
