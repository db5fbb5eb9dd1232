package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"namesong/internal/config"
	"namesong/internal/logging"
	"namesong/internal/trace"
)

func newTraceCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trace <name>",
		Short: "Simulate the instruction trace of a name digest",
		Args:  exactNameArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			maxInstructions := cfg.Trace.MaxInstructions
			if limit > 0 {
				maxInstructions = limit
			}
			tr := trace.Simulate(args[0], trace.Options{
				MaxInstructions: maxInstructions,
				BaseAddress:     cfg.Trace.BaseAddress,
			})

			logger := logging.NewComponentLogger(ctx.loggerValue(), "trace")
			logger.Debug("trace simulated",
				logging.String("name", tr.Name),
				logging.Int("instructions", len(tr.Instructions)),
				logging.Bool("truncated", tr.Truncated))

			out := cmd.OutOrStdout()

			if outputPath != "" {
				path, err := config.ExpandPath(outputPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := tr.WriteFile(path); err != nil {
					return err
				}
				fmt.Fprintf(out, "Trace written to %s (%d instructions)\n", path, len(tr.Instructions))
				return nil
			}

			if asJSON {
				return tr.Write(out)
			}

			fmt.Fprintf(out, "Instruction trace for %q\n", tr.Name)
			for _, instr := range tr.Instructions {
				fmt.Fprintf(out, "Step %d: 0x%x - %s\n", instr.Step, uint64(instr.PC), instr.Text)
			}
			if tr.Truncated {
				fmt.Fprintln(out, "Trace truncated at instruction limit")
			}
			fmt.Fprintln(out, tr.Report.DiagnosticLine())
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the trace JSON to this file")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the instruction stream (overrides config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Stream the trace JSON to stdout")
	return cmd
}
