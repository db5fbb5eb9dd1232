package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"namesong/internal/config"
	"namesong/internal/logging"
	"namesong/internal/music"
	"namesong/internal/runs"
	"namesong/internal/trace"
)

func newComposeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var tracePath string
	var asJSON bool
	var noSave bool

	cmd := &cobra.Command{
		Use:   "compose <name>",
		Short: "Compose musical data from a name",
		Long: `Compose digests the name, simulates the instruction trace of that
computation, and maps the trace to notes, rhythms and instruments. The
resulting musical data file feeds the audio front end; each saved
composition is recorded in the run history.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if tracePath != "" {
				if len(args) != 0 {
					return fmt.Errorf("usage: namesong compose --trace <file> (no name argument)")
				}
				return nil
			}
			return exactNameArg(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var tr *trace.Trace
			if tracePath != "" {
				path, err := config.ExpandPath(tracePath)
				if err != nil {
					return fmt.Errorf("resolve trace path: %w", err)
				}
				tr, err = trace.ReadFile(path)
				if err != nil {
					return err
				}
			} else {
				tr = trace.Simulate(args[0], trace.Options{
					MaxInstructions: cfg.Trace.MaxInstructions,
					BaseAddress:     cfg.Trace.BaseAddress,
				})
			}

			score := music.Compose(tr, music.Options{
				SlowTempo:   cfg.Music.SlowTempo,
				MediumTempo: cfg.Music.MediumTempo,
				FastTempo:   cfg.Music.FastTempo,
				FallbackKey: cfg.Music.DefaultKey,
			})

			logger := logging.NewComponentLogger(ctx.loggerValue(), "compose")

			savedPath := ""
			if !noSave {
				runID := uuid.NewString()
				savedPath = outputPath
				if savedPath == "" {
					savedPath = filepath.Join(cfg.Paths.OutputDir, fmt.Sprintf("musical_data_%s.json", runID))
				}
				savedPath, err = config.ExpandPath(savedPath)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := score.WriteFile(savedPath); err != nil {
					return err
				}

				store, err := runs.Open(cfg)
				if err != nil {
					return err
				}
				defer store.Close()

				run, err := store.Record(cmd.Context(), runs.Run{
					ID:           runID,
					Name:         tr.Name,
					Length:       tr.Report.Length,
					Hash:         tr.Report.Hash,
					Result:       tr.Report.Result,
					Instructions: len(tr.Instructions),
					Tempo:        score.Tempo,
					Key:          score.Key,
					NoteCount:    len(score.Notes),
					ScorePath:    savedPath,
				})
				if err != nil {
					return err
				}
				logger.Info("composition recorded",
					logging.String("run_id", run.ID),
					logging.String("name", run.Name),
					logging.Uint64("result", uint64(run.Result)),
					logging.Int("notes", run.NoteCount))
			}

			if asJSON {
				return writeJSON(cmd, score)
			}

			renderScoreSummary(cmd.OutOrStdout(), tr, score, savedPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the musical data to this file")
	cmd.Flags().StringVar(&tracePath, "trace", "", "Compose from an existing trace file instead of simulating")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the score as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip writing files and recording history")
	return cmd
}

func renderScoreSummary(out io.Writer, tr *trace.Trace, score *music.Score, savedPath string) {
	fmt.Fprintf(out, "Composed %q: %d notes\n", tr.Name, len(score.Notes))
	fmt.Fprintln(out, tr.Report.DiagnosticLine())
	fmt.Fprintf(out, "Tempo: %d BPM\n", score.Tempo)
	fmt.Fprintf(out, "Key: %s major\n", score.Key)

	usage := score.InstrumentUsage()
	total := len(score.Instruments)
	if len(usage) > 0 {
		fmt.Fprintln(out, "Instrument usage:")
		if stdoutIsTerminal() {
			rows := make([][]string, 0, len(usage))
			for _, entry := range usage {
				rows = append(rows, []string{
					music.DisplayName(entry.Instrument),
					fmt.Sprintf("%d", entry.Count),
					fmt.Sprintf("%.1f%%", float64(entry.Count)/float64(total)*100),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Instrument", "Notes", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
		} else {
			for _, entry := range usage {
				fmt.Fprintf(out, "  %s: %d notes (%.1f%%)\n",
					music.DisplayName(entry.Instrument), entry.Count, float64(entry.Count)/float64(total)*100)
			}
		}
	}

	if notation := score.Notation(10); len(notation) > 0 {
		fmt.Fprintln(out, "First notes:")
		for i, line := range notation {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, line)
		}
	}

	if savedPath != "" {
		fmt.Fprintf(out, "Musical data saved to %s\n", savedPath)
	}
}
