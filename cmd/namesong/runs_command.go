package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"namesong/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect the composition history",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))
	runsCmd.AddCommand(newRunsClearCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var name string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded compositions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			var listed []*runs.Run
			if name != "" {
				listed, err = store.ListByName(cmd.Context(), name)
			} else {
				listed, err = store.List(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, listed)
			}

			out := cmd.OutOrStdout()
			if len(listed) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(listed))
			for _, run := range listed {
				rows = append(rows, []string{
					shortID(run.ID),
					run.Name,
					strconv.FormatUint(uint64(run.Result), 10),
					strconv.Itoa(run.Tempo),
					run.Key,
					strconv.Itoa(run.NoteCount),
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Result", "Tempo", "Key", "Notes", "Created"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show (0 for all)")
	cmd.Flags().StringVar(&name, "name", "", "Only show runs for this name")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit runs as JSON")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded composition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, run)
		},
	}
}

func newRunsClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the composition history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			deleted, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d runs\n", deleted)
			return nil
		},
	}
}
