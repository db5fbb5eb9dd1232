package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exactNameArg enforces the single positional name argument and keeps the
// failure message a usage line.
func exactNameArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: namesong %s", cmd.Use)
	}
	return nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
