package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocketberry/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List display backends",
	Long:  `Shows the display backends that 'rocketberry play --backend' accepts.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No backends available.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'rocketberry play --backend <name>' to use one.")
}
