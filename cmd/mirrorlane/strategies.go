package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-lane/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List autoplay strategies",
	Long:  `Shows the strategies the simulate command can play with.`,
	Args:  cobra.NoArgs,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No strategies available.")
		return
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range list {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, s := range list {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, s.Name, s.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mirrorlane simulate --strategy <name>' to use one.")
}
