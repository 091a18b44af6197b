package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends that 'flappy play --frontend' accepts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range frontends {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Description)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --frontend <name>' to use one.")
}
