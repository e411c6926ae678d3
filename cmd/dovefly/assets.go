package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dovefly/internal/assets"
	"github.com/vovakirdan/dovefly/internal/game"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List and validate the game art",
	Long: `Shows every asset the game loads with its required size, and checks that
the chosen asset set provides it. Files shorter or narrower than required
are padded with spaces; missing rows are an error.

Examples:
  dovefly assets
  dovefly assets --assets ./art`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with .ascii art to validate")
}

func runAssets(_ *cobra.Command, _ []string) error {
	lib, err := assets.Open(assetsDir())
	if err != nil {
		return err
	}
	present, err := lib.Names()
	if err != nil {
		return err
	}

	fmt.Printf("Assets from %s:\n", lib.Root())
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range game.Assets {
		maxNameLen = max(maxNameLen, len(a.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxNameLen, "Name", "Size", "Frames", "Status")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxNameLen, "----", "----", "------", "------")

	var failed []string
	for _, a := range game.Assets {
		status := "ok"
		switch {
		case !slices.Contains(present, a.Name):
			status = "missing"
			failed = append(failed, a.Name)
		default:
			if _, err := lib.LoadFrames(a.Name, a.W, a.H, a.Frames); err != nil {
				status = err.Error()
				failed = append(failed, a.Name)
			}
		}
		size := fmt.Sprintf("%dx%d", a.W, a.H)
		fmt.Printf("  %-*s  %-7s  %-6d  %s\n", maxNameLen, a.Name, size, a.Frames, status)
	}
	fmt.Println()

	if len(failed) > 0 {
		return fmt.Errorf("invalid assets: %s", strings.Join(failed, ", "))
	}
	fmt.Println("All assets valid.")
	return nil
}
