package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocketberry/internal/assets"
	"github.com/vovakirdan/rocketberry/internal/gfx"
)

var flagExport string

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List or export the sprite catalog",
	Long: `List every sprite in the embedded catalog with its size.

With --export, each sprite is also written to <dir>/<name>.img in the raw
format: three little-endian uint32 (width, height, 4) followed by RGBA
pixel bytes.

Examples:
  rocketberry sprites
  rocketberry sprites --export ./img`,
	Args: cobra.NoArgs,
	RunE: runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagExport, "export", "", "Directory to write raw .img files into")
}

func runSprites(cmd *cobra.Command, _ []string) error {
	cat, err := assets.Load()
	if err != nil {
		return err
	}

	if flagExport != "" {
		if err := os.MkdirAll(flagExport, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	names := cat.Names()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Fprintf(out, "%-*s  %s\n", maxNameLen, "Name", "Size")
	fmt.Fprintf(out, "%-*s  %s\n", maxNameLen, "----", "----")
	for _, name := range names {
		sp := cat.Sprite(name)
		fmt.Fprintf(out, "%-*s  %dx%d\n", maxNameLen, name, sp.Width(), sp.Height())

		if flagExport == "" {
			continue
		}
		path := filepath.Join(flagExport, name+".img")
		if err := os.WriteFile(path, gfx.EncodeSprite(sp), 0o644); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}

	if flagExport != "" {
		fmt.Fprintf(out, "\n%d sprites written to %s\n", len(names), flagExport)
	}
	return nil
}
