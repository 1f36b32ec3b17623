package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/palette"
)

var (
	palGenerate int
	palSoft     bool
	palPreset   string
	palPresets  string
	palCheck    bool
)

// distinctFloor is the smallest pairwise Lab distance --check accepts.
// Palettes below it have colors that blur together at a glance.
const distinctFloor = 0.1

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the active bracket colors",
	Long: `Palette prints one swatch per color in depth order. By default the
configured colors are shown; --generate replaces them with evenly
spaced hues, --soft with muted generated tones, and --preset with a
named entry from a YAML presets file.

--check additionally measures how far apart the colors are and fails
when any two are too close to tell apart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pal, err := resolvePalette()
		if err != nil {
			return err
		}

		profile := termenv.ColorProfile()
		if noColor {
			profile = termenv.Ascii
		}
		for i, c := range pal.Colors() {
			swatch := profile.String("██████").Foreground(profile.Color(c.Hex()))
			fmt.Fprintf(os.Stdout, "%d  %s  %s\n", i, swatch, c.Hex())
		}

		if palCheck && pal.Len() > 1 {
			d := palette.Distinct(pal)
			fmt.Fprintf(os.Stdout, "min pairwise distance: %.3f\n", d)
			if d < distinctFloor {
				return fmt.Errorf("palette colors are too similar (%.3f < %.2f)", d, distinctFloor)
			}
		}
		return nil
	},
}

// resolvePalette picks the palette source from the flags.
func resolvePalette() (*palette.Palette, error) {
	switch {
	case palPreset != "":
		if palPresets == "" {
			return nil, errors.New("--preset requires --presets FILE")
		}
		presets, err := palette.LoadPresets(palPresets)
		if err != nil {
			return nil, err
		}
		preset, ok := palette.FindPreset(presets, palPreset)
		if !ok {
			return nil, fmt.Errorf("preset %q not found in %s", palPreset, palPresets)
		}
		return preset.Palette()

	case palGenerate > 0 && palSoft:
		return palette.GenerateSoft(palGenerate)

	case palGenerate > 0:
		return palette.Generate(palGenerate)

	default:
		opts, err := loadOptions()
		if err != nil {
			return nil, err
		}
		snap, err := config.NewSnapshot(opts)
		if err != nil {
			return nil, err
		}
		return snap.Palette(), nil
	}
}

func init() {
	paletteCmd.Flags().IntVar(&palGenerate, "generate", 0, "generate N evenly spaced colors instead")
	paletteCmd.Flags().BoolVar(&palSoft, "soft", false, "use muted tones with --generate")
	paletteCmd.Flags().StringVar(&palPreset, "preset", "", "named preset to show")
	paletteCmd.Flags().StringVar(&palPresets, "presets", "", "YAML presets file")
	paletteCmd.Flags().BoolVar(&palCheck, "check", false, "fail when two colors are nearly identical")
	rootCmd.AddCommand(paletteCmd)
}
