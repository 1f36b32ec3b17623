package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/prism/internal/render"
)

var (
	dumpColor string
	dumpBold  bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file...]",
	Short: "Print files with colored brackets",
	Long: `Dump prints each file to stdout with ANSI color on matching
brackets. Use "-" to read from stdin.

Colors are dropped when stdout is not a terminal; override with
--color=always or --color=never.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		var renderOpts []render.ANSIOption
		switch {
		case noColor, dumpColor == "never":
			renderOpts = append(renderOpts, render.WithProfile(termenv.Ascii))
		case dumpColor == "always":
		default:
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				renderOpts = append(renderOpts, render.WithProfile(termenv.Ascii))
			}
		}
		if dumpBold {
			renderOpts = append(renderOpts, render.WithBold())
		}
		renderer := render.NewANSI(renderOpts...)

		pal := svc.Snapshot().Palette()
		for _, name := range args {
			doc, err := openTarget(svc, name)
			if err != nil {
				return err
			}
			spans, err := svc.HighlightAll(doc.ID())
			if err != nil {
				return err
			}
			if err := renderer.Render(os.Stdout, doc, pal, spans); err != nil {
				return fmt.Errorf("rendering %s: %w", doc.Name(), err)
			}
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpColor, "color", "auto", "when to color output: auto, always, never")
	dumpCmd.Flags().BoolVar(&dumpBold, "bold", false, "render brackets in bold")
	classifierFlags(dumpCmd)
	rootCmd.AddCommand(dumpCmd)
}
