package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/prism/internal/config/notify"
	"github.com/dshills/prism/internal/render"
)

var viewWatch bool

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a file with colored brackets",
	Long: `View opens a full-screen read-only pager. Arrow keys and hjkl
scroll, space and ctrl-f/ctrl-b page, g/G jump, q quits.

With --watch the config file is reloaded on change and the colors
update live.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		doc, err := svc.OpenFileAs(args[0], mimeType)
		if err != nil {
			return err
		}
		spans, err := svc.HighlightAll(doc.ID())
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		viewer := render.NewViewer(screen, doc, svc.Snapshot().Palette(), spans)

		if viewWatch {
			path, err := configPath()
			if err != nil {
				return err
			}
			sub := svc.Subscribe(func(notify.Change) {
				spans, err := svc.HighlightAll(doc.ID())
				if err != nil {
					return
				}
				viewer.Update(svc.Snapshot().Palette(), spans)
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			})
			defer sub.Unsubscribe()
			if err := svc.WatchConfig(path); err != nil {
				return err
			}
		}

		return viewer.Run()
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reload colors when the config file changes")
	classifierFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}
