package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/qanda"
	qlifecycle "github.com/aretw0/qanda/pkg/adapters/lifecycle"
	"github.com/aretw0/qanda/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print change events for the store files",
	Long: `Watch observes the data directory and prints an event whenever one of
the store files changes, including edits made by other processes. An
optional pattern filters on the file name (e.g. "*.json").`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		svc, err := qanda.Open(dataDir, qanda.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open knowledge base", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		events, err := svc.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		source := qlifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		for raw := range source.Events() {
			e, ok := raw.(core.Event)
			if !ok {
				continue
			}
			at := time.Unix(e.Timestamp, 0).Format(core.TimeFormat)
			fmt.Printf("[%s] %s %s\n", at, e.Type, e.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
