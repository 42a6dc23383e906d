package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/qanda"
	"github.com/aretw0/qanda/pkg/core"
	"github.com/aretw0/qanda/pkg/export"
)

var (
	exportUser     string
	exportFormat   string
	exportSubjects []string
	exportOut      string
)

// exportCmd renders a user's subjects to an artifact without entering
// the session loop. The password is still required; exports only ever
// contain the acting user's own entries.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's Q&As to csv, json, pdf or md",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			fatal("Invalid format", err)
		}

		password, err := getPassword("Password", os.Stdout)
		if err != nil {
			fatal("Failed to read password", err)
		}

		svc, err := qanda.Open(dataDir,
			qanda.WithLogger(slog.Default()),
			qanda.WithWatching(false),
		)
		if err != nil {
			fatal("Failed to open knowledge base", err)
		}

		ctx := cmd.Context()
		if err := svc.Authenticate(ctx, exportUser, password); err != nil {
			fmt.Println("Invalid credentials")
			os.Exit(1)
		}

		view, err := svc.ListOwned(ctx, exportUser)
		if err != nil {
			fatal("Failed to load entries", err)
		}

		artifact, err := export.Build(exportUser, view, exportSubjects, format)
		if errors.Is(err, core.ErrNothingToExport) {
			fmt.Println("No Q&As to export. Add some first!")
			os.Exit(1)
		}
		if err != nil {
			fatal("Export failed", err)
		}

		target := filepath.Join(exportOut, artifact.Name)
		if err := os.WriteFile(target, artifact.Data, 0o644); err != nil {
			fatal("Failed to write export", err)
		}
		fmt.Printf("Wrote %s (%s)\n", target, artifact.MIME)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportUser, "username", "u", "", "Acting username")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: csv, json, pdf or md")
	exportCmd.Flags().StringSliceVarP(&exportSubjects, "subjects", "s", []string{"*"}, "Subject name patterns to include")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Directory to write the artifact to")
	exportCmd.MarkFlagRequired("username")
}
