package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/qanda"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of qanda",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qanda version %s\n", strings.TrimSpace(qanda.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
