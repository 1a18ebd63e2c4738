/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"postdeck/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the postdeck version",
	Run:   runVersion,
}

// versionOutputWriter is the writer used by runVersion. Can be changed for testing.
var versionOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(versionOutputWriter, "postdeck version %s\n", version.String())
}
