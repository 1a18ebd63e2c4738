/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"postdeck/internal/colors"
	"postdeck/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or initialize the configuration",
	Long: `Inspect or initialize the configuration.

USAGE:
    postdeck config init    Write a commented default config file
    postdeck config show    Print the effective configuration`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run:   runConfigShow,
}

// configOutputWriter is the writer used by config show. Can be changed for testing.
var configOutputWriter io.Writer = os.Stdout

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path, err := config.WriteSample()
	if err != nil {
		colors.Error(err.Error())
		return
	}
	colors.Success("Wrote default config to " + path)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	fmt.Fprintf(configOutputWriter, "# config file: %s\n", config.FilePath())
	for _, pair := range config.All() {
		fmt.Fprintf(configOutputWriter, "%s = %s\n", pair.Key, pair.Value)
	}
}
