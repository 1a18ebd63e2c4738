/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"postdeck/internal/colors"
	"postdeck/internal/config"
	"postdeck/internal/feed"
	"postdeck/internal/store"
	"postdeck/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse posts in an interactive card view",
	Long: `Browse posts in an interactive card view.

USAGE:
    postdeck browse

KEYS:
    j/k, tab        Move the card selection
    h/l, ←/→        Previous / next page
    1-9             Jump to a page
    d               Remove the selected post for this session
    ?               Toggle help
    q, Esc          Quit`,
	Run: runBrowse,
}

// runProgramFunc runs the bubbletea program. Can be changed for testing.
var runProgramFunc = func(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	client := feed.NewClient(feed.OptionsFromConfig())
	loader := feed.NewLoader(client, config.GetDuration("loading_min_duration", 0))

	model := tui.NewModel(store.New(), loader)
	if err := runProgramFunc(model); err != nil {
		colors.Error("failed to run browse view: " + err.Error())
	}
}
