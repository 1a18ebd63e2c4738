/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"postdeck/internal/colors"
	"postdeck/internal/domain"
	"postdeck/internal/feed"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the post feed and print it",
	Long: `Fetch the post feed and print it.

USAGE:
    postdeck fetch [OPTIONS]

OPTIONS:
    --json       Print the posts as JSON
    -h, --help   Show this help

This is a debugging surface for the feed: it performs the same request the
browse view does, without the minimum loading delay.`,
	Run: runFetch,
}

var fetchJSON bool

// fetchOutputWriter is the writer used by runFetch. Can be changed for testing.
var fetchOutputWriter io.Writer = os.Stdout

// fetchFunc is the function used to retrieve posts. Can be changed for testing.
var fetchFunc = func(ctx context.Context) ([]domain.Post, error) {
	client := feed.NewClient(feed.OptionsFromConfig())
	return client.Fetch(ctx)
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "Print the posts as JSON")
}

func runFetch(cmd *cobra.Command, args []string) {
	posts, err := fetchFunc(cmd.Context())
	if err != nil {
		colors.Error("failed to fetch posts: " + err.Error())
		return
	}

	if fetchJSON {
		enc := json.NewEncoder(fetchOutputWriter)
		enc.SetIndent("", "  ")
		if err := enc.Encode(postsPayload(posts)); err != nil {
			colors.Error("failed to encode posts: " + err.Error())
		}
		return
	}

	if len(posts) == 0 {
		fmt.Fprintln(fetchOutputWriter, "No posts.")
		return
	}
	for _, post := range posts {
		fmt.Fprintf(fetchOutputWriter, "%4d  %s\n", post.ID, post.Title)
	}
	fmt.Fprintf(fetchOutputWriter, "\n%d posts\n", len(posts))
}

// fetchedPost is the JSON shape printed by fetch --json; it carries the
// derived image URL alongside the wire fields.
type fetchedPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

func postsPayload(posts []domain.Post) []fetchedPost {
	out := make([]fetchedPost, len(posts))
	for i, post := range posts {
		out[i] = fetchedPost{
			ID:       post.ID,
			Title:    post.Title,
			Body:     post.Body,
			ImageURL: post.ImageURL,
		}
	}
	return out
}
