// Package domain provides the domain layer for posts.
// It contains the post entity and its validation rules.
package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Post represents a single post fetched from the remote feed.
type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	// ImageURL is derived client-side from the post ID and is not part of
	// the wire format.
	ImageURL string `json:"-"`
}

// Validate validates the post and returns an error if invalid.
func (p *Post) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("invalid post ID: %d", p.ID)
	}

	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("post title cannot be empty")
	}

	return nil
}

// Excerpt returns the post body collapsed to a single line and trimmed to at
// most max runes, with an ellipsis when truncated.
func (p Post) Excerpt(max int) string {
	body := strings.Join(strings.Fields(p.Body), " ")
	if max <= 0 || utf8.RuneCountInString(body) <= max {
		return body
	}
	if max <= 3 {
		return string([]rune(body)[:max])
	}
	return string([]rune(body)[:max-3]) + "..."
}

// NewPost creates a new post with validation.
func NewPost(id int, title, body, imageURL string) (*Post, error) {
	post := &Post{
		ID:       id,
		Title:    title,
		Body:     body,
		ImageURL: imageURL,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}
