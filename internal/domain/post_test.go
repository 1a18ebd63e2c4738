package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
	}{
		{"valid post", Post{ID: 1, Title: "hello", Body: "world"}, false},
		{"valid without body", Post{ID: 7, Title: "hello"}, false},
		{"zero ID", Post{ID: 0, Title: "hello"}, true},
		{"negative ID", Post{ID: -3, Title: "hello"}, true},
		{"empty title", Post{ID: 1, Title: ""}, true},
		{"whitespace title", Post{ID: 1, Title: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPost(t *testing.T) {
	post, err := NewPost(3, "a title", "a body", "https://picsum.photos/seed/3/600/400")

	require.NoError(t, err)
	assert.Equal(t, 3, post.ID)
	assert.Equal(t, "a title", post.Title)
	assert.Equal(t, "https://picsum.photos/seed/3/600/400", post.ImageURL)
}

func TestNewPostInvalid(t *testing.T) {
	post, err := NewPost(0, "a title", "a body", "")

	assert.Error(t, err)
	assert.Nil(t, post)
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name string
		body string
		max  int
		want string
	}{
		{"short body untouched", "short body", 20, "short body"},
		{"newlines collapsed", "line one\nline two", 40, "line one line two"},
		{"truncated with ellipsis", "abcdefghij", 8, "abcde..."},
		{"exact length untouched", "abcdefgh", 8, "abcdefgh"},
		{"non-positive max returns all", "abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := Post{ID: 1, Title: "t", Body: tt.body}
			assert.Equal(t, tt.want, post.Excerpt(tt.max))
		})
	}
}
