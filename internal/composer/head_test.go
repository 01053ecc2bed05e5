package composer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

func TestPostHead(t *testing.T) {
	post := interfaces.Post{
		Slug:        "release-notes",
		Title:       "Release Notes",
		Description: "What changed.",
		Author:      "Jane Doe",
		Tags:        []string{"go", "release"},
		Date:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	head := PostHead(post, interfaces.SiteMeta{Title: "Blog"})

	assert.Equal(t, "Release Notes", head.Title)
	assert.Equal(t, "Release Notes", head.OGTitle)
	assert.Equal(t, "What changed.", head.Description)
	assert.Equal(t, "article", head.OGType)
	assert.Equal(t, "Jane Doe", head.Author)
	assert.Equal(t, "2024-03-01T10:00:00Z", head.PublishedTime)
	assert.Equal(t, "go release", head.Keywords)
}

func TestPostHead_Fallbacks(t *testing.T) {
	post := interfaces.Post{Slug: "untitled-thing"}

	head := PostHead(post, interfaces.SiteMeta{Title: "Blog"})

	assert.Equal(t, "untitled-thing", head.Title, "title falls back to the slug")
	assert.Equal(t, "Unknown", head.Author)
	assert.Empty(t, head.PublishedTime, "zero dates produce no published_time")
	assert.Empty(t, head.Keywords, "no tags means no keywords meta")
}

func TestListingHead(t *testing.T) {
	head := ListingHead(interfaces.SiteMeta{Title: "Blog", Description: "All posts."})

	assert.Equal(t, "Blog", head.Title)
	assert.Equal(t, "All posts.", head.Description)
	assert.Equal(t, "website", head.OGType)
	assert.Empty(t, head.Author)
}
