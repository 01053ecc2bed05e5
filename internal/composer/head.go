package composer

import (
	"strings"
	"time"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// unknownAuthor is the fixed sentinel injected when a post declares no author.
const unknownAuthor = "Unknown"

// PostHead builds the head metadata for a single post page. Values are raw
// text; the shell renderer escapes them contextually.
func PostHead(post interfaces.Post, site interfaces.SiteMeta) interfaces.HeadMeta {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		title = post.Slug
	}

	author := strings.TrimSpace(post.Author)
	if author == "" {
		author = unknownAuthor
	}

	head := interfaces.HeadMeta{
		Title:         title,
		Description:   post.Description,
		OGTitle:       title,
		OGDescription: post.Description,
		OGType:        "article",
		Author:        author,
	}
	if !post.Date.IsZero() {
		head.PublishedTime = post.Date.UTC().Format(time.RFC3339)
	}
	if len(post.Tags) > 0 {
		head.Keywords = strings.Join(post.Tags, " ")
	}
	return head
}

// ListingHead builds the homepage head metadata: site-level values only, no
// per-post social tags.
func ListingHead(site interfaces.SiteMeta) interfaces.HeadMeta {
	return interfaces.HeadMeta{
		Title:         site.Title,
		Description:   site.Description,
		OGTitle:       site.Title,
		OGDescription: site.Description,
		OGType:        "website",
	}
}
