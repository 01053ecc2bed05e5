package interfaces

import "time"

// PostStatus enumerates the publication lifecycle of a post.
type PostStatus string

const (
	// StatusDraft marks a post that is not ready for publication. Posts
	// without an explicit status in their frontmatter default to draft.
	StatusDraft PostStatus = "draft"
	// StatusPublished marks a post included in generated output.
	StatusPublished PostStatus = "published"
	// StatusArchived marks a post retained in source form but excluded
	// from default builds.
	StatusArchived PostStatus = "archived"
)

// IsValid reports whether the status is one of the known lifecycle values.
func (s PostStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// SourceType discriminates where a post originated.
type SourceType string

const (
	// SourceLocal identifies posts scanned from a local directory.
	SourceLocal SourceType = "local"
	// SourceGitHub identifies posts fetched from a GitHub repository.
	SourceGitHub SourceType = "github"
)

// Post represents a single article after scanning. Posts are immutable once
// produced by a scanner; downstream stages read but never mutate them.
type Post struct {
	// ID is a stable identifier derived from the source type and slug,
	// e.g. "local:hello-world".
	ID string
	// Slug is the URL-safe identifier derived from the file name or path.
	Slug string
	// Title falls back to the file name stem when the frontmatter omits it.
	Title       string
	Description string
	Date        time.Time
	Author      string
	Tags        []string
	// Content holds the raw markdown body with the frontmatter stripped.
	Content string
	Status  PostStatus
	Source  SourceType
	// SourceRepo identifies the originating repository ("owner/repo") and
	// is only set for github posts.
	SourceRepo string
}

// Summary is the metadata-only projection of a Post used by the generated
// index artifact and the homepage listing.
type Summary struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Summarize strips a post down to its index projection.
func (p Post) Summarize() Summary {
	return Summary{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
	}
}

// BlogIndex is the aggregate listing artifact, regenerated wholesale on
// every build.
type BlogIndex struct {
	Posts       []Summary `json:"posts"`
	LastUpdated time.Time `json:"lastUpdated"`
}
