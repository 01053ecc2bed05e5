package sources

import (
	"fmt"
	"time"

	"github.com/goliatone/go-blogbuild/internal/markdown"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// parsedPost carries a scanned post plus any non-fatal parse diagnostics.
type parsedPost struct {
	Post interfaces.Post
	// DateErr is set when the header declared a date that did not parse;
	// the post keeps the build timestamp and scanners log a warning.
	DateErr error
}

// parsePost turns a raw markdown file into a Post, applying the documented
// metadata defaults: title falls back to the file name stem, description to
// the empty string, date to the build timestamp, status to draft.
func parsePost(source interfaces.ContentSource, filePath string, data []byte, now time.Time) (parsedPost, error) {
	fm, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return parsedPost{}, fmt.Errorf("sources: parse %s: %w", filePath, err)
	}

	postSlug := SlugFromPath(filePath)
	if postSlug == "" {
		return parsedPost{}, fmt.Errorf("sources: %s yields an empty slug", filePath)
	}

	post := interfaces.Post{
		ID:          string(source.Type) + ":" + postSlug,
		Slug:        postSlug,
		Title:       fm.Title,
		Description: fm.Description,
		Author:      fm.Author,
		Tags:        fm.Tags,
		Content:     string(body),
		Status:      parseStatus(fm.Status),
		Source:      source.Type,
		SourceRepo:  source.RepoSlug(),
	}
	if post.Title == "" {
		post.Title = TitleFromPath(filePath)
	}

	result := parsedPost{Post: post}
	switch {
	case !fm.Date.IsZero():
		result.Post.Date = fm.Date
	case fm.DateRaw != "":
		result.Post.Date = now
		result.DateErr = fmt.Errorf("sources: %s has unparseable date %q", filePath, fm.DateRaw)
	default:
		result.Post.Date = now
	}

	return result, nil
}

func parseStatus(value string) interfaces.PostStatus {
	status := interfaces.PostStatus(value)
	if status.IsValid() {
		return status
	}
	return interfaces.StatusDraft
}
