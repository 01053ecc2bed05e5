package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

func writePostFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLocalScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "First Post.md", `---
title: First Post
date: 2024-01-15
status: published
---
body one
`)
	writePostFile(t, dir, "second-post.md", `---
date: 2024-02-20
---
body two
`)
	writePostFile(t, dir, "notes.txt", "not markdown")

	scanner := NewLocalScanner(nil)
	result, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type: interfaces.SourceLocal,
		Path: dir,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if result.Stats.Attempted != 2 || result.Stats.Succeeded != 2 || result.Stats.Failed != 0 {
		t.Fatalf("unexpected stats: %#v", result.Stats)
	}
	if len(result.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(result.Posts))
	}

	byTitle := map[string]interfaces.Post{}
	for _, post := range result.Posts {
		byTitle[post.Title] = post
	}

	first, ok := byTitle["First Post"]
	if !ok {
		t.Fatalf("missing first post: %#v", result.Posts)
	}
	if first.Slug != "first-post" {
		t.Fatalf("slug mismatch, got %q", first.Slug)
	}
	if first.Status != interfaces.StatusPublished {
		t.Fatalf("status mismatch, got %q", first.Status)
	}
	if first.ID != "local:first-post" {
		t.Fatalf("id mismatch, got %q", first.ID)
	}

	// Missing title falls back to the file name stem; missing status to draft.
	second, ok := byTitle["second-post"]
	if !ok {
		t.Fatalf("missing second post: %#v", result.Posts)
	}
	if second.Status != interfaces.StatusDraft {
		t.Fatalf("expected draft default, got %q", second.Status)
	}
	want := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	if !second.Date.Equal(want) {
		t.Fatalf("date mismatch, got %v", second.Date)
	}
}

func TestLocalScanner_MissingDirectory(t *testing.T) {
	scanner := NewLocalScanner(nil)
	result, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type: interfaces.SourceLocal,
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	if err != nil {
		t.Fatalf("missing directory must not error, got %v", err)
	}
	if len(result.Posts) != 0 || result.Stats.Attempted != 0 {
		t.Fatalf("expected empty result, got %#v", result)
	}
}

func TestLocalScanner_InvalidDateUsesBuildTime(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "bad-date.md", `---
title: Bad Date
date: whenever
status: published
---
body
`)

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	scanner := NewLocalScanner(nil)
	scanner.now = func() time.Time { return fixed }

	result, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type: interfaces.SourceLocal,
		Path: dir,
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Posts) != 1 {
		t.Fatalf("post with bad date must be kept, got %d posts", len(result.Posts))
	}
	if !result.Posts[0].Date.Equal(fixed) {
		t.Fatalf("expected build timestamp fallback, got %v", result.Posts[0].Date)
	}
	if result.Stats.Failed != 0 {
		t.Fatalf("bad date is not a parse failure: %#v", result.Stats)
	}
}

func TestLocalScanner_PatternFilter(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "keep.markdown", "---\ntitle: Keep\n---\nbody\n")
	writePostFile(t, dir, "skip.md", "---\ntitle: Skip\n---\nbody\n")

	scanner := NewLocalScanner(nil)
	result, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type:    interfaces.SourceLocal,
		Path:    dir,
		Pattern: "*.markdown",
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(result.Posts) != 1 || result.Posts[0].Title != "Keep" {
		t.Fatalf("pattern filter not applied: %#v", result.Posts)
	}
}
