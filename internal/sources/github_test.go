package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

func githubFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	files := map[string]string{
		"hello.md": `---
title: Hello
date: 2024-01-01
status: published
---
remote body
`,
		"broken.md": "",
	}

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/repos/acme/blog/contents/posts", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("unexpected Accept header %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.URL.Query().Get("ref"); got != "main" {
			t.Errorf("unexpected ref %q", got)
		}
		entries := []map[string]string{
			{"name": "hello.md", "path": "posts/hello.md", "type": "file", "download_url": server.URL + "/raw/hello.md"},
			{"name": "broken.md", "path": "posts/broken.md", "type": "file", "download_url": server.URL + "/raw/broken.md"},
			{"name": "assets", "path": "posts/assets", "type": "dir", "download_url": ""},
			{"name": "README.txt", "path": "posts/README.txt", "type": "file", "download_url": server.URL + "/raw/README.txt"},
		}
		_ = json.NewEncoder(w).Encode(entries)
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/raw/")
		if name == "broken.md" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		content, ok := files[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGitHubScanner_Scan(t *testing.T) {
	server := githubFixtureServer(t)

	scanner := NewGitHubScanner(GitHubScannerConfig{
		Token:      "tok-123",
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
	})

	result, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type:  interfaces.SourceGitHub,
		Owner: "acme",
		Repo:  "blog",
		Path:  "posts",
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// hello.md succeeds, broken.md fails its fetch, the dir and the txt file
	// never count as attempts.
	if result.Stats.Attempted != 2 || result.Stats.Succeeded != 1 || result.Stats.Failed != 1 {
		t.Fatalf("unexpected stats: %#v", result.Stats)
	}
	if len(result.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(result.Posts))
	}

	post := result.Posts[0]
	if post.Slug != "hello" || post.Title != "Hello" {
		t.Fatalf("post mismatch: %#v", post)
	}
	if post.Source != interfaces.SourceGitHub {
		t.Fatalf("expected github source, got %q", post.Source)
	}
	if post.SourceRepo != "acme/blog" {
		t.Fatalf("expected source repo recorded, got %q", post.SourceRepo)
	}
	if !strings.Contains(post.Content, "remote body") {
		t.Fatalf("expected fetched body, got %q", post.Content)
	}
}

func TestGitHubScanner_ListingFailureAbortsSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	scanner := NewGitHubScanner(GitHubScannerConfig{
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
	})

	_, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type:  interfaces.SourceGitHub,
		Owner: "acme",
		Repo:  "blog",
		Path:  "posts",
	})
	if err == nil {
		t.Fatalf("expected error when listing fails")
	}
}

func TestGitHubScanner_IncompleteSource(t *testing.T) {
	scanner := NewGitHubScanner(GitHubScannerConfig{})

	_, err := scanner.Scan(context.Background(), interfaces.ContentSource{
		Type: interfaces.SourceGitHub,
		Repo: "blog",
	})
	if err != ErrSourceIncomplete {
		t.Fatalf("expected ErrSourceIncomplete, got %v", err)
	}
}
