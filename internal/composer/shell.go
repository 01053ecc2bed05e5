package composer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

// The shells own every piece of presentational markup: navigation, footer,
// and the article or listing frame. Pipeline data flows in through typed
// fields only; html/template's contextual escaping guards every interpolated
// value.
const postShellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Head.Title}}</title>
{{- if .Head.Description}}
<meta name="description" content="{{.Head.Description}}">
{{- end}}
<meta property="og:title" content="{{.Head.OGTitle}}">
{{- if .Head.OGDescription}}
<meta property="og:description" content="{{.Head.OGDescription}}">
{{- end}}
<meta property="og:type" content="{{.Head.OGType}}">
{{- if .Head.PublishedTime}}
<meta property="article:published_time" content="{{.Head.PublishedTime}}">
{{- end}}
<meta name="author" content="{{.Head.Author}}">
{{- if .Head.Keywords}}
<meta name="keywords" content="{{.Head.Keywords}}">
{{- end}}
<style>{{.Styles}}</style>
</head>
<body class="bb-body">
<nav class="bb-nav">
<a href="{{.Links.Home}}" class="bb-nav-brand">{{.Site.Title}}</a>
<a href="{{.Links.Home}}" class="bb-nav-link">Posts</a>
</nav>
<main class="bb-main">
<article class="bb-article">
<header class="bb-post-header">
<h1 class="bb-post-title">{{.Post.Title}}</h1>
<p class="bb-post-meta">{{.Post.Date.Format "January 2, 2006"}}{{if .Post.Author}} &middot; {{.Post.Author}}{{end}}</p>
</header>
<div class="bb-post-body">{{.Body}}</div>
</article>
</main>
<footer class="bb-footer">
<p class="bb-footer-text">{{.Site.Title}}</p>
</footer>
</body>
</html>
`

const listingShellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Head.Title}}</title>
{{- if .Head.Description}}
<meta name="description" content="{{.Head.Description}}">
{{- end}}
<meta property="og:title" content="{{.Head.OGTitle}}">
{{- if .Head.OGDescription}}
<meta property="og:description" content="{{.Head.OGDescription}}">
{{- end}}
<meta property="og:type" content="{{.Head.OGType}}">
<style>{{.Styles}}</style>
</head>
<body class="bb-body" data-index="{{.Links.IndexJSON}}">
<nav class="bb-nav">
<a href="{{.Links.Home}}" class="bb-nav-brand">{{.Site.Title}}</a>
</nav>
<main class="bb-main">
<section class="bb-listing" id="post-listing">
{{- range .Posts}}
<article class="bb-listing-item">
<h2 class="bb-listing-title"><a href="{{$.Links.Home}}{{.Slug}}.html" class="bb-link">{{.Title}}</a></h2>
<p class="bb-listing-meta">{{.Date.Format "January 2, 2006"}}</p>
{{- if .Description}}
<p class="bb-listing-desc">{{.Description}}</p>
{{- end}}
</article>
{{- end}}
</section>
</main>
<footer class="bb-footer">
<p class="bb-footer-text">{{.Site.Title}}</p>
</footer>
<script defer src="{{.Links.Hydrate}}"></script>
</body>
</html>
`

// ShellSet renders the compiled-in presentational shells.
type ShellSet struct {
	post    *template.Template
	listing *template.Template
}

// NewShellSet parses the built-in shell templates.
func NewShellSet() (*ShellSet, error) {
	post, err := template.New("post").Parse(postShellTemplate)
	if err != nil {
		return nil, fmt.Errorf("composer: parse post shell: %w", err)
	}
	listing, err := template.New("listing").Parse(listingShellTemplate)
	if err != nil {
		return nil, fmt.Errorf("composer: parse listing shell: %w", err)
	}
	return &ShellSet{post: post, listing: listing}, nil
}

var _ interfaces.ShellRenderer = (*ShellSet)(nil)

// RenderPost implements interfaces.ShellRenderer.
func (s *ShellSet) RenderPost(data interfaces.PostShellData) (string, error) {
	var sb strings.Builder
	if err := s.post.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("composer: render post shell: %w", err)
	}
	return sb.String(), nil
}

// RenderListing implements interfaces.ShellRenderer.
func (s *ShellSet) RenderListing(data interfaces.ListingShellData) (string, error) {
	var sb strings.Builder
	if err := s.listing.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("composer: render listing shell: %w", err)
	}
	return sb.String(), nil
}
