package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter models the metadata header prefixed to a markdown document.
// Every field is optional; documented defaults are applied by ApplyDefaults.
type FrontMatter struct {
	Title       string
	Description string
	Date        time.Time
	// DateRaw preserves the header value verbatim so callers can report
	// unparseable dates instead of silently swallowing them.
	DateRaw string
	Author  string
	Tags    []string
	Status  string
}

type frontMatterEnvelope struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Status      string   `yaml:"status"`
}

// dateLayouts lists the accepted header date formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. The body is returned without the header delimiters. A
// document without a header yields an empty FrontMatter and the source
// unchanged.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	fm := FrontMatter{
		Title:       strings.TrimSpace(meta.Title),
		Description: strings.TrimSpace(meta.Description),
		DateRaw:     strings.TrimSpace(meta.Date),
		Author:      strings.TrimSpace(meta.Author),
		Tags:        cleanTags(meta.Tags),
		Status:      strings.ToLower(strings.TrimSpace(meta.Status)),
	}

	if fm.DateRaw != "" {
		if parsed, perr := ParseDate(fm.DateRaw); perr == nil {
			fm.Date = parsed
		}
	}

	return fm, body, nil
}

// ParseDate parses an ISO 8601 date or timestamp string from a metadata
// header. Callers decide the fallback policy for values that do not parse.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("parse date: empty value")
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date: unrecognised value %q", trimmed)
}

func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
