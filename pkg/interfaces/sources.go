package interfaces

import "context"

// ContentSource is a registry entry describing where to find posts. Entries
// are read once per build and never mutated.
type ContentSource struct {
	Type SourceType `json:"type"`
	// Path is a local directory for local sources or a repository-relative
	// directory for github sources.
	Path string `json:"path"`
	// Pattern narrows file selection, defaulting to "*.md".
	Pattern string `json:"pattern,omitempty"`
	Owner   string `json:"owner,omitempty"`
	Repo    string `json:"repo,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

// RepoSlug returns the "owner/repo" identifier recorded on remote posts.
func (s ContentSource) RepoSlug() string {
	if s.Owner == "" || s.Repo == "" {
		return ""
	}
	return s.Owner + "/" + s.Repo
}

// ScanStats counts fetch outcomes for a scan. Stats are returned explicitly
// by every scan and merged upward by the aggregator; no process-wide state
// is involved.
type ScanStats struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Merge adds the other stats into the receiver and returns the sum.
func (s ScanStats) Merge(other ScanStats) ScanStats {
	return ScanStats{
		Attempted: s.Attempted + other.Attempted,
		Succeeded: s.Succeeded + other.Succeeded,
		Failed:    s.Failed + other.Failed,
	}
}

// ScanResult pairs the posts produced by a scan with its fetch statistics.
type ScanResult struct {
	Posts []Post
	Stats ScanStats
}

// SourceScanner turns a single content source into a sequence of posts.
// Scanners degrade rather than fail: a missing directory or an unreachable
// listing yields an empty result with the error recorded by the caller.
type SourceScanner interface {
	Scan(ctx context.Context, source ContentSource) (ScanResult, error)
}
