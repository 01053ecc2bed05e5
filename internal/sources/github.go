package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-blogbuild/internal/logging"
	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultBranch     = "main"
)

var (
	// ErrSourceIncomplete signals a github registry entry missing owner or repo.
	ErrSourceIncomplete = errors.New("sources: github source requires owner and repo")
)

// GitHubScannerConfig configures the remote scanner. Token is optional;
// unauthenticated calls work but are subject to a much stricter hourly rate
// limit on the GitHub side.
type GitHubScannerConfig struct {
	Token      string
	APIBaseURL string
	HTTPClient *http.Client
	Logger     interfaces.Logger
}

// GitHubScanner lists a repository directory through the GitHub contents API
// and fetches each matching file's raw contents one request at a time.
// Fetches are deliberately sequential; there is no fan-out to coordinate
// against rate limits.
type GitHubScanner struct {
	token   string
	baseURL string
	client  *http.Client
	logger  interfaces.Logger
	now     func() time.Time
}

// NewGitHubScanner builds a scanner for github sources.
func NewGitHubScanner(cfg GitHubScannerConfig) *GitHubScanner {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	baseURL := strings.TrimRight(cfg.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	return &GitHubScanner{
		token:   cfg.Token,
		baseURL: baseURL,
		client:  client,
		logger:  logger,
		now:     time.Now,
	}
}

var _ interfaces.SourceScanner = (*GitHubScanner)(nil)

type contentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Scan implements interfaces.SourceScanner for github sources. A listing
// failure aborts this source only; per-file fetch failures are counted and
// the remaining files still scan.
func (s *GitHubScanner) Scan(ctx context.Context, source interfaces.ContentSource) (interfaces.ScanResult, error) {
	result := interfaces.ScanResult{}
	if source.Owner == "" || source.Repo == "" {
		return result, ErrSourceIncomplete
	}

	logger := logging.WithSourceContext(s.logger, string(source.Type), source.RepoSlug()+"/"+source.Path)

	entries, err := s.listDirectory(ctx, source)
	if err != nil {
		return result, err
	}

	pattern := source.Pattern
	if pattern == "" {
		pattern = defaultPattern
	}

	buildTime := s.now().UTC()
	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		matched, matchErr := path.Match(pattern, entry.Name)
		if matchErr != nil || !matched {
			continue
		}

		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Stats.Attempted++
		data, fetchErr := s.fetchFile(ctx, entry.DownloadURL)
		if fetchErr != nil {
			result.Stats.Failed++
			logger.Error("sources.github.fetch_failed", "file", entry.Path, "error", fetchErr)
			continue
		}

		parsed, parseErr := parsePost(source, entry.Name, data, buildTime)
		if parseErr != nil {
			result.Stats.Failed++
			logger.Error("sources.github.parse_failed", "file", entry.Path, "error", parseErr)
			continue
		}
		if parsed.DateErr != nil {
			logger.Warn("sources.github.date_invalid", "file", entry.Path, "error", parsed.DateErr)
		}

		result.Stats.Succeeded++
		result.Posts = append(result.Posts, parsed.Post)
	}

	return result, nil
}

func (s *GitHubScanner) listDirectory(ctx context.Context, source interfaces.ContentSource) ([]contentEntry, error) {
	branch := source.Branch
	if branch == "" {
		branch = defaultBranch
	}

	listURL := fmt.Sprintf(
		"%s/repos/%s/%s/contents/%s?ref=%s",
		s.baseURL,
		url.PathEscape(source.Owner),
		url.PathEscape(source.Repo),
		strings.TrimLeft(source.Path, "/"),
		url.QueryEscape(branch),
	)

	body, err := s.get(ctx, listURL, "application/vnd.github+json")
	if err != nil {
		return nil, fmt.Errorf("sources: list %s/%s: %w", source.RepoSlug(), source.Path, err)
	}

	var entries []contentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("sources: decode listing for %s: %w", source.RepoSlug(), err)
	}
	return entries, nil
}

func (s *GitHubScanner) fetchFile(ctx context.Context, downloadURL string) ([]byte, error) {
	if strings.TrimSpace(downloadURL) == "" {
		return nil, errors.New("sources: entry has no download url")
	}
	return s.get(ctx, downloadURL, "")
}

func (s *GitHubScanner) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
