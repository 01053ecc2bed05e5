package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

const (
	indexFileName    = "blog-index.json"
	homepageFileName = "index.html"
	hydrateFileName  = "hydrate.js"
)

// BuildIndex produces the listing artifact: metadata-only summaries sorted
// by descending date. The sort is stable so posts sharing a date keep their
// scan order.
func BuildIndex(posts []interfaces.Post, now time.Time) interfaces.BlogIndex {
	summaries := make([]interfaces.Summary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, post.Summarize())
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.After(summaries[j].Date)
	})

	return interfaces.BlogIndex{
		Posts:       summaries,
		LastUpdated: now,
	}
}

// MarshalIndex encodes the index artifact as indented JSON.
func MarshalIndex(index interfaces.BlogIndex) ([]byte, error) {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("generator: encode index: %w", err)
	}
	return append(data, '\n'), nil
}
