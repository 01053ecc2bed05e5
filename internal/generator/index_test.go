package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-blogbuild/pkg/interfaces"
)

func TestBuildIndex_Ordering(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	posts := []interfaces.Post{
		{Slug: "a", Title: "A", Date: day(1)},
		{Slug: "b", Title: "B", Date: day(3)},
		{Slug: "c", Title: "C", Date: day(2)},
		{Slug: "d", Title: "D", Date: day(2)},
	}

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	index := BuildIndex(posts, now)

	got := make([]string, 0, len(index.Posts))
	for _, summary := range index.Posts {
		got = append(got, summary.Slug)
	}
	// Descending by date; c and d share a date and keep scan order.
	want := []string{"b", "c", "d", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordering mismatch: got %v, want %v", got, want)
		}
	}
	if !index.LastUpdated.Equal(now) {
		t.Fatalf("LastUpdated mismatch: %v", index.LastUpdated)
	}
}

func TestBuildIndex_SummariesOmitContent(t *testing.T) {
	index := BuildIndex([]interfaces.Post{{
		ID:      "local:x",
		Slug:    "x",
		Title:   "X",
		Content: "FULL ARTICLE BODY",
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}, time.Now().UTC())

	data, err := MarshalIndex(index)
	if err != nil {
		t.Fatalf("MarshalIndex: %v", err)
	}

	payload := string(data)
	if strings.Contains(payload, "FULL ARTICLE BODY") {
		t.Fatalf("index must not carry post bodies: %q", payload)
	}
	if !strings.Contains(payload, `"posts"`) || !strings.Contains(payload, `"lastUpdated"`) {
		t.Fatalf("unexpected index shape: %q", payload)
	}
	if !strings.Contains(payload, `"slug": "x"`) {
		t.Fatalf("expected summary fields present: %q", payload)
	}
	if !strings.HasSuffix(payload, "\n") {
		t.Fatalf("expected trailing newline")
	}
}
