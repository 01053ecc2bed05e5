package sources

import "testing"

func TestSlugFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"My First Post.md", "my-first-post"},
		{"content/Hello_World.md", "hello-world"},
		{"2024 Review!.md", "2024-review"},
		{"already-slugged.md", "already-slugged"},
		{"UPPER.md", "upper"},
	}
	for _, tc := range cases {
		if got := SlugFromPath(tc.path); got != tc.want {
			t.Fatalf("SlugFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestSlugFromPath_Idempotent(t *testing.T) {
	first := SlugFromPath("Some Article Title.md")
	second := SlugFromPath(first + ".md")
	if first != second {
		t.Fatalf("slugging is not idempotent: %q != %q", first, second)
	}
}

func TestTitleFromPath(t *testing.T) {
	if got := TitleFromPath("content/My First Post.md"); got != "My First Post" {
		t.Fatalf("TitleFromPath mismatch, got %q", got)
	}
}
