package book

import (
	"strings"
	"testing"
)

func TestOpenPlainTextFallback(t *testing.T) {
	path := writeTestFile(t, "story.txt", "Once upon a time. The end.")

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Title != "story" {
		t.Errorf("Title = %q, want %q", b.Title, "story")
	}
	if len(b.Chapters) != 1 {
		t.Fatalf("got %d chapters, want 1", len(b.Chapters))
	}
	if b.Chapters[0].WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", b.Chapters[0].WordCount)
	}
}

func TestOpenUsesRegisteredFormat(t *testing.T) {
	path := writeTestFile(t, "doc.md", "# Title\n\nBody text here.\n")

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	// The markdown format, not the plain fallback, must have handled it.
	if len(b.Chapters) != 1 || b.Chapters[0].Title != "Title" {
		t.Errorf("markdown format not used: %+v", b.Chapters)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/nowhere.txt"); err == nil {
		t.Error("Open of missing file succeeded")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := strings.Join(SupportedFormats(), "; ")
	for _, want := range []string{"EPUB", "Markdown"} {
		if !strings.Contains(formats, want) {
			t.Errorf("SupportedFormats() = %q, missing %s", formats, want)
		}
	}
}
