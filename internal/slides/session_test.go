package slides

import (
	"strings"
	"testing"

	"github.com/flickread/flick/internal/book"
)

func testBook(t *testing.T, sentencesPerChapter ...int) []book.Chapter {
	t.Helper()
	var out []book.Chapter
	for i, n := range sentencesPerChapter {
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteString("every sentence here has five. ")
		}
		out = append(out, book.NewChapter(i, "Chapter", strings.TrimSpace(sb.String())))
	}
	return out
}

func TestSessionWalksWholeBook(t *testing.T) {
	chapters := testBook(t, 20, 20) // 100 words each
	s := NewSession(chapters, Position{}, Config{MaxWords: 10})

	var words []string
	words = append(words, strings.Fields(s.Slide())...)
	steps := 0
	for s.Next() {
		words = append(words, strings.Fields(s.Slide())...)
		steps++
		if steps > 1000 {
			t.Fatal("Next() never reached the end")
		}
	}

	var want []string
	for _, ch := range chapters {
		want = append(want, strings.Fields(ch.Text)...)
	}
	if len(words) != len(want) {
		t.Fatalf("walked %d words, want %d", len(words), len(want))
	}
	for i := range words {
		if words[i] != want[i] {
			t.Fatalf("word %d = %q, want %q", i, words[i], want[i])
		}
	}
	if !s.AtEnd() {
		t.Error("AtEnd() false after walking the whole book")
	}
}

func TestSessionChapterCrossingForward(t *testing.T) {
	chapters := testBook(t, 2, 4) // 10 and 20 words
	s := NewSession(chapters, Position{ChapterIndex: 0, WordOffset: 0}, Config{MaxWords: 10})

	// First chapter is a single 10-word slide.
	if !s.Next() {
		t.Fatal("Next() = false with a second chapter remaining")
	}
	if pos := s.Position(); pos.ChapterIndex != 1 || pos.WordOffset != 0 {
		t.Errorf("after crossing: position = %+v, want {1 0}", pos)
	}
}

func TestSessionChapterCrossingBackward(t *testing.T) {
	chapters := testBook(t, 4, 4)
	s := NewSession(chapters, Position{ChapterIndex: 1, WordOffset: 0}, Config{MaxWords: 10})

	if !s.Prev() {
		t.Fatal("Prev() = false with a previous chapter available")
	}
	pos := s.Position()
	if pos.ChapterIndex != 0 {
		t.Fatalf("after crossing back: chapter = %d, want 0", pos.ChapterIndex)
	}
	// Anchored at the previous chapter's end means the final slide.
	win := s.Window()
	if win.CurrentIndex != len(win.Slides)-1 {
		t.Errorf("CurrentIndex = %d, want last slide %d", win.CurrentIndex, len(win.Slides)-1)
	}
}

func TestSessionPrevAtBookStart(t *testing.T) {
	s := NewSession(testBook(t, 4), Position{}, Config{MaxWords: 10})
	if s.Prev() {
		t.Error("Prev() = true at the start of the book")
	}
}

func TestSessionNextAtBookEnd(t *testing.T) {
	chapters := testBook(t, 2)
	s := NewSession(chapters, Position{ChapterIndex: 0, WordOffset: chapters[0].WordCount}, Config{MaxWords: 100})
	if s.Next() {
		t.Error("Next() = true at the end of the book")
	}
	if !s.AtEnd() {
		t.Error("AtEnd() = false on the final slide")
	}
}

func TestSessionResizeKeepsPosition(t *testing.T) {
	chapters := testBook(t, 60) // 300 words
	s := NewSession(chapters, Position{ChapterIndex: 0, WordOffset: 150}, Config{MaxWords: 10})

	before := s.Position()
	for _, n := range []int{5, 50, 23, 10} {
		if err := s.SetMaxWords(n); err != nil {
			t.Fatalf("SetMaxWords(%d): %v", n, err)
		}
		if got := s.Position(); got != before {
			t.Errorf("SetMaxWords(%d) moved position: %+v -> %+v", n, before, got)
		}
		if got := s.Config().MaxWords; got != n {
			t.Errorf("Config().MaxWords = %d, want %d", got, n)
		}
	}
}

func TestSessionSetMaxWordsRejectsInvalid(t *testing.T) {
	s := NewSession(testBook(t, 10), Position{}, Config{MaxWords: 10})
	for _, n := range []int{0, -1, -100} {
		if err := s.SetMaxWords(n); err == nil {
			t.Errorf("SetMaxWords(%d) accepted", n)
		}
	}
	if s.Config().MaxWords != 10 {
		t.Errorf("rejected SetMaxWords changed config to %d", s.Config().MaxWords)
	}
}

func TestSessionStalePositionClamped(t *testing.T) {
	chapters := testBook(t, 4)
	s := NewSession(chapters, Position{ChapterIndex: 99, WordOffset: 9999}, Config{MaxWords: 10})

	pos := s.Position()
	if pos.ChapterIndex != 0 || pos.WordOffset > chapters[0].WordCount {
		t.Errorf("stale position resolved to %+v", pos)
	}
	if s.Slide() == "" {
		t.Error("Slide() empty for clamped position")
	}
}

func TestSessionSeekProgress(t *testing.T) {
	chapters := testBook(t, 20, 20)
	s := NewSession(chapters, Position{}, Config{MaxWords: 10})

	s.SeekProgress(75)
	if pos := s.Position(); pos.ChapterIndex != 1 {
		t.Errorf("SeekProgress(75) landed in chapter %d, want 1", pos.ChapterIndex)
	}
	if got := s.Progress(); got < 70 || got > 80 {
		t.Errorf("Progress() = %v after SeekProgress(75)", got)
	}
}

func TestSessionEmptyBook(t *testing.T) {
	s := NewSession(nil, Position{}, Config{MaxWords: 10})
	if s.Slide() != "" {
		t.Errorf("Slide() = %q for empty book", s.Slide())
	}
	if s.Next() {
		t.Error("Next() = true for empty book")
	}
	if s.Prev() {
		t.Error("Prev() = true for empty book")
	}
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress() = %v for empty book", got)
	}
}

func TestSessionWindowStaysBounded(t *testing.T) {
	chapters := testBook(t, 500) // 2500 words
	s := NewSession(chapters, Position{}, Config{MaxWords: 5})

	wcfg := DefaultWindowConfig()
	maxSlides := wcfg.PrevCount + wcfg.NextCount + 1
	for i := 0; i < 300; i++ {
		if !s.Next() {
			break
		}
		if n := len(s.Window().Slides); n > maxSlides {
			t.Fatalf("step %d: window grew to %d slides", i, n)
		}
	}
}

func TestSessionPaceIntegration(t *testing.T) {
	s := NewSession(testBook(t, 10), Position{}, Config{MaxWords: 10})

	if s.AutoplayReady() {
		t.Error("AutoplayReady() true with no observations")
	}
	s.ObserveDwell(4)
	s.ObserveDwell(4)
	s.ObserveDwell(4)
	if !s.AutoplayReady() {
		t.Error("AutoplayReady() false after three observations")
	}
	if d := s.AutoAdvanceDelay(); d.Seconds() <= 4 {
		t.Errorf("AutoAdvanceDelay() = %v, want above the observed 4s dwell", d)
	}
	s.ResetPace()
	if s.AutoplayReady() {
		t.Error("AutoplayReady() true after ResetPace")
	}
}
