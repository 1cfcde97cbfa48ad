package slides

import (
	"fmt"
	"time"

	"github.com/flickread/flick/internal/book"
)

// Session is the per-reading-session state: the chapter records, the
// durable position, the chunk config, the materialized window, and the
// pace estimator. Each session owns its own instances; nothing here is
// shared across sessions.
//
// All methods are synchronous, non-blocking computations; a Session is not
// safe for concurrent use.
type Session struct {
	chapters   []book.Chapter
	cfg        Config
	wcfg       WindowConfig
	thresholds ShiftThresholds
	pos        Position
	win        Window
	pace       *PaceEstimator
}

// NewSession builds a session anchored at pos, which is clamped so stale
// persisted positions cannot break startup.
func NewSession(chapters []book.Chapter, pos Position, cfg Config) *Session {
	s := &Session{
		chapters:   chapters,
		cfg:        cfg,
		wcfg:       DefaultWindowConfig(),
		thresholds: DefaultShiftThresholds(),
		pos:        ClampPosition(chapters, pos),
		pace:       NewPaceEstimator(),
	}
	s.recompute()
	return s
}

func (s *Session) chapter() book.Chapter {
	if len(s.chapters) == 0 {
		return book.Chapter{}
	}
	return s.chapters[s.pos.ChapterIndex]
}

// recompute rebuilds the window around the current position. The current
// slide always begins at the anchored word offset, so the position is
// stable across recomputes regardless of slide size.
func (s *Session) recompute() {
	s.win = ComputeWindow(s.chapter(), s.pos.WordOffset, s.cfg, s.wcfg)
	s.pos.WordOffset = s.win.OffsetAt(s.win.CurrentIndex)
}

// maybeShift recenters the window when navigation has drifted past a
// threshold and there is actually more chapter on that side.
func (s *Session) maybeShift() {
	switch s.win.NeedsShift(s.thresholds) {
	case ShiftForward:
		if s.win.EndWordOffset < s.chapter().WordCount {
			s.recompute()
		}
	case ShiftBackward:
		if s.win.StartWordOffset > 0 {
			s.recompute()
		}
	}
}

// Slide returns the current slide text, or "" when the book has no content.
func (s *Session) Slide() string {
	if len(s.win.Slides) == 0 {
		return ""
	}
	return s.win.Slides[s.win.CurrentIndex]
}

// Next advances one slide, crossing into the next chapter at offset 0 when
// the current chapter is exhausted. Returns false at the end of the book.
func (s *Session) Next() bool {
	if s.win.CurrentIndex+1 < len(s.win.Slides) {
		s.win.CurrentIndex++
		s.pos.WordOffset = s.win.OffsetAt(s.win.CurrentIndex)
		s.maybeShift()
		return true
	}
	if s.win.EndWordOffset < s.chapter().WordCount {
		// More chapter beyond the window; re-anchor at the next slide.
		s.pos.WordOffset = s.win.EndWordOffset
		s.recompute()
		return true
	}
	if s.pos.ChapterIndex+1 < len(s.chapters) {
		s.pos = Position{ChapterIndex: s.pos.ChapterIndex + 1, WordOffset: 0}
		s.recompute()
		return true
	}
	return false
}

// Prev steps one slide back, crossing into the previous chapter anchored
// at its end. Returns false at the very beginning of the book.
func (s *Session) Prev() bool {
	if s.win.CurrentIndex > 0 {
		s.win.CurrentIndex--
		s.pos.WordOffset = s.win.OffsetAt(s.win.CurrentIndex)
		s.maybeShift()
		return true
	}
	if s.win.StartWordOffset > 0 {
		// Window starts mid-chapter; rebuild around the current slide and
		// step into the preceding one.
		s.recompute()
		if s.win.CurrentIndex > 0 {
			s.win.CurrentIndex--
			s.pos.WordOffset = s.win.OffsetAt(s.win.CurrentIndex)
			return true
		}
		return false
	}
	if s.pos.ChapterIndex > 0 {
		prev := s.chapters[s.pos.ChapterIndex-1]
		s.pos = Position{ChapterIndex: prev.Index, WordOffset: prev.WordCount}
		s.recompute()
		return true
	}
	return false
}

// SetMaxWords changes the slide size and recomputes the window at the same
// word offset, so resizing never moves the reading position.
func (s *Session) SetMaxWords(n int) error {
	if n < 1 {
		return fmt.Errorf("max words must be at least 1, got %d", n)
	}
	s.cfg.MaxWords = n
	s.recompute()
	return nil
}

// Seek jumps to an arbitrary position, clamped to the book.
func (s *Session) Seek(chapterIndex, wordOffset int) {
	s.pos = ClampPosition(s.chapters, Position{ChapterIndex: chapterIndex, WordOffset: wordOffset})
	s.recompute()
}

// SeekProgress jumps to a whole-book percentage.
func (s *Session) SeekProgress(percent float64) {
	s.pos = PositionFromProgress(s.chapters, percent)
	s.recompute()
}

// Position returns the durable resume point for persistence.
func (s *Session) Position() Position {
	return s.pos
}

// Window exposes the current slide window for rendering.
func (s *Session) Window() Window {
	return s.win
}

// Config returns the active chunk config.
func (s *Session) Config() Config {
	return s.cfg
}

// Chapter returns the current chapter record.
func (s *Session) Chapter() book.Chapter {
	return s.chapter()
}

// Chapters returns the session's chapter records.
func (s *Session) Chapters() []book.Chapter {
	return s.chapters
}

// Progress returns whole-book percent at the current position.
func (s *Session) Progress() float64 {
	return Progress(s.chapters, s.pos.ChapterIndex, s.pos.WordOffset)
}

// AtEnd reports whether the session is on the final slide of the book.
func (s *Session) AtEnd() bool {
	if s.pos.ChapterIndex != len(s.chapters)-1 {
		return false
	}
	return s.win.CurrentIndex >= len(s.win.Slides)-1 && s.win.EndWordOffset >= s.chapter().WordCount
}

// ObserveDwell feeds one slide's display time into the pace estimator.
func (s *Session) ObserveDwell(seconds float64) {
	s.pace.AddObservation(seconds)
}

// AutoAdvanceDelay returns the predicted duration to show the next slide.
func (s *Session) AutoAdvanceDelay() time.Duration {
	return s.pace.PredictDelay()
}

// AutoplayReady reports whether enough pace data exists to trust autoplay.
func (s *Session) AutoplayReady() bool {
	return s.pace.Ready()
}

// ResetPace discards pace history, e.g. when a new book is opened.
func (s *Session) ResetPace() {
	s.pace.Reset()
}
