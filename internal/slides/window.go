package slides

import (
	"strings"

	"github.com/flickread/flick/internal/book"
)

// WindowConfig bounds how many slides are materialized around the current
// position. The window holds up to PrevCount slides before the current one
// and NextCount after it, so recomputation cost is independent of how long
// the chapter or book is.
type WindowConfig struct {
	PrevCount int
	NextCount int
}

// DefaultWindowConfig keeps 5 slides on each side of the current one.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{PrevCount: 5, NextCount: 5}
}

// ShiftThresholds are window-relative indices past which the window should
// be recomputed around the new position.
type ShiftThresholds struct {
	Forward  int
	Backward int
}

// DefaultShiftThresholds matches the default 11-slide window.
func DefaultShiftThresholds() ShiftThresholds {
	return ShiftThresholds{Forward: 8, Backward: 2}
}

// Shift signals whether the window has drifted too far from center.
type Shift int

const (
	ShiftNone Shift = iota
	ShiftForward
	ShiftBackward
)

// Window is the bounded set of materialized slides around a reading
// position within one chapter.
//
// Invariants: len(Slides) == len(SlideWordCounts); the word counts sum to
// EndWordOffset-StartWordOffset; 0 <= CurrentIndex < len(Slides) unless the
// chapter is empty, in which case everything is zero.
type Window struct {
	Slides          []string
	SlideWordCounts []int
	CurrentIndex    int
	StartWordOffset int
	EndWordOffset   int
	ChapterIndex    int
}

// ComputeWindow materializes a slide window around targetWordOffset in the
// chapter. The text is cut at the word offset (clamped to the chapter), the
// spans before and after the cut are chunked independently, and the last
// PrevCount before-slides plus the first NextCount+1 after-slides form the
// window. The current slide is the first after-slide, so it always starts
// exactly at the (clamped) target offset.
//
// An empty chapter yields an empty window; that is "no content", not an
// error.
func ComputeWindow(ch book.Chapter, targetWordOffset int, cfg Config, wcfg WindowConfig) Window {
	words := strings.Fields(ch.Text)
	w := Window{ChapterIndex: ch.Index}
	if len(words) == 0 {
		return w
	}

	offset := clamp(targetWordOffset, 0, len(words))

	before := Chunk(strings.Join(words[:offset], " "), cfg)
	after := Chunk(strings.Join(words[offset:], " "), cfg)

	if len(before) > wcfg.PrevCount {
		before = before[len(before)-wcfg.PrevCount:]
	}
	if len(after) > wcfg.NextCount+1 {
		after = after[:wcfg.NextCount+1]
	}

	w.CurrentIndex = len(before)
	w.Slides = append(append([]string{}, before...), after...)
	if w.CurrentIndex >= len(w.Slides) {
		// Offset at the chapter end: no after-slides, point at the last one.
		w.CurrentIndex = len(w.Slides) - 1
	}

	w.SlideWordCounts = make([]int, len(w.Slides))
	total := 0
	beforeWords := 0
	for i, s := range w.Slides {
		n := CountWords(s)
		w.SlideWordCounts[i] = n
		total += n
		if i < len(before) {
			beforeWords += n
		}
	}
	w.StartWordOffset = offset - beforeWords
	w.EndWordOffset = w.StartWordOffset + total
	return w
}

// Contains reports whether wordOffset falls inside the window's word range.
func (w Window) Contains(wordOffset int) bool {
	return wordOffset >= w.StartWordOffset && wordOffset < w.EndWordOffset
}

// SlideIndexAt locates the slide covering wordOffset by cumulative word
// counts, clamping to the first or last slide when the offset lies outside
// the window. Returns 0 for an empty window.
func (w Window) SlideIndexAt(wordOffset int) int {
	if len(w.Slides) == 0 {
		return 0
	}
	if wordOffset < w.StartWordOffset {
		return 0
	}
	cum := w.StartWordOffset
	for i, n := range w.SlideWordCounts {
		cum += n
		if wordOffset < cum {
			return i
		}
	}
	return len(w.Slides) - 1
}

// OffsetAt returns the absolute word offset at which the slide at
// slideIndex begins. Out-of-range indices clamp to the window bounds.
func (w Window) OffsetAt(slideIndex int) int {
	if len(w.Slides) == 0 {
		return 0
	}
	slideIndex = clamp(slideIndex, 0, len(w.Slides)-1)
	offset := w.StartWordOffset
	for i := 0; i < slideIndex; i++ {
		offset += w.SlideWordCounts[i]
	}
	return offset
}

// NeedsShift reports whether CurrentIndex has drifted past a threshold and
// the window should be recomputed around the current offset.
func (w Window) NeedsShift(t ShiftThresholds) Shift {
	if len(w.Slides) == 0 {
		return ShiftNone
	}
	if w.CurrentIndex >= t.Forward {
		return ShiftForward
	}
	if w.CurrentIndex <= t.Backward {
		return ShiftBackward
	}
	return ShiftNone
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
