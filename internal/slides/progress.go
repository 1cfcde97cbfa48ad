package slides

import "github.com/flickread/flick/internal/book"

// Position is the durable resume point: a chapter and a word offset into
// it. It is independent of slide size, so a saved position stays valid when
// the reader changes how large slides are.
type Position struct {
	ChapterIndex int `json:"chapter"`
	WordOffset   int `json:"word_offset"`
}

// ClampPosition forces a possibly stale or corrupted position onto the
// nearest valid chapter and offset. Stale saved state must never take a
// session down.
func ClampPosition(chapters []book.Chapter, pos Position) Position {
	if len(chapters) == 0 {
		return Position{}
	}
	pos.ChapterIndex = clamp(pos.ChapterIndex, 0, len(chapters)-1)
	pos.WordOffset = clamp(pos.WordOffset, 0, chapters[pos.ChapterIndex].WordCount)
	return pos
}

// Progress converts a position to whole-book percent: the words of all
// chapters before it plus the offset, over the total. Returns 0 for an
// empty book. Depends only on chapter word counts, never slide size.
func Progress(chapters []book.Chapter, chapterIndex, wordOffset int) float64 {
	total := 0
	read := 0
	for i, ch := range chapters {
		total += ch.WordCount
		if i < chapterIndex {
			read += ch.WordCount
		}
	}
	if total == 0 {
		return 0
	}
	if chapterIndex >= 0 && chapterIndex < len(chapters) {
		read += clamp(wordOffset, 0, chapters[chapterIndex].WordCount)
	}
	return float64(read) / float64(total) * 100
}

// PositionFromProgress is the inverse of Progress: it walks chapters until
// the target absolute word lands in one and returns the remainder as the
// offset. Percent at or past 100 clamps to the end of the last chapter.
func PositionFromProgress(chapters []book.Chapter, percent float64) Position {
	if len(chapters) == 0 {
		return Position{}
	}
	total := 0
	for _, ch := range chapters {
		total += ch.WordCount
	}
	if percent < 0 {
		percent = 0
	}
	target := int(percent / 100 * float64(total))

	acc := 0
	for i, ch := range chapters {
		if target < acc+ch.WordCount {
			return Position{ChapterIndex: i, WordOffset: target - acc}
		}
		acc += ch.WordCount
	}
	last := len(chapters) - 1
	return Position{ChapterIndex: last, WordOffset: chapters[last].WordCount}
}
