// Package book turns input files into read-only chapter records.
package book

import "strings"

// Chapter is a single chapter's extracted text. Chapters are immutable
// once extracted; the reading core never mutates them.
type Chapter struct {
	Index     int
	Title     string
	Text      string
	WordCount int
}

// Book is an ordered set of chapters with a display title.
type Book struct {
	Title    string
	Chapters []Chapter
}

// TotalWords returns the word count across all chapters.
func (b Book) TotalWords() int {
	total := 0
	for _, ch := range b.Chapters {
		total += ch.WordCount
	}
	return total
}

// NewChapter builds a chapter record, computing the word count.
func NewChapter(index int, title, text string) Chapter {
	return Chapter{
		Index:     index,
		Title:     title,
		Text:      text,
		WordCount: len(strings.Fields(text)),
	}
}
