package book

import (
	"os"
	"path/filepath"
	"strings"
)

// Format defines a file format reader for extracting chapters.
type Format interface {
	Name() string
	Extensions() []string
	Extract(filename string) (Book, error)
}

var registry []Format

// Register adds a format reader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Open extracts a book from a file, using a registered format or the plain
// text fallback (one chapter holding the whole file).
func Open(filename string) (Book, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f.Extract(filename)
			}
		}
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return Book{}, err
	}
	return FromText(titleFromFilename(filename), string(data)), nil
}

// FromText wraps raw text (e.g. stdin) as a single-chapter book.
func FromText(title, text string) Book {
	b := Book{Title: title}
	if strings.TrimSpace(text) == "" {
		return b
	}
	b.Chapters = []Chapter{NewChapter(0, title, text)}
	return b
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
