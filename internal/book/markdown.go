package book

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// MarkdownFormat implements Format for Markdown files. Headers start new
// chapters; text before the first header becomes a "Preface" chapter.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

// headerRegex matches markdown headers (# to ######)
var headerRegex = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

func (f *MarkdownFormat) Extract(filename string) (Book, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Book{}, err
	}
	defer file.Close()

	b := Book{Title: titleFromFilename(filename)}

	var title string
	var body []string
	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text == "" {
			return
		}
		if title == "" {
			title = "Preface"
		}
		b.Chapters = append(b.Chapters, NewChapter(len(b.Chapters), title, text))
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if match := headerRegex.FindStringSubmatch(line); match != nil {
			flush()
			title = strings.TrimSpace(match[2])
			body = nil
			// First top-level header doubles as the book title.
			if len(match[1]) == 1 && b.Title == titleFromFilename(filename) && len(b.Chapters) == 0 {
				b.Title = title
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return Book{}, err
	}
	return b, nil
}
