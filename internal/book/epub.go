package book

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// EPUBFormat implements Format for EPUB files. Each spine item with text
// becomes one chapter; titles are resolved from the NCX table of contents
// where possible.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

func (f *EPUBFormat) Extract(filename string) (Book, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return Book{}, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return Book{}, fmt.Errorf("no rootfiles found in epub")
	}

	rf := rc.Rootfiles[0]
	titles := buildTOCHrefMap(filename, rf)

	b := Book{Title: strings.TrimSpace(rf.Title)}
	if b.Title == "" {
		b.Title = titleFromFilename(filename)
	}

	for i, ref := range rf.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}

		text := strings.TrimSpace(extractTextFromHTML(string(data)))
		if text == "" {
			continue
		}

		title := fmt.Sprintf("Section %d", i+1)
		if ref.Item.HREF != "" {
			if t, ok := titles[ref.Item.HREF]; ok && t != "" {
				title = t
			} else if t, ok := titles[path.Base(ref.Item.HREF)]; ok && t != "" {
				title = t
			}
		}

		b.Chapters = append(b.Chapters, NewChapter(len(b.Chapters), title, text))
	}

	return b, nil
}

func extractTextFromHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return ""
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				out.WriteString(t)
				out.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out.String()
}

// NCX XML structures for parsing toc.ncx
type ncx struct {
	NavMap navMap `xml:"navMap"`
}

type navMap struct {
	NavPoints []navPoint `xml:"navPoint"`
}

type navPoint struct {
	Label    navLabel   `xml:"navLabel"`
	Content  navContent `xml:"content"`
	Children []navPoint `xml:"navPoint"`
}

type navLabel struct {
	Text string `xml:"text"`
}

type navContent struct {
	Src string `xml:"src,attr"`
}

// buildTOCHrefMap parses the NCX and returns a map of href to title.
// Missing or malformed NCX just means spine items keep fallback titles.
func buildTOCHrefMap(filename string, rf *epub.Rootfile) map[string]string {
	result := make(map[string]string)

	ncxData, err := findAndReadNCX(filename, rf)
	if err != nil {
		return result
	}

	var toc ncx
	if err := xml.Unmarshal(ncxData, &toc); err != nil {
		return result
	}

	var extract func(points []navPoint)
	extract = func(points []navPoint) {
		for _, np := range points {
			href := np.Content.Src
			title := strings.TrimSpace(np.Label.Text)

			if _, exists := result[href]; !exists {
				result[href] = title
			}
			if idx := strings.Index(href, "#"); idx != -1 {
				base := href[:idx]
				if _, exists := result[base]; !exists {
					result[base] = title
				}
			}
			base := path.Base(href)
			if idx := strings.Index(base, "#"); idx != -1 {
				base = base[:idx]
			}
			if _, exists := result[base]; !exists {
				result[base] = title
			}

			extract(np.Children)
		}
	}
	extract(toc.NavMap.NavPoints)

	return result
}

func findAndReadNCX(filename string, rf *epub.Rootfile) ([]byte, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var ncxPath string
	for _, item := range rf.Manifest.Items {
		if item.MediaType == "application/x-dtbncx+xml" {
			ncxPath = item.HREF
			break
		}
	}
	if ncxPath == "" {
		for _, f := range zr.File {
			if strings.HasSuffix(strings.ToLower(f.Name), ".ncx") {
				ncxPath = f.Name
				break
			}
		}
	}

	if ncxPath == "" {
		return nil, fmt.Errorf("no NCX file found in EPUB")
	}

	for _, f := range zr.File {
		if f.Name == ncxPath || strings.HasSuffix(f.Name, "/"+ncxPath) || path.Base(f.Name) == path.Base(ncxPath) {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}

	return nil, fmt.Errorf("NCX file %s not found in archive", ncxPath)
}
