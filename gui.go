//go:build gui

package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/flickread/flick/internal/slides"
	"github.com/flickread/flick/internal/state"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type guiModel struct {
	session    *slides.Session
	bookTitle  string
	stateStore *state.StateStore
	fileHash   string

	autoplay     bool
	shownAt      time.Time
	panelVisible bool
}

func (m *guiModel) savePosition() {
	if m.stateStore != nil && m.fileHash != "" {
		m.stateStore.SetPosition(m.fileHash, m.session.Position())
	}
}

func main() {
	maxWords := flag.Int("m", 0, "Maximum words per slide (default: 40 or config file)")
	freshStart := flag.Bool("fresh", false, "Ignore saved reading position")
	showChapters := flag.Bool("chapters", false, "Show chapter panel at startup")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Gflick - GUI Slide-Based Reading Tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  gflick [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gflick book.epub            Read an EPUB as slides\n")
		fmt.Fprintf(os.Stderr, "  gflick --chapters book.epub Show chapter panel at startup\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | gflick       Read from stdin\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("gflick %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	b, hash, err := loadBook(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := readerConfig(*maxWords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := &guiModel{
		bookTitle: b.Title,
		fileHash:  hash,
		shownAt:   time.Now(),
	}

	pos := slides.Position{}
	if hash != "" {
		if store, err := state.NewStateStore(); err == nil {
			m.stateStore = store
			if !*freshStart {
				pos = store.GetPosition(hash)
			}
		}
	}
	m.session = slides.NewSession(b.Chapters, pos, cfg)
	m.panelVisible = *showChapters && len(b.Chapters) > 1

	a := app.New()
	w := a.NewWindow("gflick - " + m.bookTitle)

	slideLabel := widget.NewLabel(m.session.Slide())
	slideLabel.Wrapping = fyne.TextWrapWord
	slideLabel.Alignment = fyne.TextAlignCenter
	slideLabel.TextStyle.Bold = true

	statusLabel := widget.NewLabel("")
	statusLabel.Alignment = fyne.TextAlignCenter

	progressBar := widget.NewProgressBar()
	progressBar.Max = 100

	controlsLabel := widget.NewLabel("SPACE: autoplay  ←/→: navigate  +/-: slide size  T: chapters  R: restart  F: fullscreen  Q: quit")
	controlsLabel.Alignment = fyne.TextAlignCenter

	updateDisplay := func() {
		slideLabel.SetText(m.session.Slide())
		progressBar.SetValue(m.session.Progress())

		auto := ""
		if m.autoplay {
			auto = " [AUTO]"
		} else if !m.session.AutoplayReady() {
			auto = " (calibrating pace)"
		}
		statusLabel.SetText(fmt.Sprintf("%s | %.1f%% | %d words/slide%s",
			m.session.Chapter().Title,
			m.session.Progress(),
			m.session.Config().MaxWords,
			auto))
	}

	chapterList := widget.NewList(
		func() int { return len(m.session.Chapters()) },
		func() fyne.CanvasObject { return widget.NewLabel("Chapter") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			chapters := m.session.Chapters()
			if id < len(chapters) {
				obj.(*widget.Label).SetText(chapters[id].Title)
			}
		},
	)

	readingContent := container.NewBorder(
		container.NewVBox(statusLabel, progressBar),
		controlsLabel,
		nil, nil,
		slideLabel,
	)

	chapterPanel := container.NewBorder(
		widget.NewLabel("Chapters"),
		widget.NewLabel("Click to jump • T to close"),
		nil, nil,
		chapterList,
	)

	split := container.NewHSplit(chapterPanel, readingContent)
	split.Offset = 0.25
	if !m.panelVisible {
		chapterPanel.Hide()
	}

	chapterList.OnSelected = func(id widget.ListItemID) {
		m.autoplay = false
		m.session.Seek(id, 0)
		m.shownAt = time.Now()
		m.savePosition()
		m.panelVisible = false
		chapterPanel.Hide()
		split.Refresh()
		updateDisplay()
	}

	done := make(chan bool)
	var closeOnce sync.Once

	// The auto-advance delay shrinks or grows as the estimator learns, so
	// a one-shot timer is re-armed after every automatic advance.
	advanceTimer := time.NewTimer(time.Hour)
	advanceTimer.Stop()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-advanceTimer.C:
				if !m.autoplay {
					continue
				}
				fyne.Do(func() {
					if m.session.Next() {
						m.shownAt = time.Now()
						m.savePosition()
						advanceTimer.Reset(m.session.AutoAdvanceDelay())
					} else {
						m.autoplay = false
					}
					updateDisplay()
				})
			}
		}
	}()

	observeDwell := func() {
		d := time.Since(m.shownAt)
		if d >= minDwell && d <= maxDwell {
			m.session.ObserveDwell(d.Seconds())
		}
	}

	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeySpace:
			if m.autoplay {
				m.autoplay = false
				advanceTimer.Stop()
			} else if m.session.AutoplayReady() {
				m.autoplay = true
				m.shownAt = time.Now()
				advanceTimer.Reset(m.session.AutoAdvanceDelay())
			}
			updateDisplay()

		case fyne.KeyRight:
			m.autoplay = false
			advanceTimer.Stop()
			observeDwell()
			if m.session.Next() {
				m.shownAt = time.Now()
				m.savePosition()
			}
			updateDisplay()

		case fyne.KeyLeft:
			m.autoplay = false
			advanceTimer.Stop()
			if m.session.Prev() {
				m.shownAt = time.Now()
				m.savePosition()
			}
			updateDisplay()

		case fyne.KeyF:
			w.SetFullScreen(!w.FullScreen())

		case fyne.KeyQ:
			m.savePosition()
			closeOnce.Do(func() {
				close(done)
			})
			a.Quit()
		}
	})

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 't', 'T':
			if len(m.session.Chapters()) > 1 {
				m.panelVisible = !m.panelVisible
				if m.panelVisible {
					m.autoplay = false
					advanceTimer.Stop()
					chapterPanel.Show()
				} else {
					chapterPanel.Hide()
				}
				split.Refresh()
				updateDisplay()
			}

		case 'r', 'R':
			m.autoplay = false
			advanceTimer.Stop()
			m.session.Seek(0, 0)
			m.shownAt = time.Now()
			if m.stateStore != nil && m.fileHash != "" {
				m.stateStore.Clear(m.fileHash)
			}
			updateDisplay()

		case '+', '=':
			if m.session.Config().MaxWords < 200 {
				m.session.SetMaxWords(m.session.Config().MaxWords + 5)
			}
			updateDisplay()

		case '-':
			if m.session.Config().MaxWords > 5 {
				m.session.SetMaxWords(m.session.Config().MaxWords - 5)
			}
			updateDisplay()
		}
	})

	w.Resize(fyne.NewSize(800, 600))
	w.SetContent(split)

	w.SetOnClosed(func() {
		m.savePosition()
		closeOnce.Do(func() {
			close(done)
		})
	})

	updateDisplay()
	w.ShowAndRun()
}
