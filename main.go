//go:build !gui

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flickread/flick/internal/slides"
	"github.com/flickread/flick/internal/state"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	slideStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	autoplayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00")).
			Bold(true)

	completeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)
)

type model struct {
	session   *slides.Session
	bookTitle string

	stateStore *state.StateStore
	fileHash   string

	autoplay bool
	shownAt  time.Time
	bar      progress.Model
	quitting bool
	width    int
	height   int
}

type autoplayTickMsg time.Time

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) savePosition() {
	if m.stateStore != nil && m.fileHash != "" {
		m.stateStore.SetPosition(m.fileHash, m.session.Position())
	}
}

// observeDwell feeds the time the current slide was on screen into the
// pace estimator, ignoring outliers.
func (m *model) observeDwell() {
	d := time.Since(m.shownAt)
	if d >= minDwell && d <= maxDwell {
		m.session.ObserveDwell(d.Seconds())
	}
}

func (m *model) advance(manual bool) {
	if manual {
		m.observeDwell()
	}
	if m.session.Next() {
		m.shownAt = time.Now()
		m.savePosition()
	} else {
		m.autoplay = false
	}
}

func (m *model) retreat() {
	if m.session.Prev() {
		m.shownAt = time.Now()
		m.savePosition()
	}
}

func (m *model) seek(percent float64) {
	m.autoplay = false
	m.session.SeekProgress(percent)
	m.shownAt = time.Now()
	m.savePosition()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "enter":
			// Manual navigation stops autoplay, like a swipe would.
			m.autoplay = false
			m.advance(true)
			return m, nil

		case "left", "h":
			m.autoplay = false
			m.retreat()
			return m, nil

		case " ":
			if m.autoplay {
				m.autoplay = false
				return m, nil
			}
			if !m.session.AutoplayReady() {
				return m, nil
			}
			m.autoplay = true
			m.shownAt = time.Now()
			return m, autoplayTick(m.session.AutoAdvanceDelay())

		case "+", "=":
			if m.session.Config().MaxWords < 200 {
				m.session.SetMaxWords(m.session.Config().MaxWords + 5)
			}
			return m, nil

		case "-":
			if m.session.Config().MaxWords > 5 {
				m.session.SetMaxWords(m.session.Config().MaxWords - 5)
			}
			return m, nil

		case "[":
			m.autoplay = false
			m.session.Seek(m.session.Position().ChapterIndex-1, 0)
			m.shownAt = time.Now()
			m.savePosition()
			return m, nil

		case "]":
			m.autoplay = false
			m.session.Seek(m.session.Position().ChapterIndex+1, 0)
			m.shownAt = time.Now()
			m.savePosition()
			return m, nil

		case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.seek(float64(msg.String()[0]-'0') * 10)
			return m, nil

		case "q", "Q", "ctrl+c":
			m.savePosition()
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = msg.Width - 4
		return m, nil

	case autoplayTickMsg:
		if !m.autoplay {
			return m, nil
		}
		m.advance(false)
		if !m.autoplay {
			// Reached the end.
			return m, nil
		}
		return m, autoplayTick(m.session.AutoAdvanceDelay())
	}

	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		if m.session.AtEnd() {
			return completeStyle.Render("\n  Reading complete!\n")
		}
		return ""
	}

	if m.session.Slide() == "" {
		return "No text to read."
	}

	auto := ""
	if m.autoplay {
		auto = autoplayStyle.Render(" [AUTO]")
	} else if !m.session.AutoplayReady() {
		auto = statusStyle.Render("(calibrating pace)")
	}

	ch := m.session.Chapter()
	status := titleStyle.Render(m.bookTitle) + statusStyle.Render(
		fmt.Sprintf("%s | %.1f%% | %d words/slide%s",
			ch.Title,
			m.session.Progress(),
			m.session.Config().MaxWords,
			auto,
		),
	)

	controls := controlsStyle.Render("←/→: navigate  SPACE: autoplay  +/-: slide size  [/]: chapter  0-9: seek  Q: quit")

	slideWidth := m.width - 8
	if slideWidth < 20 {
		slideWidth = 20
	}
	slide := slideStyle.Width(slideWidth).Render(m.session.Slide())
	bar := m.bar.ViewAs(m.session.Progress() / 100)

	// Reserve lines for status, progress bar and controls.
	slideLines := strings.Count(slide, "\n") + 1
	avail := m.height - 4 - slideLines
	if avail < 0 {
		avail = 0
	}
	vPad := avail / 2

	var sb strings.Builder
	sb.WriteString(status)
	sb.WriteString("\n")
	for i := 0; i < vPad; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(slide))
	sb.WriteString("\n")
	for i := 0; i < avail-vPad; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString("  " + bar + "\n")
	sb.WriteString(controls)

	return sb.String()
}

func autoplayTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return autoplayTickMsg(t)
	})
}

func main() {
	maxWords := flag.Int("m", 0, "Maximum words per slide (default: 40 or config file)")
	freshStart := flag.Bool("fresh", false, "Ignore saved reading position")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Flick - Slide-Based Reading Tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  flick [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  flick book.epub           Read an EPUB as slides\n")
		fmt.Fprintf(os.Stderr, "  flick -m 25 notes.md      Smaller slides\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | flick      Read from stdin\n")
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  ←/→      Previous/next slide\n")
		fmt.Fprintf(os.Stderr, "  SPACE    Toggle auto-advance (needs a few slides of calibration)\n")
		fmt.Fprintf(os.Stderr, "  +/-      Bigger/smaller slides\n")
		fmt.Fprintf(os.Stderr, "  [/]      Previous/next chapter\n")
		fmt.Fprintf(os.Stderr, "  0-9      Jump to 0%%..90%%\n")
		fmt.Fprintf(os.Stderr, "  Q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("flick %s (commit: %s, built: %s)\n", version, commit, date)
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

	m := &model{
		bookTitle: b.Title,
		fileHash:  hash,
		bar:       progress.New(progress.WithDefaultGradient()),
		width:     80,
		height:    24,
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

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
