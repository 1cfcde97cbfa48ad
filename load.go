package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flickread/flick/internal/book"
	"github.com/flickread/flick/internal/config"
	"github.com/flickread/flick/internal/library"
	"github.com/flickread/flick/internal/slides"
	"github.com/flickread/flick/internal/state"
)

// Dwell times outside this range are noise (a key held down, a coffee
// break) and are not fed to the pace estimator.
const (
	minDwell = 500 * time.Millisecond
	maxDwell = 2 * time.Minute
)

// loadBook resolves the input into chapter records: a file argument (via
// the library cache for EPUBs) or stdin. The returned hash identifies the
// book for position persistence; it is empty for stdin input.
func loadBook(args []string) (book.Book, string, error) {
	if len(args) == 0 {
		text, err := readStdin()
		if err != nil {
			return book.Book{}, "", err
		}
		return book.FromText("stdin", text), "", nil
	}

	filename := args[0]
	hash, err := state.ComputeHash(filename)
	if err != nil {
		return book.Book{}, "", fmt.Errorf("failed to read file '%s': %w", filename, err)
	}

	// EPUB parsing is the expensive path; serve repeat opens from the
	// library cache. Cache failures just mean parsing again.
	if strings.EqualFold(filepath.Ext(filename), ".epub") {
		if b, ok := loadCached(hash); ok {
			return b, hash, nil
		}
	}

	b, err := book.Open(filename)
	if err != nil {
		return book.Book{}, "", fmt.Errorf("failed to read file '%s': %w", filename, err)
	}
	if len(b.Chapters) == 0 {
		return book.Book{}, "", fmt.Errorf("no text to read in '%s'", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".epub") {
		cacheBook(hash, b)
	}
	return b, hash, nil
}

func loadCached(hash string) (book.Book, bool) {
	lib, err := library.Open(config.DefaultLibraryPath())
	if err != nil {
		return book.Book{}, false
	}
	defer lib.Close()

	b, ok, err := lib.Get(context.Background(), hash)
	if err != nil || !ok || len(b.Chapters) == 0 {
		return book.Book{}, false
	}
	return b, true
}

func cacheBook(hash string, b book.Book) {
	lib, err := library.Open(config.DefaultLibraryPath())
	if err != nil {
		return
	}
	defer lib.Close()
	// Best-effort; a failed cache write only costs a re-parse next time.
	_ = lib.Put(context.Background(), hash, b)
}

// readerConfig resolves the chunk config: defaults, then the TOML config
// file, then the -m flag. Contract violations are rejected here so the
// chunker never sees an invalid cap.
func readerConfig(flagMaxWords int) (slides.Config, error) {
	cfg := slides.DefaultConfig()

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return slides.Config{}, err
	}
	if fileCfg.Reading.MaxWords != nil {
		cfg.MaxWords = *fileCfg.Reading.MaxWords
	}

	if flagMaxWords != 0 {
		if flagMaxWords < 1 {
			return slides.Config{}, fmt.Errorf("-m must be at least 1, got %d", flagMaxWords)
		}
		cfg.MaxWords = flagMaxWords
	}
	return cfg, nil
}

func readStdin() (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no input provided; provide a file or pipe text to stdin (try: flick -h)")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no text to read")
	}
	return string(data), nil
}
