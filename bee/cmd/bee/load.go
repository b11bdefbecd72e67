package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/bee/bee"
	"golang.org/x/sync/errgroup"
)

// loadDictionary reads each named word list concurrently and concatenates
// them in order. Words shorter than bee.MinWordLen or containing any letter
// of exclude are dropped. It also returns the number of words read before
// filtering.
func loadDictionary(names []string, exclude string) (words []string, total int, err error) {
	lists := make([][]string, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			f, err := os.Open(resolveDict(name))
			if err != nil {
				return err
			}
			defer f.Close()
			list, err := readWords(f)
			if err != nil {
				return fmt.Errorf("error reading dictionary %s: %w", name, err)
			}
			lists[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	for _, list := range lists {
		total += len(list)
		for _, w := range list {
			if len(w) < bee.MinWordLen || strings.ContainsAny(w, exclude) {
				continue
			}
			words = append(words, w)
		}
	}
	return words, total, nil
}

// readWords reads one word per line, lowercased and trimmed.
// Blank lines are skipped.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// resolveDict looks for a relative dictionary path in the current directory
// first and then next to the executable.
func resolveDict(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	alt := filepath.Join(filepath.Dir(exe), name)
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return name
}
