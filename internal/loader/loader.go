// Package loader reads the external inputs of the solver: structure files
// describing which cells take letters, and word-list files providing the
// vocabulary. The core assumes it receives a well-formed structure and a
// non-empty vocabulary; rejecting malformed input happens here.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// OpenCell is the structure-file rune marking a fillable cell. Every other
// rune blocks the cell.
const OpenCell = '_'

// Structure reads a structure file into a boolean cell matrix. Lines may
// be ragged; short lines are padded with blocked cells.
func Structure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	width := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		lines = append(lines, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ParseStructure(lines, width)
}

// ParseStructure converts structure lines into a cell matrix of uniform
// width.
func ParseStructure(lines []string, width int) ([][]bool, error) {
	if len(lines) == 0 || width == 0 {
		return nil, fmt.Errorf("structure is empty")
	}

	cells := make([][]bool, len(lines))
	for i, line := range lines {
		cells[i] = make([]bool, width)
		for j, r := range line {
			if j >= width {
				return nil, fmt.Errorf("structure line %d is wider than %d", i, width)
			}
			cells[i][j] = r == OpenCell
		}
	}
	return cells, nil
}

// Words loads a word list: one word per line, lowercased, '#' comments
// skipped, letters outside a-z rejected. Words outside the length bounds
// are dropped.
func Words(ctx context.Context, path string, minWordLength, maxWordLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) < minWordLength || len(word) > maxWordLength {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Exclude removes the excluded words from the list, preserving order.
func Exclude(words, excluded []string) []string {
	if len(excluded) == 0 {
		return words
	}
	drop := make(map[string]bool, len(excluded))
	for _, w := range excluded {
		drop[w] = true
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !drop[w] {
			kept = append(kept, w)
		}
	}
	return kept
}
