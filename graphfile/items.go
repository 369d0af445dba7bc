package graphfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	internalstrings "github.com/amonks/unlockpath/internal/strings"
	"github.com/amonks/unlockpath/internal/validation"
)

// SplitMode says how an item list is tokenized.
type SplitMode string

const (
	// SplitLines takes one item per line. Blank lines and lines starting
	// with # are skipped.
	SplitLines SplitMode = "lines"

	// SplitFields takes whitespace-separated items.
	SplitFields SplitMode = "fields"

	// SplitRunes takes every non-space character as an item, for lists
	// written as a run of kanji.
	SplitRunes SplitMode = "runes"
)

// ErrUnknownSplitMode is returned for an unrecognized split mode.
var ErrUnknownSplitMode = errors.New("unknown split mode")

// ValidSplitModes returns all split modes.
func ValidSplitModes() []SplitMode {
	return []SplitMode{SplitLines, SplitFields, SplitRunes}
}

// ParseSplitMode parses a split mode name.
func ParseSplitMode(value string) (SplitMode, error) {
	mode := SplitMode(internalstrings.NormalizeLowerTrimSpace(value))
	for _, valid := range ValidSplitModes() {
		if mode == valid {
			return mode, nil
		}
	}
	return "", validation.FormatInvalidValueError(ErrUnknownSplitMode, SplitMode(value), ValidSplitModes())
}

// SplitItems tokenizes text according to mode.
func SplitItems(text string, mode SplitMode) ([]string, error) {
	text = internalstrings.NormalizeNewlines(text)
	var items []string
	switch mode {
	case SplitLines:
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			items = append(items, line)
		}
	case SplitFields:
		items = strings.Fields(text)
	case SplitRunes:
		for _, r := range text {
			if unicode.IsSpace(r) {
				continue
			}
			items = append(items, string(r))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitMode, mode)
	}
	return items, nil
}

// ReadItems reads an item list file.
func ReadItems(path string, mode SplitMode) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items %s: %w", path, err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	items, err := SplitItems(text, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}
