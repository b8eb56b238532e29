// Package config loads the user's highlight list.
package config

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// HighlightFile is the per-user list of surnames to emphasize, one per line,
// looked up under the home directory.
const HighlightFile = ".nhl-scores.config"

// Highlights is a surname membership set.
type Highlights map[string]bool

// LoadHighlights reads the highlight file from the user's home directory.
// A missing or unreadable file means an empty set, not an error.
func LoadHighlights() Highlights {
	home, err := homedir.Dir()
	if err != nil {
		return Highlights{}
	}

	body, err := os.ReadFile(filepath.Join(home, HighlightFile))
	if err != nil {
		return Highlights{}
	}

	return ParseHighlights(string(body))
}

// ParseHighlights splits newline-delimited surnames. CRLF and LF endings
// parse identically; blank lines are skipped and tokens trimmed.
func ParseHighlights(body string) Highlights {
	set := make(Highlights)

	for _, line := range strings.Split(body, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		set[name] = true
	}

	return set
}
