// Package lexicon loads candidate word lists for the filler. Words are
// uppercased and deduplicated; everything after the first whitespace-separated
// field on a line is ignored.
package lexicon

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Load reads a word list from disk, one word per line.
func Load(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	words, err := LoadReader(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("filename", filename).Int("words", len(words)).Msg("loaded lexicon")
	return words, nil
}

// LoadReader reads a word list from an arbitrary reader.
func LoadReader(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := strings.ToUpper(fields[0])
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words, scanner.Err()
}
