package textstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Store reads and writes newline-delimited record files inside a single
// data directory. Every write replaces the whole file through a temp file
// and rename, so a crash mid-write never leaves a half-written record set.
type Store struct {
	dir string
}

// New ensures the data directory exists and returns a store scoped to it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	log.Debug().Str("dir", dir).Msg("text record store ready")

	return &Store{dir: dir}, nil
}

// Path returns the absolute location of a named record file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// ReadLines returns every line of the named record file. A file that does
// not exist yet is not an error; it reads as an empty record set.
func (s *Store) ReadLines(name string) ([]string, error) {
	file, err := os.Open(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	var lines []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return lines, nil
}

// WriteLines replaces the named record file with the given lines.
func (s *Store) WriteLines(name string, lines []string) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}

	writer := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := writer.WriteString(line + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
