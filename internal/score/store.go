package score

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sentinel marks "no recorded best".
const Sentinel = 999

const fileName = "megascore.txt"

// Store keeps the best score as decimal text in a single file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the score file under the user config dir, or a file in
// the working directory when no config dir is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, "mega-guess", fileName)
}

func (s *Store) Path() string { return s.path }

// Read returns the stored value or the reason it could not be read.
func (s *Store) Read() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("read score file: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse score file: %w", err)
	}
	return v, nil
}

// Load never fails: an absent or corrupt file yields Sentinel.
func (s *Store) Load() int {
	v, err := s.Read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debug().Err(err).Str("path", s.path).Msg("score file unusable, starting fresh")
		}
		return Sentinel
	}
	return v
}

func (s *Store) Save(v int) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(v)), 0o644); err != nil {
		return fmt.Errorf("write score file: %w", err)
	}
	return nil
}
