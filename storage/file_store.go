package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/void-siege/parameter"
)

const (
	highScoreFile   = "highscores.toml"
	achievementFile = "achievements.toml"
)

type highScoreDoc struct {
	Modes map[string][]HighScore `toml:"modes"`
}

type achievementDoc struct {
	// mode → player name → unlocked names
	Modes map[string]map[string][]string `toml:"modes"`
}

// FileStore keeps save data as TOML documents in one directory
type FileStore struct {
	mu    sync.Mutex
	dir   string
	limit int
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, limit: parameter.MaxHighScores}, nil
}

// Dir returns the save directory
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) HighScores(mode string) ([]HighScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc highScoreDoc
	if err := s.read(highScoreFile, &doc); err != nil {
		return nil, err
	}
	table := doc.Modes[mode]
	if len(table) == 0 {
		return nil, ErrNoRecords
	}
	slices.SortStableFunc(table, compareScores)
	return table, nil
}

func (s *FileStore) SubmitHighScore(mode string, rec HighScore) (bool, error) {
	if err := ValidateName(rec.Name); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var doc highScoreDoc
	if err := s.read(highScoreFile, &doc); err != nil {
		return false, err
	}
	if doc.Modes == nil {
		doc.Modes = make(map[string][]HighScore)
	}

	table, placed := Rank(doc.Modes[mode], rec, s.limit)
	if !placed {
		return false, nil
	}
	doc.Modes[mode] = table
	if err := s.write(highScoreFile, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStore) Achievements(name, mode string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc achievementDoc
	if err := s.read(achievementFile, &doc); err != nil {
		return nil, err
	}
	names := doc.Modes[mode][name]
	if len(names) == 0 {
		return nil, ErrNoRecords
	}
	return names, nil
}

func (s *FileStore) SaveAchievements(name, mode string, unlocked []string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var doc achievementDoc
	if err := s.read(achievementFile, &doc); err != nil {
		return err
	}
	if doc.Modes == nil {
		doc.Modes = make(map[string]map[string][]string)
	}
	if doc.Modes[mode] == nil {
		doc.Modes[mode] = make(map[string][]string)
	}

	merged := slices.Clone(doc.Modes[mode][name])
	for _, a := range unlocked {
		if !slices.Contains(merged, a) {
			merged = append(merged, a)
		}
	}
	doc.Modes[mode][name] = merged
	return s.write(achievementFile, doc)
}

// read decodes file into v, leaving v empty when the file does not exist
func (s *FileStore) read(file string, v any) error {
	_, err := toml.DecodeFile(filepath.Join(s.dir, file), v)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", file, err)
	}
	return nil
}

// write replaces file through a temp file and rename
func (s *FileStore) write(file string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}

	path := filepath.Join(s.dir, file)
	tmp, err := os.CreateTemp(s.dir, file+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
