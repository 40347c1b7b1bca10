package preset

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Preset — именованный набор настроек слияния. Ядро к хранилищу не обращается:
// handler разворачивает пресет в значения формы, дальше всё как обычно.
type Preset struct {
	LeftSheet       string   `json:"left_sheet"`
	RightSheet      string   `json:"right_sheet"`
	LeftOutputCols  []string `json:"left_output_cols"`
	LeftMatchCols   []string `json:"left_match_cols"`
	RightOutputCols []string `json:"right_output_cols"`
	RightMatchCols  []string `json:"right_match_cols"`
	Threshold       float64  `json:"threshold"`
	Strategy        string   `json:"strategy,omitempty"`
	PreferLibrary   bool     `json:"prefer_library"`
	FilterMode      string   `json:"filter_mode"`
}

// Store — все пресеты в одном JSON-файле, под мьютексом.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// load терпим к отсутствию файла: нет файла — нет пресетов.
func (s *Store) load() (map[string]Preset, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Preset{}, nil
		}
		return nil, err
	}
	out := map[string]Preset{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) save(all map[string]Preset) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *Store) List() (map[string]Preset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Get(name string) (Preset, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return Preset{}, false, err
	}
	p, ok := all[name]
	return p, ok, nil
}

func (s *Store) Upsert(name string, p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	all[name] = p
	return s.save(all)
}

// Delete: false — пресета не было.
func (s *Store) Delete(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return false, err
	}
	if _, ok := all[name]; !ok {
		return false, nil
	}
	delete(all, name)
	return true, s.save(all)
}
