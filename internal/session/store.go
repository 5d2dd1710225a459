package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the session token across restarts of the consumer.
// The web frontend mirrors the store into the browser cookie; the CLI uses
// the file store. The user profile is never persisted, only the token.
type TokenStore interface {
	// Token returns the persisted token, or "" when none is held
	Token() (string, error)
	// Save persists the token
	Save(token string) error
	// Clear removes any persisted token
	Clear() error
}

// MemoryTokenStore keeps the token in memory only
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileTokenStore persists the token to a file (0600) so CLI invocations
// share one session
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a token store backed by the given file path
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// DefaultTokenFile returns the default CLI token file location
func DefaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finboard/token"
	}
	return filepath.Join(home, ".finboard", "token")
}

func (s *FileTokenStore) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0600)
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
