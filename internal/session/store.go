package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"messmate-admin/internal/models"

	"github.com/rs/zerolog"
)

const (
	tokenFile = "admin_token"
	userFile  = "admin_user.json"
)

// Store holds the admin session: the backend's bearer token and the
// logged-in user's profile. Both are persisted under fixed keys in the
// state directory so the session survives restarts. The user entry is
// only meaningful while a token is present.
type Store struct {
	dir    string
	logger zerolog.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Load reads the persisted token and user. A missing entry means an
// empty session. A user entry that is present but fails to parse is
// discarded and removed from disk; the token is kept and the session is
// treated as authenticated with an unknown user. Load never fails on
// bad persisted data.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session token: %w", err)
	}
	s.token = strings.TrimSpace(string(raw))

	userPath := filepath.Join(s.dir, userFile)
	rawUser, err := os.ReadFile(userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		s.logger.Warn().Err(err).Msg("Discarding corrupt persisted session user")
		os.Remove(userPath)
		return nil
	}
	s.user = &user

	return nil
}

// Save persists the token unconditionally. The user is persisted only
// when provided; passing nil leaves a previously stored user untouched.
func (s *Store) Save(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	s.token = token

	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("failed to encode session user: %w", err)
		}
		if err := os.WriteFile(filepath.Join(s.dir, userFile), data, 0600); err != nil {
			return fmt.Errorf("failed to persist session user: %w", err)
		}
		s.user = user
	}

	return nil
}

// Clear removes both persisted entries and resets the in-memory
// session. Clearing an already empty session is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn().Err(err).Str("entry", name).Msg("Failed to remove persisted session entry")
		}
	}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.Token() != ""
}
