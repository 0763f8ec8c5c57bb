package store

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// SessionStore persists the authenticated user's id between runs, standing
// in for the browser's one-year session cookie. Only the id is stored; the
// user is re-fetched from the backend on restore.
type SessionStore interface {
	SaveUserID(id int) error
	LoadUserID() (id int, ok bool, err error)
	Clear() error
}

// sessionTTL mirrors the one-year expiry of the original cookie.
const sessionTTL = 365 * 24 * time.Hour

type persistedSession struct {
	UserID  int       `json:"userId"`
	Expires time.Time `json:"expires"`
}

// FileSessionStore keeps the session id in a small JSON file.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore builds a session store backed by the given file path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (f *FileSessionStore) SaveUserID(id int) error {
	data, err := json.Marshal(persistedSession{
		UserID:  id,
		Expires: time.Now().Add(sessionTTL),
	})
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return nil
}

func (f *FileSessionStore) LoadUserID() (int, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "reading session file")
	}

	var session persistedSession
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is the same as no session.
		return 0, false, nil
	}
	if session.UserID == 0 || time.Now().After(session.Expires) {
		return 0, false, nil
	}
	return session.UserID, true, nil
}

func (f *FileSessionStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
