// Package store holds the client-side application state: the logged-in user
// and their active role, the transient global error banner, and the
// notification feed cache with its staged-deletion machinery.
//
// The store is an explicitly constructed object rather than a process-wide
// singleton; everything that mutates it goes through its methods, which keep
// a single-writer invariant behind one mutex.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/leftovermart/client-go/models"
)

// RoleType discriminates the identity a user is acting as.
type RoleType string

const (
	RoleTypeUser     RoleType = "user"
	RoleTypeBusiness RoleType = "business"
)

// ActiveRole is the identity the logged-in user currently acts as: either
// themselves or a business they administer.
type ActiveRole struct {
	Type RoleType `json:"type"`
	ID   int      `json:"id"`
}

// Backend is the slice of the API client the store drives. Narrowed to an
// interface so tests can substitute a recording fake.
type Backend interface {
	GetUser(ctx context.Context, id int) (models.User, error)
	GetEvents(ctx context.Context, userID int, modifiedSince string) ([]models.Event, error)
	DeleteNotification(ctx context.Context, eventID int) error
	MarkEventAsRead(ctx context.Context, eventID int) error
	UpdateEventStatus(ctx context.Context, eventID int, status models.EventStatus) error
	SetEventTag(ctx context.Context, eventID int, tag models.EventTag) error
}

// DefaultGracePeriod is how long a staged notification waits before its
// permanent deletion fires, leaving the user room to undo.
const DefaultGracePeriod = 10 * time.Second

// ErrNotStaged is returned when a permanent deletion is requested for an
// event that was never staged.
var ErrNotStaged = errors.New("Notification not staged for deletion")

type stagedDeletion struct {
	stagedAt time.Time
	timer    *time.Timer
}

// Store is the central client state container.
type Store struct {
	mu sync.Mutex

	api      Backend
	logger   zerolog.Logger
	sessions SessionStore
	grace    time.Duration

	user        *models.User
	activeRole  *ActiveRole
	globalError *string

	events map[int]models.Event
	staged map[int]*stagedDeletion
}

// Option adjusts a Store during construction.
type Option func(*Store)

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.With().Str("component", "store").Logger()
	}
}

// WithSessionStore sets where the logged-in user id is persisted between
// runs.
func WithSessionStore(sessions SessionStore) Option {
	return func(s *Store) {
		s.sessions = sessions
	}
}

// WithGracePeriod overrides the staged-deletion grace period, used by tests.
func WithGracePeriod(d time.Duration) Option {
	return func(s *Store) {
		s.grace = d
	}
}

// New builds an empty Store bound to the given backend.
func New(api Backend, opts ...Option) *Store {
	s := &Store{
		api:    api,
		logger: zerolog.Nop(),
		grace:  DefaultGracePeriod,
		events: make(map[int]models.Event),
		staged: make(map[int]*stagedDeletion),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUser records the logged-in user, persists their id for session restore,
// and resets the active role to the user acting as themselves.
func (s *Store) SetUser(user models.User) {
	s.mu.Lock()
	s.user = &user
	s.activeRole = &ActiveRole{Type: RoleTypeUser, ID: user.ID}
	s.mu.Unlock()

	if s.sessions != nil {
		if err := s.sessions.SaveUserID(user.ID); err != nil {
			s.logger.Warn().Err(err).Int("user_id", user.ID).Msg("failed to persist session")
		}
	}
}

// User returns the logged-in user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a user session is active.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// ActiveRole returns the identity the user currently acts as, or nil when
// logged out.
func (s *Store) ActiveRole() *ActiveRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeRole == nil {
		return nil
	}
	r := *s.activeRole
	return &r
}

// SetActiveRole switches the acting identity. A business role must be one of
// the businesses the logged-in user administers.
func (s *Store) SetActiveRole(role ActiveRole) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return errors.New("no user logged in")
	}
	switch role.Type {
	case RoleTypeUser:
		if role.ID != s.user.ID {
			return errors.New("cannot act as another user")
		}
	case RoleTypeBusiness:
		found := false
		for _, b := range s.user.BusinessesAdministered {
			if b.ID == role.ID {
				found = true
				break
			}
		}
		if !found {
			return errors.Errorf("user does not administer business %d", role.ID)
		}
	default:
		return errors.Errorf("unknown role type %q", role.Type)
	}

	s.activeRole = &role
	return nil
}

// Logout clears the session, the feed cache and any staged deletions, and
// forgets the persisted user id.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.activeRole = nil
	s.globalError = nil
	s.events = make(map[int]models.Event)
	for _, staged := range s.staged {
		if staged.timer != nil {
			staged.timer.Stop()
		}
	}
	s.staged = make(map[int]*stagedDeletion)
	s.mu.Unlock()

	if s.sessions != nil {
		if err := s.sessions.Clear(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to clear persisted session")
		}
	}
}

// RestoreSession re-establishes the session from the persisted user id, if
// any. Returns whether a session was restored.
func (s *Store) RestoreSession(ctx context.Context) (bool, error) {
	if s.sessions == nil {
		return false, nil
	}
	id, ok, err := s.sessions.LoadUserID()
	if err != nil {
		return false, errors.Wrap(err, "loading persisted session")
	}
	if !ok {
		return false, nil
	}

	user, err := s.api.GetUser(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("user_id", id).Msg("session restore failed")
		return false, err
	}
	s.SetUser(user)
	return true, nil
}

// SetGlobalError raises the process-wide error banner.
func (s *Store) SetGlobalError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.globalError = &message
}

// GlobalError returns the current banner message, or ok=false when none is
// set.
func (s *Store) GlobalError() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.globalError == nil {
		return "", false
	}
	return *s.globalError, true
}

// ClearGlobalError dismisses the banner.
func (s *Store) ClearGlobalError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.globalError = nil
}
