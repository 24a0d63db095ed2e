package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mjacquet/eventdesk/internal/client/models"
	"github.com/mjacquet/eventdesk/internal/common"
	"github.com/mjacquet/eventdesk/internal/logging"
)

// Store owns the current session and notifies subscribers when it changes.
//
// Reads always go through to durable storage rather than an in-memory copy,
// so they reflect the latest persisted value even after the storage was
// mutated out of band (another process sharing the database file, or a crash
// between the two writes of SetSession).
//
// The store is an injected dependency, not ambient state: components that
// need session changes register a callback via Subscribe and release it with
// the returned unsubscribe function.
type Store struct {
	repo Repository
	log  logging.Logger

	mu          sync.Mutex
	subscribers map[int]func(*models.User)
	nextID      int
}

func NewStore(repo Repository, log logging.Logger) *Store {
	return &Store{
		repo:        repo,
		log:         log,
		subscribers: make(map[int]func(*models.User)),
	}
}

// SetSession persists the user and token and publishes the new user.
// The two keys are written independently, not in one transaction; a crash
// between the writes can leave currentUser and token out of sync.
func (s *Store) SetSession(ctx context.Context, user *models.User, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.SessionKeyCurrentUser, encoded); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.SessionKeyToken, []byte(token)); err != nil {
		return err
	}
	s.publish(user)
	return nil
}

// ClearSession removes both durable keys and publishes nil. Subscribers are
// notified even when one of the deletes fails, so observers converge on the
// logged-out state.
func (s *Store) ClearSession(ctx context.Context) error {
	err := s.repo.Delete(ctx, common.SessionKeyCurrentUser)
	if derr := s.repo.Delete(ctx, common.SessionKeyToken); err == nil {
		err = derr
	}
	s.publish(nil)
	return err
}

// Token reads the token through from durable storage; it is never cached.
// Returns "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, common.SessionKeyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// CurrentUser re-reads and re-normalizes the stored user on every call,
// guarding against staleness after out-of-band storage mutation. An absent
// or unreadable record yields nil without error.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	value, err := s.repo.Get(ctx, common.SessionKeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "stored user is not valid JSON, treating as logged out", "error", err)
		return nil, nil
	}
	user.NormalizeName()
	return &user, nil
}

// UpdateCurrentUser overwrites the stored user, leaving the token untouched,
// and publishes the change. Used after a profile edit.
func (s *Store) UpdateCurrentUser(ctx context.Context, user *models.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.SessionKeyCurrentUser, encoded); err != nil {
		return err
	}
	s.publish(user)
	return nil
}

// Subscribe registers fn for session changes and returns its unsubscribe
// function. fn is invoked immediately with the current user (nil while the
// session is unknown) and then on every subsequent change, on the goroutine
// performing the change.
func (s *Store) Subscribe(fn func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	current, err := s.CurrentUser(context.Background())
	if err != nil {
		current = nil
	}
	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(user *models.User) {
	s.mu.Lock()
	fns := make([]func(*models.User), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
