/*
Package session holds the client's current identity and token.

The store keeps the pair in memory, mirrors it to persistent storage whenever
both halves are present, and clears the persisted state whenever either half
is absent. Dependent views subscribe to be notified on every change instead
of reading ambient global state.
*/
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"parikshamitra/internal/client/api"
	"parikshamitra/internal/client/storage"
)

// Persisted entry keys: the serialized user object and the raw token string.
// They are always written together and cleared together.
const (
	userKey  = "parikshaUser"
	tokenKey = "parikshaToken"
)

// Session is an immutable snapshot of the current authentication state.
type Session struct {
	User  *api.User
	Token string
}

// LoggedIn reports whether the snapshot carries a complete identity.
func (s Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}

// Store is the injectable session holder with login/logout mutators and a
// subscription mechanism for dependent views.
type Store struct {
	mu          sync.RWMutex
	user        *api.User
	token       string
	kv          *storage.KV
	subscribers map[int]func(Session)
	nextSubID   int
}

// NewStore constructs a logged-out Store backed by the given key/value store.
func NewStore(kv *storage.KV) *Store {
	return &Store{
		kv:          kv,
		subscribers: make(map[int]func(Session)),
	}
}

// Restore synchronously loads persisted state at startup. A half-present
// state (one key missing or unreadable) restores to logged-out and wipes the
// remainder, so the persisted pair is always complete or absent.
func (s *Store) Restore(ctx context.Context) error {
	rawUser, userErr := s.kv.Get(ctx, userKey)
	token, tokenErr := s.kv.Get(ctx, tokenKey)

	if userErr != nil || tokenErr != nil {
		if !errors.Is(userErr, storage.ErrKeyNotFound) && userErr != nil {
			return userErr
		}
		if !errors.Is(tokenErr, storage.ErrKeyNotFound) && tokenErr != nil {
			return tokenErr
		}
		return s.kv.DeleteAll(ctx, userKey, tokenKey)
	}

	var u api.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		return s.kv.DeleteAll(ctx, userKey, tokenKey)
	}

	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()

	s.notify()
	return nil
}

// Login stores the identity pair, persists both entries in one transaction,
// and notifies subscribers.
func (s *Store) Login(ctx context.Context, user *api.User, token string) error {
	if user == nil || token == "" {
		return errors.New("session: login requires both user and token")
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := s.kv.SetMany(ctx, map[string]string{
		userKey:  string(rawUser),
		tokenKey: token,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	s.notify()
	return nil
}

// Logout clears the in-memory state, removes both persisted entries, and
// notifies subscribers. The bearer token itself stays valid until its natural
// expiry; there is no server-side revocation.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.DeleteAll(ctx, userKey, tokenKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.notify()
	return nil
}

// Current returns a snapshot of the session state.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{User: s.user, Token: s.token}
}

// LoggedIn reports whether a complete identity is held.
func (s *Store) LoggedIn() bool {
	return s.Current().LoggedIn()
}

// Subscribe registers fn to run after every session change and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// notify invokes every subscriber with the current snapshot.
func (s *Store) notify() {
	s.mu.RLock()
	snapshot := Session{User: s.user, Token: s.token}
	fns := make([]func(Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
