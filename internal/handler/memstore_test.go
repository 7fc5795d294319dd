package handler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"parikshamitra/internal/app/storage"
	"parikshamitra/internal/app/user"
)

// memStore is an in-memory user.Store for handler tests. The mutex plays the
// part of the database's unique index: under concurrent duplicate inserts
// exactly one wins and the rest see ErrEmailTaken.
type memStore struct {
	mu   sync.Mutex
	byID map[string]*user.User
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string]*user.User)}
}

func (s *memStore) Create(_ context.Context, params user.CreateParams) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := user.NormalizeEmail(params.Email)
	for _, existing := range s.byID {
		if user.NormalizeEmail(existing.Email) == normalized {
			return nil, user.ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New().String(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byID[u.ID] = u

	cp := *u
	return &cp, nil
}

func (s *memStore) GetByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := user.NormalizeEmail(email)
	for _, u := range s.byID {
		if user.NormalizeEmail(u.Email) == normalized {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *memStore) GetByID(_ context.Context, id string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memStore) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *memStore) UpdateProfile(_ context.Context, id string, name string, avatarURL string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	u.Name = name
	u.AvatarURL = avatarURL
	u.UpdatedAt = time.Now().UTC()

	cp := *u
	return &cp, nil
}

var _ storage.StorageService = (*fakeStorage)(nil)

// fakeStorage is a canned storage.StorageService recording deletes.
type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeStorage) PresignUpload(_ context.Context, key, _ string, _ int64, _ time.Duration) (string, error) {
	return "https://s3.test/" + key + "?X-Amz-Signature=upload", nil
}

func (f *fakeStorage) PresignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://s3.test/" + key + "?X-Amz-Signature=download", nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}
