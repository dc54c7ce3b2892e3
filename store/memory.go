// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/Vinthiya3014/MBTI-project/auth"
)

var _ UserStore = (*MemoryUserStore)(nil)

// MemoryUserStore is an in-memory UserStore for tests.
type MemoryUserStore struct {
	mu     sync.Mutex
	hashes map[string]string
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{hashes: make(map[string]string)}
}

func (s *MemoryUserStore) Exists(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.hashes[username]
	return ok, nil
}

func (s *MemoryUserStore) Create(_ context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hashes[username]; ok {
		return ErrDuplicateUser
	}
	s.hashes[username] = hash
	return nil
}

func (s *MemoryUserStore) Verify(_ context.Context, username, password string) (bool, error) {
	s.mu.Lock()
	hash, ok := s.hashes[username]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return auth.CheckPassword(hash, password), nil
}
