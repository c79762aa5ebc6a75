// Package store provides the persistence backends: in-memory for tests
// and single-process runs, SQLite for local durability, Postgres for
// shared deployments. All three implement the engine store interfaces.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/anatolykoptev/go_jobrank/internal/engine"
)

// Memory is a map-backed store. Values are copied on the way in and out so
// callers cannot mutate stored state.
type Memory struct {
	mu        sync.RWMutex
	profiles  map[string]engine.UserProfile
	scores    map[string]engine.JobScore // key: jobID + "\x00" + userID
	behaviors map[string]engine.UserBehaviorPattern
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles:  make(map[string]engine.UserProfile),
		scores:    make(map[string]engine.JobScore),
		behaviors: make(map[string]engine.UserBehaviorPattern),
	}
}

func scoreKey(jobID, userID string) string {
	return jobID + "\x00" + userID
}

func (m *Memory) GetProfile(_ context.Context, userID string) (*engine.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", userID, engine.ErrNotFound)
	}
	return &p, nil
}

func (m *Memory) PutProfile(_ context.Context, p *engine.UserProfile) error {
	if p == nil || p.UserID == "" {
		return fmt.Errorf("store: profile requires a user id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = *p
	return nil
}

func (m *Memory) UpsertScore(_ context.Context, s *engine.JobScore) error {
	if s == nil || s.JobID == "" || s.UserID == "" {
		return fmt.Errorf("store: score requires job and user ids")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[scoreKey(s.JobID, s.UserID)] = *s
	return nil
}

func (m *Memory) GetScore(_ context.Context, jobID, userID string) (*engine.JobScore, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scores[scoreKey(jobID, userID)]
	if !ok {
		return nil, fmt.Errorf("score %q/%q: %w", jobID, userID, engine.ErrNotFound)
	}
	return &s, nil
}

func (m *Memory) GetBehavior(_ context.Context, userID string) (*engine.UserBehaviorPattern, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.behaviors[userID]
	if !ok {
		return nil, fmt.Errorf("behavior %q: %w", userID, engine.ErrNotFound)
	}
	return &b, nil
}

func (m *Memory) PutBehavior(_ context.Context, b *engine.UserBehaviorPattern) error {
	if b == nil || b.UserID == "" {
		return fmt.Errorf("store: behavior requires a user id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.behaviors[b.UserID] = *b
	return nil
}
