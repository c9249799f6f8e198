package bank

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned for unknown bank ids.
var ErrNotFound = errors.New("bank not found")

// Provider supplies question sets to session adapters. Implementations must
// return snapshots the caller can hold for a session's lifetime.
type Provider interface {
	PutBank(ctx context.Context, b Bank) error
	GetBank(ctx context.Context, id string) (Bank, error)
	ListBanks(ctx context.Context) ([]Summary, error)
}

type memoryStore struct {
	mu    sync.RWMutex
	banks map[string]Bank
}

// NewInMemoryStore returns a Provider for tests and single-process dev runs.
func NewInMemoryStore() Provider {
	return &memoryStore{banks: map[string]Bank{}}
}

func (m *memoryStore) PutBank(_ context.Context, b Bank) error {
	if err := b.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks[b.ID] = b
	return nil
}

func (m *memoryStore) GetBank(_ context.Context, id string) (Bank, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.banks[id]
	if !ok {
		return Bank{}, ErrNotFound
	}
	return b, nil
}

func (m *memoryStore) ListBanks(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Summary, 0, len(m.banks))
	for _, b := range m.banks {
		out = append(out, b.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
