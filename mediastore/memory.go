package mediastore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory keeps assets in process. It backs local development and tests.
type Memory struct {
	mu     sync.RWMutex
	assets map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{assets: make(map[string][]byte)}
}

func (m *Memory) Upload(ctx context.Context, payload string, preset Preset) (*Asset, error) {
	data, err := decodeAndPrepare(payload, preset)
	if err != nil {
		return nil, err
	}
	key := objectKey(preset, uuid.NewString())

	m.mu.Lock()
	m.assets[key] = data
	m.mu.Unlock()

	return &Asset{ID: key, URL: "memory://" + key}, nil
}

func (m *Memory) Delete(ctx context.Context, assetID string) error {
	m.mu.Lock()
	delete(m.assets, assetID)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Has(assetID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.assets[assetID]
	return ok
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.assets)
}
