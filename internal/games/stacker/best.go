package stacker

import "sync"

// BestScoreKey is the global key the best score is persisted under.
const BestScoreKey = "towerGame.bestScore"

// BestScoreStore persists the single best-score integer across sessions.
type BestScoreStore interface {
	LoadBest(key string) (int, error)
	SaveBest(key string, value int) error
}

// MemoryBestStore keeps best scores in process memory.
// Like the SQLite store, it never lowers a stored value.
type MemoryBestStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryBestStore creates an empty in-memory store.
func NewMemoryBestStore() *MemoryBestStore {
	return &MemoryBestStore{values: make(map[string]int)}
}

// LoadBest returns the stored value, or 0 if none exists.
func (m *MemoryBestStore) LoadBest(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// SaveBest stores value if it is higher than the current one.
func (m *MemoryBestStore) SaveBest(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value > m.values[key] {
		m.values[key] = value
	}
	return nil
}

var _ BestScoreStore = (*MemoryBestStore)(nil)
