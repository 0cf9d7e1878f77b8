package cas

import (
	"bytes"
	"sync"
)

// MemoryCAS keeps every entry in memory. Colliding items share a bucket.
type MemoryCAS struct {
	mu   sync.RWMutex
	data map[Hash][][]byte
	size int
}

func NewMemoryCAS() *MemoryCAS {
	return &MemoryCAS{
		data: make(map[Hash][][]byte),
	}
}

func (m *MemoryCAS) Put(item Hashable) (Hash, error) {
	h, data, err := HashOf(item)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, stored := range m.data[h] {
		if bytes.Equal(stored, data) {
			return h, nil
		}
	}
	m.data[h] = append(m.data[h], data)
	m.size++
	return h, nil
}

func (m *MemoryCAS) Has(hash Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[hash]
	return ok
}

func (m *MemoryCAS) Contains(item Hashable) (bool, error) {
	h, data, err := HashOf(item)
	if err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, stored := range m.data[h] {
		if bytes.Equal(stored, data) {
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of distinct items stored.
func (m *MemoryCAS) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}
