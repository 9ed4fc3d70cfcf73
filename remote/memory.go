package remote

import (
	"context"
	"fmt"
	"maps"
	"sync"
)

// Memory is an in-process Store used by tests and local development. Its
// availability can be toggled to simulate outages, and it counts calls so
// tests can assert how often the remote was actually hit.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]any
	order       map[string][]string // insertion order per collection
	nextID      int
	available   bool
	calls       int
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]map[string]any),
		order:       make(map[string][]string),
		available:   true,
	}
}

// SetAvailable toggles simulated connectivity to the store.
func (m *Memory) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// Calls returns how many store operations were attempted, including ones
// rejected for unavailability.
func (m *Memory) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Len returns the number of documents in a collection.
func (m *Memory) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func (m *Memory) begin() error {
	m.calls++
	if !m.available {
		return ErrUnavailable
	}
	return nil
}

func (m *Memory) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return "", err
	}

	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]any)
	}

	m.nextID++
	id := fmt.Sprintf("doc-%04d", m.nextID)
	doc := maps.Clone(fields)
	doc["id"] = id
	m.collections[collection][id] = doc
	m.order[collection] = append(m.order[collection], id)

	return id, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return maps.Clone(doc), nil
}

func (m *Memory) List(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return nil, err
	}

	var docs []Document
	for _, id := range m.order[collection] {
		doc, ok := m.collections[collection][id]
		if !ok {
			continue // deleted
		}
		docs = append(docs, Document{ID: id, Fields: maps.Clone(doc)})
	}
	return docs, nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return err
	}

	doc, ok := m.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, v := range fields {
		doc[key] = v
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(); err != nil {
		return err
	}

	if _, ok := m.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.collections[collection], id)
	return nil
}
