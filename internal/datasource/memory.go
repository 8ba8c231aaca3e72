package datasource

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/zechsoft/new-trust-sub003/internal/listresource"
)

// Memory serves a seeded, in-process list. It stands in for pages whose
// backend endpoint does not exist yet.
type Memory[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) string
	setID func(*T, string)
}

func NewMemory[T any](seed []T, id func(T) string, setID func(*T, string)) *Memory[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Memory[T]{items: items, id: id, setID: setID}
}

func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory[T]) Create(ctx context.Context, item T) (T, error) {
	if err := ctx.Err(); err != nil {
		return item, err
	}
	if m.id(item) == "" && m.setID != nil {
		m.setID(&item, uuid.NewString())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return item, nil
}

func (m *Memory[T]) Update(ctx context.Context, item T) (T, error) {
	if err := ctx.Err(); err != nil {
		return item, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.id(m.items[i]) == m.id(item) {
			m.items[i] = item
			return item, nil
		}
	}
	return item, listresource.ErrNotFound
}

func (m *Memory[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.id(m.items[i]) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return listresource.ErrNotFound
}
