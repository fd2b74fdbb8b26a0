package tabular

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It backs unit tests and the zero-config
// demo mode of the server. Rows are deep-copied on the way in and out so a
// caller can never mutate stored state through a retained slice.
type Memory struct {
	mu   sync.Mutex
	rows [][]string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ReadAllRows(_ context.Context) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copiarFilas(m.rows), nil
}

func (m *Memory) WriteRows(_ context.Context, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = copiarFilas(rows)
	return nil
}

func (m *Memory) AppendRows(_ context.Context, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, copiarFilas(rows)...)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = nil
	return nil
}

func copiarFilas(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		fila := make([]string, len(r))
		copy(fila, r)
		out[i] = fila
	}
	return out
}
