// Package boardstore provides the stores boards live in between requests.
package boardstore

import (
	"context"
	"sync"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// MemoryStore keeps boards in process memory. Boards are stored as layouts so
// a loaded grid never aliases the stored one.
type MemoryStore struct {
	boards map[uuid.UUID]grid.Layout
	locks  map[uuid.UUID]*boardLock
	mu     sync.RWMutex
}

// boardLock is a per-board mutex released from the map once nobody holds or waits for it.
type boardLock struct {
	sync.Mutex
	refs int
}

var _ i.BoardStore = &MemoryStore{}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		boards: make(map[uuid.UUID]grid.Layout),
		locks:  make(map[uuid.UUID]*boardLock),
	}
}

// Load implements i.BoardStore.
func (m *MemoryStore) Load(_ context.Context, id uuid.UUID) (*grid.Grid, error) {
	m.mu.RLock()
	layout, ok := m.boards[id]
	m.mu.RUnlock()
	if !ok {
		return nil, dmn.ErrBoardNotFound
	}

	return grid.FromLayout(layout)
}

// Save implements i.BoardStore.
func (m *MemoryStore) Save(_ context.Context, id uuid.UUID, g *grid.Grid) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boards[id] = g.Layout()
	return nil
}

// Delete implements i.BoardStore.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.boards, id)
	return nil
}

// Lock implements i.BoardStore.
func (m *MemoryStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[id]
	if !ok {
		l = &boardLock{}
		m.locks[id] = l
	}
	l.refs++
	m.mu.Unlock()

	acquired := make(chan struct{})
	go func() {
		l.Lock()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-ctx.Done():
		// The waiter still takes the lock eventually; hand it straight back.
		go func() {
			<-acquired
			m.release(id, l)
		}()
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() { once.Do(func() { m.release(id, l) }) }, nil
}

func (m *MemoryStore) release(id uuid.UUID, l *boardLock) {
	l.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, id)
	}
}
