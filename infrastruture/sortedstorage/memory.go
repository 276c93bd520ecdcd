// Package sortedstorage keeps bounded, time ordered run histories per board.
package sortedstorage

import (
	"context"
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// MemoryRunLog is the in-process counterpart of RedisRunLog.
type MemoryRunLog struct {
	runs     map[uuid.UUID][]dmn.RunSummary // oldest first
	capacity int
	sync.Mutex
}

var _ i.RunHistory = &MemoryRunLog{}

// NewMemoryRunLog creates a MemoryRunLog keeping capacity summaries per board.
func NewMemoryRunLog(capacity int) *MemoryRunLog {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryRunLog{
		runs:     make(map[uuid.UUID][]dmn.RunSummary),
		capacity: capacity,
	}
}

// Record implements i.RunHistory.
func (m *MemoryRunLog) Record(_ context.Context, boardID uuid.UUID, summary dmn.RunSummary) error {
	m.Lock()
	defer m.Unlock()

	runs := append(m.runs[boardID], summary)
	sort.SliceStable(runs, func(a, b int) bool { return runs[a].CreatedAt.Before(runs[b].CreatedAt) })
	if len(runs) > m.capacity {
		runs = runs[len(runs)-m.capacity:]
	}
	m.runs[boardID] = runs
	return nil
}

// Recent implements i.RunHistory.
func (m *MemoryRunLog) Recent(_ context.Context, boardID uuid.UUID, n int64) ([]dmn.RunSummary, error) {
	m.Lock()
	defer m.Unlock()

	runs := m.runs[boardID]
	out := make([]dmn.RunSummary, 0, min(int64(len(runs)), max(n, 0)))
	for k := len(runs) - 1; k >= 0 && int64(len(out)) < n; k-- {
		out = append(out, runs[k])
	}
	return out, nil
}
