package database

import (
	"fmt"
	"sort"
	"sync"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

// Memory is an in-memory Database. It exists so the tracker, reconciler and
// query service can be exercised without postgres; the semantics match the
// Postgres implementation, with a single lock standing in for row locks.
type Memory struct {
	mu    sync.Mutex
	tasks map[string]*structs.TaskRecord
}

func NewMemory() *Memory {
	return &Memory{tasks: map[string]*structs.TaskRecord{}}
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) InsertTask(t *structs.TaskRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[t.ID]; ok {
		return fmt.Errorf("%w %s", ie.ErrDuplicateTask, t.ID)
	}
	m.tasks[t.ID] = t.Copy()
	return nil
}

func (m *Memory) Task(id string) (*structs.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w %s", ie.ErrNotFound, id)
	}
	return t.Copy(), nil
}

func (m *Memory) UpdateTask(id string, mutate func(t *structs.TaskRecord) error) (*structs.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w %s", ie.ErrNotFound, id)
	}
	next := t.Copy()
	if err := mutate(next); err != nil {
		return nil, err
	}
	m.tasks[id] = next
	return next.Copy(), nil
}

func (m *Memory) Tasks(q *structs.Query) ([]*structs.TaskRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := []*structs.TaskRecord{}
	for _, t := range m.tasks {
		if matches(q, t, true) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt != matched[j].CreatedAt {
			return matched[i].CreatedAt > matched[j].CreatedAt
		}
		return matched[i].ID < matched[j].ID
	})

	out := []*structs.TaskRecord{}
	for i := q.Offset; i < len(matched) && len(out) < q.Limit; i++ {
		out = append(out, matched[i].Copy())
	}
	return out, nil
}

func (m *Memory) TaskCounts(q *structs.Query) (map[structs.Status]int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := map[structs.Status]int64{}
	var total int64
	for _, t := range m.tasks {
		if !matches(q, t, false) {
			continue
		}
		counts[t.Status]++
		total++
	}
	return counts, total, nil
}

func matches(q *structs.Query, t *structs.TaskRecord, withStatuses bool) bool {
	if q.ProjectID != "" && t.ProjectID != q.ProjectID {
		return false
	}
	if q.TaskIDs != nil && !containsString(q.TaskIDs, t.ID) {
		return false
	}
	if q.Types != nil && !containsString(q.Types, t.Type) {
		return false
	}
	if withStatuses && q.Statuses != nil {
		found := false
		for _, s := range q.Statuses {
			if t.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsString(in []string, want string) bool {
	for _, s := range in {
		if s == want {
			return true
		}
	}
	return false
}
