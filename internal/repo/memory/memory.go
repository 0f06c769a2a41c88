package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/upmon/upmon/internal/domain"
	"github.com/upmon/upmon/internal/repo"
)

// Store keeps checks and results in process memory. Used by tests and for
// DB-less dev runs; nothing survives a restart.
type Store struct {
	mu      sync.RWMutex
	checks  map[domain.CheckID]*domain.Check
	results []*domain.CheckResult
	nextID  int64
}

var _ repo.CheckStore = (*Store)(nil)
var _ repo.ResultStore = (*Store)(nil)

func New() *Store {
	return &Store{
		checks:  make(map[domain.CheckID]*domain.Check),
		results: make([]*domain.CheckResult, 0, 128),
	}
}

func (m *Store) Add(ctx context.Context, c *domain.Check) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = domain.CheckID(uuid.NewString())
	}
	if c.LastStatus == "" {
		c.LastStatus = domain.StatusUnknown
	}
	cp := *c
	m.checks[c.ID] = &cp
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.Check, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Check, 0, len(m.checks))
	for _, c := range m.checks {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Store) ListActive(ctx context.Context) ([]domain.Check, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Check, 0, len(m.checks))
	for _, c := range m.checks {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Store) Get(ctx context.Context, id domain.CheckID) (*domain.Check, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.checks[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *Store) UpdateStatus(ctx context.Context, id domain.CheckID, status domain.Status, checkedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.checks[id]
	if !ok {
		return nil
	}
	c.LastStatus = status
	ts := checkedAt
	c.LastCheckedAt = &ts
	return nil
}

func (m *Store) Append(ctx context.Context, r *domain.CheckResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	cp := *r
	cp.ID = m.nextID
	m.results = append(m.results, &cp)
	r.ID = cp.ID
	return nil
}

func (m *Store) ListByCheck(ctx context.Context, id domain.CheckID) ([]domain.CheckResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.CheckResult
	for _, r := range m.results {
		if r.CheckID == id {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CheckedAt.Equal(out[j].CheckedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CheckedAt.After(out[j].CheckedAt)
	})
	return out, nil
}

func (m *Store) LastByCheck(ctx context.Context, id domain.CheckID) (*domain.CheckResult, error) {
	rows, err := m.ListByCheck(ctx, id)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	cp := rows[0]
	return &cp, nil
}
