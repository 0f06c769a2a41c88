package memory

import (
	"context"
	"testing"
	"time"

	"github.com/upmon/upmon/internal/domain"
)

func TestMemoryStore_AddAndListChecks(t *testing.T) {
	ctx := context.Background()
	s := New()

	c := &domain.Check{
		Name:            "example",
		URL:             "https://example.com",
		IntervalSeconds: 30,
		IsActive:        true,
	}
	if err := s.Add(ctx, c); err != nil {
		t.Fatalf("Add check: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected check ID to be assigned")
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 check, got %d", len(all))
	}
	if all[0].LastStatus != domain.StatusUnknown {
		t.Fatalf("fresh check should be UNKNOWN, got %s", all[0].LastStatus)
	}
}

func TestMemoryStore_ListActiveExcludesInactive(t *testing.T) {
	ctx := context.Background()
	s := New()

	_ = s.Add(ctx, &domain.Check{Name: "on", URL: "https://a", IsActive: true})
	_ = s.Add(ctx, &domain.Check{Name: "off", URL: "https://b", IsActive: false})

	active, err := s.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].Name != "on" {
		t.Fatalf("expected only the active check, got %+v", active)
	}
}

func TestMemoryStore_AppendAndListByCheck_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()

	c := &domain.Check{Name: "h", URL: "https://h", IsActive: true}
	_ = s.Add(ctx, c)

	t0 := time.Now().UTC().Add(-time.Minute)
	t1 := time.Now().UTC()
	_ = s.Append(ctx, &domain.CheckResult{CheckID: c.ID, Status: domain.StatusDown, CheckedAt: t0})
	_ = s.Append(ctx, &domain.CheckResult{CheckID: c.ID, Status: domain.StatusUp, CheckedAt: t1})

	rows, err := s.ListByCheck(ctx, c.ID)
	if err != nil {
		t.Fatalf("ListByCheck: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Status != domain.StatusUp || rows[1].Status != domain.StatusDown {
		t.Fatalf("expected newest-first order, got %+v", rows)
	}

	last, err := s.LastByCheck(ctx, c.ID)
	if err != nil {
		t.Fatalf("LastByCheck: %v", err)
	}
	if last == nil || last.Status != domain.StatusUp {
		t.Fatalf("unexpected last result: %+v", last)
	}
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := New()

	c := &domain.Check{Name: "h", URL: "https://h", IsActive: true}
	_ = s.Add(ctx, c)

	now := time.Now().UTC()
	if err := s.UpdateStatus(ctx, c.ID, domain.StatusDown, now); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, _ := s.Get(ctx, c.ID)
	if got.LastStatus != domain.StatusDown {
		t.Fatalf("want DOWN, got %s", got.LastStatus)
	}
	if got.LastCheckedAt == nil || !got.LastCheckedAt.Equal(now) {
		t.Fatalf("last_checked_at not updated: %+v", got.LastCheckedAt)
	}
}
