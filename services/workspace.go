package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"price_tag_app_go/models"
	"price_tag_app_go/services/layout"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrTagIndexRange     = errors.New("tag index out of range")
)

// workspace is the mutable editor state of one browser session
type workspace struct {
	id          string
	records     []models.TagRecord
	mode        models.LayoutMode
	activeIndex int
	lastUsed    time.Time
}

func (w *workspace) snapshot() WorkspaceSnapshot {
	records := make([]models.TagRecord, len(w.records))
	copy(records, w.records)

	active := w.activeIndex
	if last := w.mode.VisibleCount() - 1; active > last {
		active = last
	}

	return WorkspaceSnapshot{
		ID:          w.id,
		Records:     records,
		Mode:        w.mode,
		ActiveIndex: active,
	}
}

// WorkspaceSnapshot is an immutable copy of a workspace handed to renderers
type WorkspaceSnapshot struct {
	ID          string
	Records     []models.TagRecord
	Mode        models.LayoutMode
	ActiveIndex int // already clamped to the visible tags
}

// ActiveRecord is the record the editor panel is bound to
func (s WorkspaceSnapshot) ActiveRecord() models.TagRecord {
	return s.Records[s.ActiveIndex]
}

// Compose lays out the snapshot's visible records
func (s WorkspaceSnapshot) Compose() (layout.Composition, error) {
	return layout.Compose(s.Mode, s.Records)
}

// WorkspaceStore owns every editor workspace. It is the only place editor
// state is mutated; everything downstream works on snapshots.
type WorkspaceStore struct {
	mu         sync.RWMutex
	workspaces map[string]*workspace
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewWorkspaceStore creates an empty store whose idle workspaces expire after ttl
func NewWorkspaceStore(ttl time.Duration, logger *zap.Logger) *WorkspaceStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkspaceStore{
		workspaces: make(map[string]*workspace),
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
	}
}

// Create opens a workspace with the default tag pool in single mode
func (s *WorkspaceStore) Create() WorkspaceSnapshot {
	w := &workspace{
		id:       uuid.New().String(),
		records:  models.NewDefaultTagPool(),
		mode:     models.LayoutSingle,
		lastUsed: s.now(),
	}

	s.mu.Lock()
	s.workspaces[w.id] = w
	count := len(s.workspaces)
	s.mu.Unlock()

	s.logger.Debug("Workspace created", zap.String("workspace_id", w.id), zap.Int("open_workspaces", count))
	return w.snapshot()
}

// Get returns a snapshot of workspace id
func (s *WorkspaceStore) Get(id string) (WorkspaceSnapshot, error) {
	var snap WorkspaceSnapshot
	err := s.update(id, func(w *workspace) error {
		snap = w.snapshot()
		return nil
	})
	return snap, err
}

// GetOrCreate returns workspace id, or a fresh workspace when it is unknown
// or expired. created reports which happened.
func (s *WorkspaceStore) GetOrCreate(id string) (snap WorkspaceSnapshot, created bool) {
	if id != "" {
		if snap, err := s.Get(id); err == nil {
			return snap, false
		}
	}
	return s.Create(), true
}

// ReplaceRecord stores record at index as a whole. The record keeps the
// identity of the slot it replaces; every other field comes from record.
func (s *WorkspaceStore) ReplaceRecord(id string, index int, record models.TagRecord) (WorkspaceSnapshot, error) {
	var snap WorkspaceSnapshot
	err := s.update(id, func(w *workspace) error {
		if index < 0 || index >= len(w.records) {
			return fmt.Errorf("%w: %d", ErrTagIndexRange, index)
		}
		record.ID = w.records[index].ID
		w.records[index] = record
		snap = w.snapshot()
		return nil
	})
	return snap, err
}

// ReplaceRecords applies ReplaceRecord to records[0..n) in order. Extra
// records beyond the pool size are rejected.
func (s *WorkspaceStore) ReplaceRecords(id string, records []models.TagRecord) (WorkspaceSnapshot, error) {
	var snap WorkspaceSnapshot
	err := s.update(id, func(w *workspace) error {
		if len(records) > len(w.records) {
			return fmt.Errorf("%w: %d records for a pool of %d", ErrTagIndexRange, len(records), len(w.records))
		}
		for i, record := range records {
			record.ID = w.records[i].ID
			w.records[i] = record
		}
		snap = w.snapshot()
		return nil
	})
	return snap, err
}

// SetMode changes the layout mode. Record contents are untouched.
func (s *WorkspaceStore) SetMode(id string, mode models.LayoutMode) (WorkspaceSnapshot, error) {
	var snap WorkspaceSnapshot
	err := s.update(id, func(w *workspace) error {
		w.mode = mode
		snap = w.snapshot()
		return nil
	})
	return snap, err
}

// SetActive selects the editor tab. The stored tab survives mode changes;
// snapshots clamp it to the visible count.
func (s *WorkspaceStore) SetActive(id string, index int) (WorkspaceSnapshot, error) {
	var snap WorkspaceSnapshot
	err := s.update(id, func(w *workspace) error {
		if index < 0 || index >= len(w.records) {
			return fmt.Errorf("%w: %d", ErrTagIndexRange, index)
		}
		w.activeIndex = index
		snap = w.snapshot()
		return nil
	})
	return snap, err
}

// Len returns the number of open workspaces
func (s *WorkspaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

// CleanupExpired drops workspaces idle for longer than the TTL
func (s *WorkspaceStore) CleanupExpired() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, w := range s.workspaces {
		if w.lastUsed.Before(cutoff) {
			delete(s.workspaces, id)
			removed++
		}
	}
	return removed
}

// StartCleanup runs CleanupExpired every interval until ctx is done
func (s *WorkspaceStore) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := s.CleanupExpired(); removed > 0 {
					s.logger.Info("Expired workspaces removed", zap.Int("removed", removed), zap.Int("open_workspaces", s.Len()))
				}
			}
		}
	}()
}

func (s *WorkspaceStore) update(id string, fn func(w *workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workspaces[id]
	if !ok || (s.ttl > 0 && w.lastUsed.Before(s.now().Add(-s.ttl))) {
		return ErrWorkspaceNotFound
	}
	w.lastUsed = s.now()
	return fn(w)
}
