package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ByLCY/curriculo/resume"
)

// MemoryStore 把记录保存在内存中，用于 CLI 与测试。
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	// Now 决定创建时间，默认 time.Now。
	Now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]Entry{}, Now: time.Now}
}

func (m *MemoryStore) Save(ctx context.Context, userID string, rec *resume.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &PersistenceError{Op: "save", Err: err}
	}
	if rec == nil {
		return "", &PersistenceError{Op: "save", Err: errors.New("record is nil")}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = map[string]Entry{}
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	id := uuid.NewString()
	m.entries[id] = Entry{ID: id, UserID: userID, Record: copyRecord(rec), CreatedAt: now()}
	return id, nil
}

func (m *MemoryStore) List(ctx context.Context, userID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	m.mu.Lock()
	var out []Entry
	for _, e := range m.entries {
		if e.UserID == userID {
			e.Record = copyRecord(&e.Record)
			out = append(out, e)
		}
	}
	m.mu.Unlock()
	SortNewestFirst(out)
	return out, nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &PersistenceError{Op: "get", Err: err}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	if !ok {
		return nil, &PersistenceError{Op: "get", Err: ErrNotFound}
	}
	e.Record = copyRecord(&e.Record)
	return &e, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return &PersistenceError{Op: "delete", Err: ErrNotFound}
	}
	delete(m.entries, id)
	return nil
}

// copyRecord 复制照片字节，避免调用方修改已保存的数据。
func copyRecord(rec *resume.Record) resume.Record {
	out := *rec
	if rec.Photo != nil {
		out.Photo = append(resume.Photo(nil), rec.Photo...)
	}
	return out
}
