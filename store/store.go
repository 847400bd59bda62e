// Package store 按用户保存简历记录。
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ByLCY/curriculo/resume"
)

// ErrNotFound 表示记录不存在。
var ErrNotFound = errors.New("resume not found")

// PersistenceError 表示存储操作失败。
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Entry 是一条已保存的简历。
type Entry struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Record    resume.Record `json:"record"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Store 是简历的持久化接口。所有失败都以 *PersistenceError 返回。
type Store interface {
	Save(ctx context.Context, userID string, rec *resume.Record) (string, error)
	List(ctx context.Context, userID string) ([]Entry, error)
	Get(ctx context.Context, id string) (*Entry, error)
	Delete(ctx context.Context, id string) error
}

// SortNewestFirst 按创建时间倒序排列，时间相同时按 ID 排列保证稳定。
func SortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})
}
