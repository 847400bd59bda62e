package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/ByLCY/curriculo/resume"
)

// PostgresStore 把记录保存在 curriculos 表中：记录本体为 JSONB，照片为 BYTEA。
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// Connect 连接数据库并执行迁移。
func Connect(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, &PersistenceError{Op: "connect", Err: err}
	}
	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, &PersistenceError{Op: "migrate", Err: err}
	}
	return NewPostgresStore(pool), nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Close() { s.pool.Close() }

func (s *PostgresStore) Save(ctx context.Context, userID string, rec *resume.Record) (string, error) {
	if rec == nil {
		return "", &PersistenceError{Op: "save", Err: errors.New("record is nil")}
	}
	payload, photo, err := encodeRecord(rec)
	if err != nil {
		return "", &PersistenceError{Op: "save", Err: err}
	}
	var id string
	err = s.pool.QueryRow(ctx,
		`INSERT INTO curriculos (user_id, payload, photo) VALUES ($1, $2, $3) RETURNING id::text`,
		userID, payload, photo,
	).Scan(&id)
	if err != nil {
		return "", &PersistenceError{Op: "save", Err: err}
	}
	return id, nil
}

func (s *PostgresStore) List(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, user_id, payload, photo, created_at FROM curriculos
		 WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, &PersistenceError{Op: "list", Err: err}
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	SortNewestFirst(out)
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*Entry, error) {
	key, err := parseID("get", id)
	if err != nil {
		return nil, err
	}
	row := s.pool.QueryRow(ctx,
		`SELECT id::text, user_id, payload, photo, created_at FROM curriculos WHERE id = $1`, key)
	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &PersistenceError{Op: "get", Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get", Err: err}
	}
	return e, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	key, err := parseID("delete", id)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM curriculos WHERE id = $1`, key)
	if err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &PersistenceError{Op: "delete", Err: ErrNotFound}
	}
	return nil
}

// parseID 把 id 规范化为 UUID 文本，使查询能命中主键索引。不是 UUID 的 id 不可能存在。
func parseID(op, id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", &PersistenceError{Op: op, Err: ErrNotFound}
	}
	return u.String(), nil
}

// encodeRecord 拆出照片，其余字段序列化为 JSON。
func encodeRecord(rec *resume.Record) ([]byte, []byte, error) {
	body := *rec
	body.Photo = nil
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("encode record: %w", err)
	}
	return payload, rec.Photo, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var (
		e         Entry
		payload   []byte
		photo     []byte
		createdAt time.Time
	)
	if err := row.Scan(&e.ID, &e.UserID, &payload, &photo, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &e.Record); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", e.ID, err)
	}
	if len(photo) > 0 {
		e.Record.Photo = resume.Photo(photo)
	}
	e.CreatedAt = createdAt
	return &e, nil
}
