package auth

import (
	"context"
	"errors"
	"testing"
)

func TestFromContext(t *testing.T) {
	ctx := WithUser(context.Background(), User{ID: "u1", Email: "ana@example.com"})
	u, err := FromContext(ctx)
	if err != nil || u.ID != "u1" {
		t.Fatalf("应取回用户: %+v %v", u, err)
	}
}

func TestFromContextRequiresUser(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("缺少用户应返回 ErrUnauthenticated: %v", err)
	}
	ctx := WithUser(context.Background(), User{ID: "  "})
	if _, err := FromContext(ctx); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("空 ID 应视为未登录: %v", err)
	}
}
