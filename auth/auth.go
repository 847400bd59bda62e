// Package auth 在 context 中携带当前用户。
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthenticated 表示请求没有携带用户身份。
var ErrUnauthenticated = errors.New("user is not authenticated")

// User 是上游认证网关给出的身份。
type User struct {
	ID    string
	Email string
}

type ctxKey struct{}

// WithUser 返回携带 user 的 context。
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// FromContext 取出当前用户；没有用户或 ID 为空时返回 ErrUnauthenticated。
func FromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKey{}).(User)
	if !ok || strings.TrimSpace(user.ID) == "" {
		return User{}, ErrUnauthenticated
	}
	return user, nil
}
