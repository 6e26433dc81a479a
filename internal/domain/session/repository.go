package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session not found")

type Repository interface {
	Create(ctx context.Context, s Session) error
	GetByToken(ctx context.Context, token string) (Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
