package repository

import (
	"context"
	"errors"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type PriceBookRepo interface {
	Create(ctx context.Context, e *domain.PriceBookEntry) error
	GetByID(ctx context.Context, id string) (*domain.PriceBookEntry, error)
	FindByCode(ctx context.Context, code string) (*domain.PriceBookEntry, error)
	List(ctx context.Context) ([]*domain.PriceBookEntry, error)
	ListByCodePrefix(ctx context.Context, prefix string) ([]*domain.PriceBookEntry, error)
	Update(ctx context.Context, e *domain.PriceBookEntry) error
	Delete(ctx context.Context, id string) error
}

type RecentFileRepo interface {
	Touch(ctx context.Context, f *domain.RecentFile) error
	List(ctx context.Context, limit int) ([]*domain.RecentFile, error)
	Remove(ctx context.Context, path string) error
	Prune(ctx context.Context, keep int) error
}
