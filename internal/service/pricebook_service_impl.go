package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/woutmeijer/bouwkost/internal/db"
	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
)

type priceBookService struct {
	entries repository.PriceBookRepo
	uow     db.UnitOfWork
}

func NewPriceBookService(entries repository.PriceBookRepo, uow db.UnitOfWork) PriceBookService {
	return &priceBookService{entries: entries, uow: uow}
}

func (s *priceBookService) Add(ctx context.Context, e *domain.PriceBookEntry) error {
	if e.Code == "" {
		return fmt.Errorf("price book entry needs a code")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Kind == "" {
		e.Kind = domain.QuantityCount
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.entries.Create(ctx, e)
}

func (s *priceBookService) GetByID(ctx context.Context, id string) (*domain.PriceBookEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *priceBookService) FindByCode(ctx context.Context, code string) (*domain.PriceBookEntry, error) {
	return s.entries.FindByCode(ctx, code)
}

func (s *priceBookService) List(ctx context.Context) ([]*domain.PriceBookEntry, error) {
	return s.entries.List(ctx)
}

func (s *priceBookService) ListByCodePrefix(ctx context.Context, prefix string) ([]*domain.PriceBookEntry, error) {
	return s.entries.ListByCodePrefix(ctx, prefix)
}

func (s *priceBookService) Update(ctx context.Context, e *domain.PriceBookEntry) error {
	e.UpdatedAt = time.Now().UTC()
	return s.entries.Update(ctx, e)
}

func (s *priceBookService) Remove(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}

func (s *priceBookService) Import(ctx context.Context, entries []*domain.PriceBookEntry) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePriceBookRepo(tx)
		now := time.Now().UTC()
		for _, e := range entries {
			if e.Code == "" {
				return fmt.Errorf("price book entry %q needs a code", e.Name)
			}
			if e.ID == "" {
				e.ID = uuid.New().String()
			}
			if e.Kind == "" {
				e.Kind = domain.QuantityCount
			}
			e.CreatedAt = now
			e.UpdatedAt = now
			if err := repo.Create(ctx, e); err != nil {
				return fmt.Errorf("importing entry %q: %w", e.Code, err)
			}
		}
		return nil
	})
}
