package service

import (
	"context"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
)

type recentFileService struct {
	recents repository.RecentFileRepo
}

func NewRecentFileService(recents repository.RecentFileRepo) RecentFileService {
	return &recentFileService{recents: recents}
}

func (s *recentFileService) List(ctx context.Context, limit int) ([]*domain.RecentFile, error) {
	if limit <= 0 {
		limit = recentKeep
	}
	return s.recents.List(ctx, limit)
}

func (s *recentFileService) Forget(ctx context.Context, path string) error {
	return s.recents.Remove(ctx, path)
}
