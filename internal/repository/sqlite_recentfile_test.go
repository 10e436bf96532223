package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/repository"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func touchAt(t *testing.T, repo repository.RecentFileRepo, path, name string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Touch(context.Background(), &domain.RecentFile{
		Path:         path,
		ScheduleName: name,
		LastOpenedAt: at,
	}))
}

func TestRecentFileRepo_TouchAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecentFileRepo(database)
	now := time.Now().UTC().Truncate(time.Second)

	touchAt(t, repo, "/tmp/a.ifcjson", "A", now.Add(-2*time.Hour))
	touchAt(t, repo, "/tmp/b.ifcjson", "B", now)

	files, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/tmp/b.ifcjson", files[0].Path, "most recent first")
	assert.Equal(t, "B", files[0].ScheduleName)
}

func TestRecentFileRepo_TouchUpdatesExisting(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecentFileRepo(database)
	now := time.Now().UTC().Truncate(time.Second)

	touchAt(t, repo, "/tmp/a.ifcjson", "Oud", now.Add(-time.Hour))
	touchAt(t, repo, "/tmp/a.ifcjson", "Nieuw", now)

	files, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Nieuw", files[0].ScheduleName)
}

func TestRecentFileRepo_Remove(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecentFileRepo(database)

	touchAt(t, repo, "/tmp/a.ifcjson", "A", time.Now().UTC())
	require.NoError(t, repo.Remove(context.Background(), "/tmp/a.ifcjson"))

	files, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRecentFileRepo_Prune(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecentFileRepo(database)
	now := time.Now().UTC().Truncate(time.Second)

	for i, path := range []string{"/tmp/a", "/tmp/b", "/tmp/c", "/tmp/d"} {
		touchAt(t, repo, path, "", now.Add(time.Duration(i)*time.Minute))
	}
	require.NoError(t, repo.Prune(context.Background(), 2))

	files, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "/tmp/d", files[0].Path)
	assert.Equal(t, "/tmp/c", files[1].Path)
}
