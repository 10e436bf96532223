package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
	"github.com/woutmeijer/bouwkost/internal/repository"
	"github.com/woutmeijer/bouwkost/internal/service"
	"github.com/woutmeijer/bouwkost/internal/testutil"
)

func newSession(t *testing.T) (service.ScheduleService, repository.RecentFileRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	recents := repository.NewSQLiteRecentFileRepo(database)
	return service.NewScheduleService(recents), recents
}

func TestScheduleService_NewStartsModified(t *testing.T) {
	svc, _ := newSession(t)

	schedule := svc.New("Nieuwbouw woning")

	assert.Equal(t, "Nieuwbouw woning", schedule.Name)
	assert.True(t, svc.IsModified())
	assert.Empty(t, svc.Path())
}

func TestScheduleService_AddChapterAutoNumbers(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")

	first, err := svc.AddChapter("Grondwerk", "", "")
	require.NoError(t, err)
	second, err := svc.AddChapter("Fundering", "", "")
	require.NoError(t, err)

	assert.Equal(t, "01", first.Identification)
	assert.Equal(t, "02", second.Identification)
}

func TestScheduleService_AddChapterWithoutSchedule(t *testing.T) {
	svc, _ := newSession(t)

	_, err := svc.AddChapter("Grondwerk", "", "")

	assert.Error(t, err)
}

func TestScheduleService_AddCostItemNeedsParentOrSchedule(t *testing.T) {
	svc, _ := newSession(t)

	_, err := svc.AddCostItem(nil, "Heipalen", "02.01")
	assert.Error(t, err)

	svc.New("Begroting")
	item, err := svc.AddCostItem(nil, "Heipalen", "02.01")
	require.NoError(t, err)
	assert.Same(t, svc.Schedule(), item.Schedule)
}

func TestScheduleService_AddCostItemUnderParent(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	chapter, err := svc.AddChapter("Grondwerk", "", "")
	require.NoError(t, err)

	item, err := svc.AddCostItem(chapter, "Ontgraven", "01.01")

	require.NoError(t, err)
	assert.Same(t, chapter, item.Parent)
	assert.True(t, chapter.IsChapter())
}

func TestScheduleService_AddTextRow(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	chapter, _ := svc.AddChapter("Grondwerk", "", "")

	row, err := svc.AddTextRow(chapter, "Inclusief afvoer")

	require.NoError(t, err)
	assert.True(t, row.IsTextOnly)
	assert.Zero(t, row.Subtotal())
}

func TestScheduleService_InsertCopyDetached(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	chapter, _ := svc.AddChapter("Grondwerk", "", "")
	original, _ := svc.AddCostItem(chapter, "Ontgraven", "01.01")
	original.Value = domain.CostValue{UnitPrice: 12.50, Quantity: 85, Kind: domain.QuantityVolume}

	clone, err := svc.InsertCopy(chapter, original)

	require.NoError(t, err)
	assert.NotSame(t, original, clone)
	assert.InDelta(t, original.Subtotal(), clone.Subtotal(), 0.001)
	clone.Value.Quantity = 1
	assert.InDelta(t, 1062.50, original.Subtotal(), 0.001)
}

func TestScheduleService_InsertCopyNil(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")

	_, err := svc.InsertCopy(nil, nil)

	assert.Error(t, err)
}

func TestScheduleService_RemoveItem(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	chapter, _ := svc.AddChapter("Grondwerk", "", "")
	item, _ := svc.AddCostItem(chapter, "Ontgraven", "01.01")

	assert.True(t, svc.RemoveItem(item))
	assert.False(t, svc.RemoveItem(item))
	assert.Empty(t, chapter.Children)

	assert.True(t, svc.RemoveItem(chapter))
	assert.Empty(t, svc.Schedule().Items)
}

func TestScheduleService_MoveRootItems(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	a, _ := svc.AddChapter("Grondwerk", "", "")
	b, _ := svc.AddChapter("Fundering", "", "")

	assert.False(t, svc.MoveItem(a, true))
	assert.True(t, svc.MoveItem(b, true))
	assert.Same(t, b, svc.Schedule().Items[0])
	assert.False(t, svc.MoveItem(b, true))
}

func TestScheduleService_RenumberAfterRemoval(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")
	a, _ := svc.AddChapter("Grondwerk", "", "")
	svc.AddChapter("Fundering", "", "")
	svc.RemoveItem(a)

	svc.Renumber()

	assert.Equal(t, "01", svc.Schedule().Items[0].Identification)
}

func TestScheduleService_SaveOpenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, recents := newSession(t)
	svc.New("Begroting")
	chapter, _ := svc.AddChapter("Grondwerk", "", "")
	item, _ := svc.AddCostItem(chapter, "Ontgraven", "01.01")
	item.Value = domain.CostValue{UnitPrice: 12.50, Quantity: 85, Kind: domain.QuantityVolume}
	svc.SetProjectData(ifcdoc.ProjectData{ProjectName: "Nieuwbouw", ClientName: "Jansen"})

	path := filepath.Join(t.TempDir(), "begroting.ifcjson")
	written, err := svc.Save(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)
	assert.False(t, svc.IsModified())

	reopened, err := svc.Open(ctx, written)
	require.NoError(t, err)
	assert.InDelta(t, 1062.50, reopened.Subtotal(), 0.001)
	assert.Equal(t, "Nieuwbouw", svc.ProjectData().ProjectName)

	files, err := recents.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, written, files[0].Path)
}

func TestScheduleService_SaveWithoutSchedule(t *testing.T) {
	svc, _ := newSession(t)

	_, err := svc.Save(context.Background(), "x.ifcjson")

	assert.Error(t, err)
}

func TestScheduleService_CloseDropsEverything(t *testing.T) {
	svc, _ := newSession(t)
	svc.New("Begroting")

	svc.Close()

	assert.Nil(t, svc.Schedule())
	assert.Empty(t, svc.Path())
	assert.False(t, svc.IsModified())
}
