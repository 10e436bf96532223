package service

import (
	"context"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
)

// ScheduleService owns the currently open budget document and every
// structural edit on it. All money math stays inside the domain tree;
// this layer only orchestrates document lifecycle and bookkeeping such as
// the modified flag and the recent-file list.
type ScheduleService interface {
	// Lifecycle
	New(name string) *domain.CostSchedule
	NewFrom(schedule *domain.CostSchedule) *domain.CostSchedule
	// Replace swaps the working tree while keeping the document and file
	// path, used when restoring an undo snapshot.
	Replace(schedule *domain.CostSchedule)
	Open(ctx context.Context, path string) (*domain.CostSchedule, error)
	Save(ctx context.Context, path string) (string, error)
	Close()

	// Current state
	Schedule() *domain.CostSchedule
	Path() string
	IsModified() bool
	ProjectData() ifcdoc.ProjectData
	SetProjectData(data ifcdoc.ProjectData)

	// Structural edits
	AddChapter(name, identification, description string) (*domain.CostItem, error)
	AddCostItem(parent *domain.CostItem, name, identification string) (*domain.CostItem, error)
	AddTextRow(parent *domain.CostItem, text string) (*domain.CostItem, error)
	InsertCopy(parent *domain.CostItem, copy *domain.CostItem) (*domain.CostItem, error)
	RemoveItem(item *domain.CostItem) bool
	MoveItem(item *domain.CostItem, up bool) bool
	Renumber()
}

type PriceBookService interface {
	Add(ctx context.Context, e *domain.PriceBookEntry) error
	GetByID(ctx context.Context, id string) (*domain.PriceBookEntry, error)
	FindByCode(ctx context.Context, code string) (*domain.PriceBookEntry, error)
	List(ctx context.Context) ([]*domain.PriceBookEntry, error)
	ListByCodePrefix(ctx context.Context, prefix string) ([]*domain.PriceBookEntry, error)
	Update(ctx context.Context, e *domain.PriceBookEntry) error
	Remove(ctx context.Context, id string) error
	// Import stores a batch of entries atomically; either all land or none.
	Import(ctx context.Context, entries []*domain.PriceBookEntry) error
}

type RecentFileService interface {
	List(ctx context.Context, limit int) ([]*domain.RecentFile, error)
	Forget(ctx context.Context, path string) error
}
