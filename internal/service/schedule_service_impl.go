package service

import (
	"context"
	"fmt"
	"time"

	"github.com/woutmeijer/bouwkost/internal/domain"
	"github.com/woutmeijer/bouwkost/internal/ifcdoc"
	"github.com/woutmeijer/bouwkost/internal/repository"
)

// recentKeep bounds the recent-file list; older entries are pruned on
// every touch.
const recentKeep = 10

type scheduleService struct {
	handler  *ifcdoc.Handler
	schedule *domain.CostSchedule
	recents  repository.RecentFileRepo
}

// NewScheduleService returns a session with no document loaded. The
// recent-file repo may be nil; bookkeeping is then skipped.
func NewScheduleService(recents repository.RecentFileRepo) ScheduleService {
	return &scheduleService{handler: ifcdoc.NewHandler(), recents: recents}
}

func (s *scheduleService) New(name string) *domain.CostSchedule {
	s.handler.New(name)
	s.schedule = domain.NewCostSchedule(name)
	return s.schedule
}

// NewFrom starts a session around an existing tree, typically one built
// from a template.
func (s *scheduleService) NewFrom(schedule *domain.CostSchedule) *domain.CostSchedule {
	s.handler.New(schedule.Name)
	s.schedule = schedule
	return s.schedule
}

func (s *scheduleService) Open(ctx context.Context, path string) (*domain.CostSchedule, error) {
	doc, err := s.handler.Open(path)
	if err != nil {
		return nil, err
	}
	if len(doc.CostSchedules) == 0 {
		s.schedule = domain.NewCostSchedule(doc.Project.Name)
	} else {
		s.schedule = ifcdoc.DecodeSchedule(doc.CostSchedules[0])
	}
	s.touchRecent(ctx, s.handler.Path())
	return s.schedule, nil
}

func (s *scheduleService) Save(ctx context.Context, path string) (string, error) {
	if s.schedule == nil {
		return "", fmt.Errorf("no schedule open")
	}
	now := time.Now().UTC()
	s.schedule.UpdateDate = &now
	doc := s.handler.Document()
	doc.CostSchedules = []ifcdoc.CostScheduleRecord{ifcdoc.EncodeSchedule(s.schedule)}
	written, err := s.handler.Save(path)
	if err != nil {
		return "", err
	}
	s.touchRecent(ctx, written)
	return written, nil
}

func (s *scheduleService) Replace(schedule *domain.CostSchedule) {
	if schedule == nil {
		return
	}
	s.schedule = schedule
	s.markModified()
}

func (s *scheduleService) Close() {
	s.handler.Close()
	s.schedule = nil
}

func (s *scheduleService) Schedule() *domain.CostSchedule {
	return s.schedule
}

func (s *scheduleService) Path() string {
	return s.handler.Path()
}

func (s *scheduleService) IsModified() bool {
	return s.handler.IsModified()
}

func (s *scheduleService) ProjectData() ifcdoc.ProjectData {
	doc := s.handler.Document()
	if doc == nil {
		return ifcdoc.ProjectData{}
	}
	return doc.LoadProjectData()
}

func (s *scheduleService) SetProjectData(data ifcdoc.ProjectData) {
	doc := s.handler.Document()
	if doc == nil {
		return
	}
	doc.SaveProjectData(data)
	s.markModified()
}

func (s *scheduleService) AddChapter(name, identification, description string) (*domain.CostItem, error) {
	if s.schedule == nil {
		return nil, fmt.Errorf("no schedule open")
	}
	chapter := s.schedule.CreateChapter(name, identification, description)
	s.markModified()
	return chapter, nil
}

// AddCostItem places a new leaf under parent. A nil parent means the
// item goes at the schedule root; with no schedule open either, there is
// nowhere to put it and that is an error.
func (s *scheduleService) AddCostItem(parent *domain.CostItem, name, identification string) (*domain.CostItem, error) {
	item := domain.NewCostItem(name, identification)
	if err := s.place(parent, item); err != nil {
		return nil, err
	}
	s.markModified()
	return item, nil
}

func (s *scheduleService) AddTextRow(parent *domain.CostItem, text string) (*domain.CostItem, error) {
	item := domain.NewCostItem(text, "")
	item.IsTextOnly = true
	if err := s.place(parent, item); err != nil {
		return nil, err
	}
	s.markModified()
	return item, nil
}

func (s *scheduleService) InsertCopy(parent *domain.CostItem, copy *domain.CostItem) (*domain.CostItem, error) {
	if copy == nil {
		return nil, fmt.Errorf("nothing to paste")
	}
	clone := copy.Copy()
	if err := s.place(parent, clone); err != nil {
		return nil, err
	}
	s.markModified()
	return clone, nil
}

func (s *scheduleService) place(parent *domain.CostItem, item *domain.CostItem) error {
	if parent != nil {
		if parent.AddChild(item) == nil {
			return fmt.Errorf("cannot add item under %q", parent.Name)
		}
		return nil
	}
	if s.schedule == nil {
		return fmt.Errorf("cost item needs a parent or an open schedule")
	}
	s.schedule.AddItem(item)
	return nil
}

func (s *scheduleService) RemoveItem(item *domain.CostItem) bool {
	if item == nil {
		return false
	}
	var removed bool
	if item.Parent != nil {
		removed = item.Parent.RemoveChild(item)
	} else if s.schedule != nil {
		removed = s.schedule.RemoveItem(item)
	}
	if removed {
		s.markModified()
	}
	return removed
}

func (s *scheduleService) MoveItem(item *domain.CostItem, up bool) bool {
	if item == nil {
		return false
	}
	var moved bool
	if item.Parent == nil && s.schedule != nil {
		moved = s.moveRoot(item, up)
	} else if up {
		moved = item.MoveUp()
	} else {
		moved = item.MoveDown()
	}
	if moved {
		s.markModified()
	}
	return moved
}

// moveRoot swaps an item with its sibling at the schedule root, where
// there is no parent to delegate to.
func (s *scheduleService) moveRoot(item *domain.CostItem, up bool) bool {
	idx := s.schedule.ItemIndex(item)
	if idx < 0 {
		return false
	}
	other := idx + 1
	if up {
		other = idx - 1
	}
	if other < 0 || other >= len(s.schedule.Items) {
		return false
	}
	s.schedule.Items[idx], s.schedule.Items[other] = s.schedule.Items[other], s.schedule.Items[idx]
	return true
}

func (s *scheduleService) Renumber() {
	if s.schedule == nil {
		return
	}
	s.schedule.RenumberChapters()
	s.markModified()
}

func (s *scheduleService) markModified() {
	if s.handler.Document() != nil {
		s.handler.MarkModified()
	}
	if s.schedule != nil {
		s.schedule.MarkModified()
	}
}

func (s *scheduleService) touchRecent(ctx context.Context, path string) {
	if s.recents == nil || path == "" {
		return
	}
	name := ""
	if s.schedule != nil {
		name = s.schedule.Name
	}
	_ = s.recents.Touch(ctx, &domain.RecentFile{
		Path:         path,
		ScheduleName: name,
		LastOpenedAt: time.Now().UTC(),
	})
	_ = s.recents.Prune(ctx, recentKeep)
}
