// Package history provides snapshot-based undo and redo for a cost
// schedule. Every snapshot is a deep clone of the whole tree, so undo
// never has to reason about which edit happened.
package history

import (
	"time"

	"github.com/woutmeijer/bouwkost/internal/domain"
)

// DefaultLimit caps the undo stack; the oldest snapshot drops off first.
const DefaultLimit = 50

type Stack struct {
	limit int
	undo  []*domain.CostSchedule
	redo  []*domain.CostSchedule
}

func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{limit: limit}
}

// Snapshot records the current state before a mutation. Any pending redo
// states are discarded.
func (s *Stack) Snapshot(current *domain.CostSchedule) {
	if current == nil {
		return
	}
	s.undo = append(s.undo, Clone(current))
	if len(s.undo) > s.limit {
		s.undo = s.undo[1:]
	}
	s.redo = nil
}

// Undo returns the previous state, moving the current one onto the redo
// stack. The second return is false when there is nothing to undo.
func (s *Stack) Undo(current *domain.CostSchedule) (*domain.CostSchedule, bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	if current != nil {
		s.redo = append(s.redo, Clone(current))
	}
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	return last, true
}

// Redo reverses the most recent Undo.
func (s *Stack) Redo(current *domain.CostSchedule) (*domain.CostSchedule, bool) {
	if len(s.redo) == 0 {
		return nil, false
	}
	if current != nil {
		s.undo = append(s.undo, Clone(current))
	}
	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	return last, true
}

func (s *Stack) CanUndo() bool { return len(s.undo) > 0 }
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Clear drops all recorded states, for example after opening a new file.
func (s *Stack) Clear() {
	s.undo = nil
	s.redo = nil
}

// Clone deep-copies a schedule including its item trees. The clone shares
// nothing with the original.
func Clone(s *domain.CostSchedule) *domain.CostSchedule {
	clone := domain.NewCostSchedule(s.Name)
	clone.Description = s.Description
	clone.ScheduleType = s.ScheduleType
	clone.Status = s.Status
	clone.CreatedDate = s.CreatedDate
	clone.VATRate = s.VATRate
	clone.UpdateDate = copyTime(s.UpdateDate)
	clone.SubmittedOn = copyTime(s.SubmittedOn)
	for _, item := range s.Items {
		clone.AddItem(item.Copy())
	}
	return clone
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
