package domain

import "fmt"

// CostItem is a node in the cost hierarchy. A node with children is a
// chapter whose total is the roll-up of its children; a childless node is
// a leaf post contributing quantity times unit price, or a text-only row
// contributing nothing. Parent and Schedule are weak back-references:
// ownership runs through the Children slice only.
type CostItem struct {
	Name           string
	HTMLName       string // opaque rich-text override of Name, never parsed here
	Identification string
	SFBCode        string
	Description    string
	IsTextOnly     bool
	Value          CostValue

	Children []*CostItem
	Parent   *CostItem
	Schedule *CostSchedule
}

// NewCostItem returns a detached item with an empty cost value.
func NewCostItem(name, identification string) *CostItem {
	return &CostItem{
		Name:           name,
		Identification: identification,
		Value:          NewCostValue(),
	}
}

// IsChapter reports whether the item has children.
func (c *CostItem) IsChapter() bool {
	return len(c.Children) > 0
}

// IsLeaf reports whether the item has no children.
func (c *CostItem) IsLeaf() bool {
	return len(c.Children) == 0
}

// Level returns the number of ancestors; a root item is level 0.
func (c *CostItem) Level() int {
	level := 0
	for item := c.Parent; item != nil; item = item.Parent {
		level++
	}
	return level
}

// Subtotal computes the item's total from the live tree state:
// 0 for text-only rows, quantity*price for leaves, and the sum over
// children (in order) for chapters. Leaf cost data on a chapter is never
// summed.
func (c *CostItem) Subtotal() float64 {
	if c.IsTextOnly {
		return 0
	}
	if c.IsLeaf() {
		return c.Value.Total()
	}
	var sum float64
	for _, child := range c.Children {
		sum += child.Subtotal()
	}
	return sum
}

// Total is an alias for Subtotal.
func (c *CostItem) Total() float64 {
	return c.Subtotal()
}

// isAncestorOrSelf reports whether candidate is c or an ancestor of c.
func (c *CostItem) isAncestorOrSelf(candidate *CostItem) bool {
	for item := c; item != nil; item = item.Parent {
		if item == candidate {
			return true
		}
	}
	return false
}

// AddChild attaches child at the end of the child sequence, setting its
// parent and schedule back-references. Returns the child, or nil if the
// attach would create a cycle (child is the item itself or one of its
// ancestors).
func (c *CostItem) AddChild(child *CostItem) *CostItem {
	if child == nil || c.isAncestorOrSelf(child) {
		return nil
	}
	child.Parent = c
	child.setScheduleRecursive(c.Schedule)
	c.Children = append(c.Children, child)
	return child
}

// InsertChild attaches child at the given position. An index outside the
// current bounds is clamped. Returns the child, or nil on a cycle.
func (c *CostItem) InsertChild(index int, child *CostItem) *CostItem {
	if child == nil || c.isAncestorOrSelf(child) {
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.Children) {
		index = len(c.Children)
	}
	child.Parent = c
	child.setScheduleRecursive(c.Schedule)
	c.Children = append(c.Children, nil)
	copy(c.Children[index+1:], c.Children[index:])
	c.Children[index] = child
	return child
}

// RemoveChild detaches child if it is a direct child, clearing its parent
// and schedule references. Returns false (no-op) when child is not found.
func (c *CostItem) RemoveChild(child *CostItem) bool {
	idx := c.ChildIndex(child)
	if idx < 0 {
		return false
	}
	child.Parent = nil
	child.setScheduleRecursive(nil)
	c.Children = append(c.Children[:idx], c.Children[idx+1:]...)
	return true
}

// ChildIndex returns the position of child in the child sequence, or -1.
func (c *CostItem) ChildIndex(child *CostItem) int {
	for i, ch := range c.Children {
		if ch == child {
			return i
		}
	}
	return -1
}

// MoveUp swaps the item with its previous sibling. Returns false without
// effect when the item has no parent or is already first.
func (c *CostItem) MoveUp() bool {
	if c.Parent == nil {
		return false
	}
	idx := c.Parent.ChildIndex(c)
	if idx <= 0 {
		return false
	}
	siblings := c.Parent.Children
	siblings[idx-1], siblings[idx] = siblings[idx], siblings[idx-1]
	return true
}

// MoveDown swaps the item with its next sibling. Returns false without
// effect when the item has no parent or is already last.
func (c *CostItem) MoveDown() bool {
	if c.Parent == nil {
		return false
	}
	idx := c.Parent.ChildIndex(c)
	if idx < 0 || idx >= len(c.Parent.Children)-1 {
		return false
	}
	siblings := c.Parent.Children
	siblings[idx], siblings[idx+1] = siblings[idx+1], siblings[idx]
	return true
}

// Path returns the ancestor chain from the forest root down to the item
// itself.
func (c *CostItem) Path() []*CostItem {
	var path []*CostItem
	for item := c; item != nil; item = item.Parent {
		path = append(path, item)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FullIdentification joins the non-empty identification codes along the
// path, root first. An empty separator defaults to ".".
func (c *CostItem) FullIdentification(separator string) string {
	if separator == "" {
		separator = "."
	}
	var parts []string
	for _, item := range c.Path() {
		if item.Identification != "" {
			parts = append(parts, item.Identification)
		}
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += separator
		}
		out += p
	}
	return out
}

// FindByIdentification searches depth-first (self first, then children in
// order) for an exact identification match. Returns nil when absent.
func (c *CostItem) FindByIdentification(identification string) *CostItem {
	if c.Identification == identification {
		return c
	}
	for _, child := range c.Children {
		if found := child.FindByIdentification(identification); found != nil {
			return found
		}
	}
	return nil
}

// Descendants returns every node below the item in pre-order, excluding
// the item itself.
func (c *CostItem) Descendants() []*CostItem {
	var out []*CostItem
	for _, child := range c.Children {
		out = append(out, child)
		out = append(out, child.Descendants()...)
	}
	return out
}

// Copy deep-clones the item and its whole subtree. The result is detached:
// parent and schedule are unset and the caller re-attaches it.
func (c *CostItem) Copy() *CostItem {
	clone := &CostItem{
		Name:           c.Name,
		HTMLName:       c.HTMLName,
		Identification: c.Identification,
		SFBCode:        c.SFBCode,
		Description:    c.Description,
		IsTextOnly:     c.IsTextOnly,
		Value: CostValue{
			UnitPrice: c.Value.UnitPrice,
			Quantity:  c.Value.Quantity,
			Kind:      c.Value.Kind,
			Category:  c.Value.Category,
		},
	}
	for _, child := range c.Children {
		clone.AddChild(child.Copy())
	}
	return clone
}

// FormatSubtotal renders the subtotal with a currency prefix.
func (c *CostItem) FormatSubtotal(currency string) string {
	return fmt.Sprintf("%s %s", currency, FormatAmount(c.Subtotal()))
}

// setScheduleRecursive propagates the schedule back-reference through the
// subtree so the schedule invariant holds transitively.
func (c *CostItem) setScheduleRecursive(s *CostSchedule) {
	c.Schedule = s
	for _, child := range c.Children {
		child.setScheduleRecursive(s)
	}
}
