package editor

import (
	"sync"

	"viukon-cms/models"
)

// ReorderItem is one row of a sortable list.
type ReorderItem struct {
	ID       string
	Label    string
	SubLabel string
}

// DragState is either DragIdle or Dragging.
type DragState int

const (
	DragIdle DragState = iota
	Dragging
)

// Reorderer is the drag-and-drop state machine behind a sortable list.
// It never persists anything: every move reports the full id sequence to
// onReorder and the host applies it.
type Reorderer struct {
	mu        sync.Mutex
	items     []ReorderItem
	state     DragState
	source    int
	onReorder func(ids []string)
	onIdle    func()
}

// NewReorderer returns an idle Reorderer over a copy of items. onReorder
// may be nil.
func NewReorderer(items []ReorderItem, onReorder func(ids []string)) *Reorderer {
	return &Reorderer{
		items:     cloneItems(items),
		onReorder: onReorder,
	}
}

// DragStart picks up the item at index i. Ignored unless idle and in range.
func (r *Reorderer) DragStart(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != DragIdle || !inRange(i, len(r.items)) {
		return
	}
	r.state = Dragging
	r.source = i
}

// DragEnter moves the dragged item to index j and follows it there.
func (r *Reorderer) DragEnter(j int) {
	r.mu.Lock()
	if r.state != Dragging || j == r.source || !inRange(j, len(r.items)) {
		r.mu.Unlock()
		return
	}
	r.items = moveItem(r.items, r.source, j)
	r.source = j
	ids := itemIDs(r.items)
	r.mu.Unlock()

	if r.onReorder != nil {
		r.onReorder(ids)
	}
}

// DragEnd returns to idle whether the gesture was a drop or a cancel, then
// runs the OnIdle hook.
func (r *Reorderer) DragEnd() {
	r.mu.Lock()
	r.state = DragIdle
	r.source = 0
	onIdle := r.onIdle
	r.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}

// OnIdle sets a hook run after every DragEnd, typically to resynchronize
// with the host collection.
func (r *Reorderer) OnIdle(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onIdle = fn
}

// Reset abandons any drag in progress and replaces the items.
func (r *Reorderer) Reset(items []ReorderItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = cloneItems(items)
	r.state = DragIdle
	r.source = 0
}

// SetItems resynchronizes with the host collection. It is refused while a
// drag is in progress.
func (r *Reorderer) SetItems(items []ReorderItem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != DragIdle {
		return false
	}
	r.items = cloneItems(items)
	return true
}

// Items returns a copy of the current order.
func (r *Reorderer) Items() []ReorderItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneItems(r.items)
}

// State reports the current state and, while dragging, the dragged index.
func (r *Reorderer) State() (DragState, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == DragIdle {
		return DragIdle, -1
	}
	return r.state, r.source
}

// ProjectItems lists projects by title and category.
func ProjectItems(doc *models.SiteData) []ReorderItem {
	items := make([]ReorderItem, len(doc.Projects))
	for i, p := range doc.Projects {
		items[i] = ReorderItem{ID: p.ID, Label: p.Title, SubLabel: p.Category}
	}
	return items
}

// TeamItems lists team members by name and role.
func TeamItems(doc *models.SiteData) []ReorderItem {
	items := make([]ReorderItem, len(doc.Team))
	for i, m := range doc.Team {
		items[i] = ReorderItem{ID: m.ID, Label: m.Name, SubLabel: m.Role}
	}
	return items
}

func moveItem(items []ReorderItem, from, to int) []ReorderItem {
	out := make([]ReorderItem, 0, len(items))
	moved := items[from]
	for i, item := range items {
		if i == from {
			continue
		}
		if len(out) == to {
			out = append(out, moved)
		}
		out = append(out, item)
	}
	if len(out) == to {
		out = append(out, moved)
	}
	return out
}

func itemIDs(items []ReorderItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func cloneItems(items []ReorderItem) []ReorderItem {
	out := make([]ReorderItem, len(items))
	copy(out, items)
	return out
}
