// Package menu implements the single-select dropdown state machine used by
// the locale picker and other pickers. A menu is either closed or open;
// selecting an option notifies the owner exactly once and closes the menu,
// and a pointer-down outside the menu's registered region closes it without
// changing the selection.
//
// Outside-click dismissal is an explicit capability the hosting view
// grants: the host registers the menu's region boundary and attaches the
// menu to a pointer-event source, and the returned detach function releases
// the subscription on teardown. The menu never installs ambient global
// listeners.
package menu

import "sync"

// Point is a pointer-event coordinate in the host view's space.
type Point struct {
	X, Y int
}

// Region is a rendered boundary that can answer containment queries. The
// hosting view supplies one covering the menu's trigger and option list.
type Region interface {
	Contains(pt Point) bool
}

// RectRegion is an axis-aligned rectangular Region.
type RectRegion struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether the point falls inside the rectangle.
func (r RectRegion) Contains(pt Point) bool {
	return pt.X >= r.MinX && pt.X <= r.MaxX && pt.Y >= r.MinY && pt.Y <= r.MaxY
}

// PointerSource is a scoped pointer-down event stream granted by the host.
// Subscribe returns a cancel function that releases the subscription.
type PointerSource interface {
	Subscribe(fn func(Point)) (cancel func())
}

// Menu is a single-select dropdown. The zero value is unusable; construct
// with New. A Menu is owned by one view and its state changes only through
// the interaction methods below.
type Menu struct {
	mu       sync.Mutex
	open     bool
	selected string
	hasValue bool
	region   Region
	onChange func(string)
	detach   func()
}

// New creates a closed menu with no selection. onChange is invoked exactly
// once per completed selection, carrying the chosen value; it may be nil.
func New(onChange func(string)) *Menu {
	return &Menu{onChange: onChange}
}

// Trigger handles activation of the menu's trigger control, toggling
// between closed and open.
func (m *Menu) Trigger() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = !m.open
}

// Select records the chosen value, closes the menu, and notifies the
// owner. Selection is only possible while the menu is open.
func (m *Menu) Select(value string) {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return
	}
	m.open = false
	m.selected = value
	m.hasValue = true
	onChange := m.onChange
	m.mu.Unlock()

	if onChange != nil {
		onChange(value)
	}
}

// SetRegion registers the menu's rendered boundary for outside-click
// detection. Pointer events are ignored until a region is registered.
func (m *Menu) SetRegion(region Region) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.region = region
}

// PointerDown reports a pointer-down event to the menu. An event outside
// the registered region closes an open menu without a selection change.
func (m *Menu) PointerDown(pt Point) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open || m.region == nil {
		return
	}
	if !m.region.Contains(pt) {
		m.open = false
	}
}

// AttachOutsideDismiss subscribes the menu to the host's pointer-event
// source. The returned detach function releases the subscription; Close
// also releases it.
func (m *Menu) AttachOutsideDismiss(src PointerSource) (detach func()) {
	cancel := src.Subscribe(m.PointerDown)

	m.mu.Lock()
	m.detach = cancel
	m.mu.Unlock()

	return cancel
}

// Close releases the pointer subscription, if any, and closes the menu.
// Called when the owning view is torn down.
func (m *Menu) Close() {
	m.mu.Lock()
	detach := m.detach
	m.detach = nil
	m.open = false
	m.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Selected returns the current selection, if one has been made.
func (m *Menu) Selected() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected, m.hasValue
}
