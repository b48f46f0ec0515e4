package menu

import "testing"

func TestMenuStartsClosed(t *testing.T) {
	m := New(nil)
	if m.IsOpen() {
		t.Error("new menu should start closed")
	}
	if _, ok := m.Selected(); ok {
		t.Error("new menu should have no selection")
	}
}

func TestTriggerTogglesOpen(t *testing.T) {
	m := New(nil)

	m.Trigger()
	if !m.IsOpen() {
		t.Fatal("trigger on closed menu should open it")
	}

	m.Trigger()
	if m.IsOpen() {
		t.Error("trigger on open menu should close it")
	}
}

func TestSelectNotifiesOnceAndCloses(t *testing.T) {
	var calls []string
	m := New(func(value string) {
		calls = append(calls, value)
	})

	m.Trigger()
	m.Select("en-IN")

	if len(calls) != 1 || calls[0] != "en-IN" {
		t.Fatalf("expected one callback with en-IN, got %v", calls)
	}
	if m.IsOpen() {
		t.Error("menu should close after selection")
	}
	if selected, ok := m.Selected(); !ok || selected != "en-IN" {
		t.Errorf("Selected() = %q, %v; want en-IN, true", selected, ok)
	}
}

func TestSelectIgnoredWhileClosed(t *testing.T) {
	calls := 0
	m := New(func(string) { calls++ })

	m.Select("en-GB")

	if calls != 0 {
		t.Errorf("selection on a closed menu invoked the callback %d times", calls)
	}
	if _, ok := m.Selected(); ok {
		t.Error("selection on a closed menu should not record a value")
	}
}

func TestOutsidePointerDownClosesWithoutCallback(t *testing.T) {
	calls := 0
	m := New(func(string) { calls++ })
	m.SetRegion(RectRegion{MinX: 0, MinY: 0, MaxX: 100, MaxY: 40})

	m.Trigger()
	m.PointerDown(Point{X: 250, Y: 300})

	if m.IsOpen() {
		t.Error("outside pointer-down should close the menu")
	}
	if calls != 0 {
		t.Errorf("outside pointer-down invoked the callback %d times", calls)
	}
}

func TestInsidePointerDownKeepsOpen(t *testing.T) {
	m := New(nil)
	m.SetRegion(RectRegion{MinX: 0, MinY: 0, MaxX: 100, MaxY: 40})

	m.Trigger()
	m.PointerDown(Point{X: 50, Y: 20})

	if !m.IsOpen() {
		t.Error("pointer-down inside the region should not close the menu")
	}
}

func TestPointerDownWithoutRegionIgnored(t *testing.T) {
	m := New(nil)
	m.Trigger()
	m.PointerDown(Point{X: 999, Y: 999})
	if !m.IsOpen() {
		t.Error("pointer events before a region is registered should be ignored")
	}
}

func TestAttachOutsideDismiss(t *testing.T) {
	src := NewBroadcaster()
	m := New(nil)
	m.SetRegion(RectRegion{MinX: 0, MinY: 0, MaxX: 100, MaxY: 40})

	detach := m.AttachOutsideDismiss(src)
	if src.Len() != 1 {
		t.Fatalf("expected one subscription, got %d", src.Len())
	}

	m.Trigger()
	src.Publish(Point{X: 500, Y: 500})
	if m.IsOpen() {
		t.Error("published outside event should close the menu")
	}

	detach()
	if src.Len() != 0 {
		t.Errorf("detach should release the subscription, %d remain", src.Len())
	}

	// Events after detach no longer reach the menu.
	m.Trigger()
	src.Publish(Point{X: 500, Y: 500})
	if !m.IsOpen() {
		t.Error("menu received an event after detaching")
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	src := NewBroadcaster()
	m := New(nil)
	m.AttachOutsideDismiss(src)

	m.Trigger()
	m.Close()

	if m.IsOpen() {
		t.Error("Close should leave the menu closed")
	}
	if src.Len() != 0 {
		t.Errorf("Close should release the subscription, %d remain", src.Len())
	}
}
