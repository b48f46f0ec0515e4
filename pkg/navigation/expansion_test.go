package navigation

import "testing"

func testGroups() []Group {
	return []Group{
		{ID: "mortgage", PathPrefix: "/mortgage"},
		{ID: "isa", PathPrefix: "/isa"},
		{ID: "loans", PathPrefix: "/loans"},
	}
}

func TestInitialRouteExpandsMatchingGroup(t *testing.T) {
	e := New(testGroups(), "/mortgage/affordability")

	snapshot := e.Snapshot()
	if !snapshot["mortgage"] {
		t.Error("group containing the initial route should start expanded")
	}
	if snapshot["isa"] || snapshot["loans"] {
		t.Errorf("non-matching groups should start collapsed: %v", snapshot)
	}
}

func TestToggleFlipsOnlyThatGroup(t *testing.T) {
	e := New(testGroups(), "/mortgage")

	e.Toggle("isa")
	if !e.IsExpanded("isa") {
		t.Error("toggled group should be expanded")
	}
	if !e.IsExpanded("mortgage") || e.IsExpanded("loans") {
		t.Error("toggle changed an unrelated group")
	}

	e.Toggle("isa")
	if e.IsExpanded("isa") {
		t.Error("second toggle should collapse the group")
	}
}

func TestToggleUnknownGroupIgnored(t *testing.T) {
	e := New(testGroups(), "/")
	e.Toggle("pensions")
	if len(e.Snapshot()) != 3 {
		t.Error("toggling an unknown group must not create state for it")
	}
}

func TestRouteChangeExpandsOneWay(t *testing.T) {
	e := New(testGroups(), "/mortgage")

	e.RouteChanged("/isa/lump-sum")
	if !e.IsExpanded("isa") {
		t.Error("route change should expand the matching group")
	}
	// One-way: the previously matching group stays expanded.
	if !e.IsExpanded("mortgage") {
		t.Error("route change must not collapse groups that no longer match")
	}
}

func TestPrefixMatchRespectsSegmentBoundaries(t *testing.T) {
	e := New([]Group{
		{ID: "isa", PathPrefix: "/isa"},
	}, "/isabella")

	if e.IsExpanded("isa") {
		t.Error("/isabella must not match the /isa prefix")
	}

	e.RouteChanged("/isa")
	if !e.IsExpanded("isa") {
		t.Error("exact prefix route should match")
	}
}
