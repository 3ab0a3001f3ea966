package ui

import (
	"net/url"
	"strings"
)

// Tab is a tab trigger and the pane it shows.  Target is the pane selector
// including the leading '#'.
type Tab struct {
	Target string
	Label  string
	Active bool
}

// PaneID returns the id of the pane element.
func (t Tab) PaneID() string {
	return strings.TrimPrefix(t.Target, "#")
}

// TabSet is an ordered group of tabs with at most one active tab.
type TabSet struct {
	Tabs []Tab
}

// NewTabSet returns a tab set with the first tab active.
func NewTabSet(tabs ...Tab) TabSet {
	s := TabSet{Tabs: make([]Tab, len(tabs))}
	copy(s.Tabs, tabs)
	for idx := range s.Tabs {
		s.Tabs[idx].Active = idx == 0
	}
	return s
}

// Activate returns a copy of the set with the tab of the given target
// active.  The set is returned unchanged, with false, if no tab matches.
func (s TabSet) Activate(target string) (TabSet, bool) {
	found := -1
	for idx, t := range s.Tabs {
		if t.Target == target {
			found = idx
			break
		}
	}
	if found < 0 {
		return s, false
	}
	out := TabSet{Tabs: make([]Tab, len(s.Tabs))}
	copy(out.Tabs, s.Tabs)
	for idx := range out.Tabs {
		out.Tabs[idx].Active = idx == found
	}
	return out, true
}

// Restore activates the tab named by a URL hash ("#pane" or "pane").
func (s TabSet) Restore(hash string) TabSet {
	if hash == "" || hash == "#" {
		return s
	}
	if !strings.HasPrefix(hash, "#") {
		hash = "#" + hash
	}
	out, _ := s.Activate(hash)
	return out
}

// Active returns the active tab.
func (s TabSet) Active() (Tab, bool) {
	for _, t := range s.Tabs {
		if t.Active {
			return t, true
		}
	}
	return Tab{}, false
}

// WithFragment returns a copy of u whose hash points at the tab target.
// Nothing but the fragment changes.
func WithFragment(u *url.URL, target string) *url.URL {
	c := *u
	c.Fragment = strings.TrimPrefix(target, "#")
	c.RawFragment = ""
	return &c
}
