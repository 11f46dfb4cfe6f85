// Package view computes what the renderer should draw: the floor/feature
// visibility filter and the animated avatar position along a route.
package view

import "github.com/Ashwin-A21/mallnav/pkg/venue"

// Filter decides which features and markers render for the current floor
// selection. During navigation it keeps the start floor's layout, the
// destination room even on another floor, and hides elevator clutter that
// would intersect the drawn route.
type Filter struct {
	// ShowAll bypasses filtering entirely.
	ShowAll bool
	// ActiveFloors is the set of selected floor levels.
	ActiveFloors map[int]bool
	// AlwaysVisible holds feature ids shown regardless of floor, typically
	// the start and destination rooms.
	AlwaysVisible map[int]bool
	// HideElevators suppresses structural elevator geometry.
	HideElevators bool
}

// NewFilter builds a filter from a floor selection and an always-visible
// id set.
func NewFilter(floors []int, alwaysVisible []int, hideElevators bool) *Filter {
	f := &Filter{
		ActiveFloors:  make(map[int]bool, len(floors)),
		AlwaysVisible: make(map[int]bool, len(alwaysVisible)),
		HideElevators: hideElevators,
	}
	for _, fl := range floors {
		f.ActiveFloors[fl] = true
	}
	for _, id := range alwaysVisible {
		f.AlwaysVisible[id] = true
	}
	return f
}

// ShowEverything returns the filter that renders the whole venue.
func ShowEverything() *Filter {
	return &Filter{ShowAll: true}
}

// Visible reports whether a feature renders under this filter.
func (f *Filter) Visible(feat venue.Feature) bool {
	return f.visible(feat.Level, feat.Category, feat.ID)
}

// MarkerVisible reports whether a floating label renders. Markers follow
// the same rule as the features they annotate.
func (f *Filter) MarkerVisible(level int, category venue.Category, id int) bool {
	return f.visible(level, category, id)
}

func (f *Filter) visible(level int, category venue.Category, id int) bool {
	if f.ShowAll {
		return true
	}
	if f.AlwaysVisible[id] {
		return true
	}
	if level == venue.StructuralLevel {
		// The building shell always shows; elevators can be suppressed.
		return !(category == venue.CategoryElevator && f.HideElevators)
	}
	return f.ActiveFloors[level]
}
