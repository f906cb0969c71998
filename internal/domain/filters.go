package domain

import "strings"

// FilterSet is the structured narrowing of a search: a set of categories and
// at most one time window. It is an immutable value; every mutator returns a
// new FilterSet and never touches the receiver's backing storage.
//
// Categories are kept deduplicated and in catalog order, and an empty set is
// always represented by a nil slice, so two FilterSets describing the same
// selection compare equal with reflect.DeepEqual as well as Equal.
type FilterSet struct {
	categories []CategoryID
	timeFilter TimeFilterID
}

// NewFilterSet builds a FilterSet, dropping unknown or duplicate categories and
// unknown time windows.
func NewFilterSet(categories []CategoryID, timeFilter TimeFilterID) FilterSet {
	var fs FilterSet
	for _, id := range categories {
		if !fs.Has(id) {
			fs = fs.ToggleCategory(id)
		}
	}
	return fs.WithTimeFilter(timeFilter)
}

// Categories returns a copy of the selected categories in catalog order
func (f FilterSet) Categories() []CategoryID {
	if len(f.categories) == 0 {
		return nil
	}
	out := make([]CategoryID, len(f.categories))
	copy(out, f.categories)
	return out
}

// Has reports whether the category is selected
func (f FilterSet) Has(id CategoryID) bool {
	for _, c := range f.categories {
		if c == id {
			return true
		}
	}
	return false
}

// ToggleCategory returns a FilterSet with id's membership flipped.
// Unknown categories leave the set unchanged.
func (f FilterSet) ToggleCategory(id CategoryID) FilterSet {
	if categoryIndex(id) < 0 {
		return f
	}

	present := f.Has(id)
	var next []CategoryID
	for _, c := range categoryCatalog {
		selected := f.Has(c.ID)
		if c.ID == id {
			selected = !present
		}
		if selected {
			next = append(next, c.ID)
		}
	}
	return FilterSet{categories: next, timeFilter: f.timeFilter}
}

// TimeFilter returns the selected time window (TimeAny when unset)
func (f FilterSet) TimeFilter() TimeFilterID {
	return f.timeFilter
}

// HasTimeFilter reports whether a time window is selected
func (f FilterSet) HasTimeFilter() bool {
	return f.timeFilter != TimeAny
}

// WithTimeFilter returns a FilterSet with the time window replaced.
// Unknown identifiers leave the set unchanged.
func (f FilterSet) WithTimeFilter(id TimeFilterID) FilterSet {
	if _, ok := ParseTimeFilter(string(id)); !ok {
		return f
	}
	return FilterSet{categories: f.Categories(), timeFilter: id}
}

// Cleared returns the empty FilterSet
func (f FilterSet) Cleared() FilterSet {
	return FilterSet{}
}

// ActiveCount is the number of active filters: one per category plus one for a time window
func (f FilterSet) ActiveCount() int {
	n := len(f.categories)
	if f.HasTimeFilter() {
		n++
	}
	return n
}

// IsEmpty reports whether no filter is active
func (f FilterSet) IsEmpty() bool {
	return f.ActiveCount() == 0
}

// Equal reports whether both sets select the same categories and time window
func (f FilterSet) Equal(other FilterSet) bool {
	if f.timeFilter != other.timeFilter || len(f.categories) != len(other.categories) {
		return false
	}
	for i := range f.categories {
		if f.categories[i] != other.categories[i] {
			return false
		}
	}
	return true
}

func (f FilterSet) String() string {
	parts := make([]string, 0, len(f.categories))
	for _, c := range f.categories {
		parts = append(parts, string(c))
	}
	tf := "any"
	if f.HasTimeFilter() {
		tf = string(f.timeFilter)
	}
	return "categories=[" + strings.Join(parts, ",") + "] time=" + tf
}
