// Package query translates request-level filter and sort parameters into
// typed values the storage layer can apply.
package query

import "github.com/meprashantkumar/todo-api/model"

// Filter narrows which todos a list operation returns. A nil Completed or
// empty Priority contributes no constraint.
type Filter struct {
	Completed *bool
	Priority  model.Priority
}

// Sort selects the ordering of a list result set.
type Sort int

const (
	// SortCreatedDesc orders by creation time, most recent first.
	SortCreatedDesc Sort = iota
	// SortPriority orders by severity rank (high > medium > low), then by
	// creation time descending. The rank is fixed; the enum's lexicographic
	// order is never used.
	SortPriority
	// SortTitle orders by title ascending.
	SortTitle
)

// Build maps raw query parameters to a Filter and Sort. It is total over
// its inputs: anything unrecognized degrades to "no constraint" or the
// default ordering rather than failing.
func Build(completed, priority, sort string) (Filter, Sort) {
	var f Filter

	switch completed {
	case "true":
		v := true
		f.Completed = &v
	case "false":
		v := false
		f.Completed = &v
	}

	if p := model.Priority(priority); p.IsValid() {
		f.Priority = p
	}

	switch sort {
	case "priority":
		return f, SortPriority
	case "title":
		return f, SortTitle
	default:
		return f, SortCreatedDesc
	}
}
