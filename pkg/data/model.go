package data

import (
	"fmt"
	"strings"
)

type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ViewMode selects how the gallery lays out images.
type ViewMode int

const (
	GridMode ViewMode = iota
	ColumnMode
	InfiniteMode
)

var ViewModes = []ViewMode{GridMode, ColumnMode, InfiniteMode}

func (m ViewMode) String() string {
	switch m {
	case GridMode:
		return "grid"
	case ColumnMode:
		return "column"
	case InfiniteMode:
		return "infinite"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// Label is the text shown on the mode tab, e.g. "Grid View".
func (m ViewMode) Label() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:] + " View"
}

// Paginated reports whether the mode uses Previous/Next controls.
func (m ViewMode) Paginated() bool {
	return m != InfiniteMode
}

// Next cycles grid -> column -> infinite -> grid.
func (m ViewMode) Next() ViewMode {
	return (m + 1) % ViewMode(len(ViewModes))
}

func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "":
		return GridMode, nil
	case "column":
		return ColumnMode, nil
	case "infinite":
		return InfiniteMode, nil
	}
	return GridMode, fmt.Errorf("unknown view mode %q (want grid, column or infinite)", s)
}
