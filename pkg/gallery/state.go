// Package gallery holds the view state of the cat gallery and the pure
// transitions that move it between fetches.
//
// A State is never mutated in place. Every transition returns a new State
// and, when the transition needs data, a Request describing the page to
// fetch. The Request carries the sequence number the result must echo back;
// Resolve drops any result whose sequence is not the latest, so a slow,
// superseded request can never overwrite newer state.
package gallery

import (
	"slices"

	"github.com/kerbaras/purrfect/pkg/data"
)

// PageSize is the number of images requested per page.
const PageSize = 10

type State struct {
	Images  []data.Image
	Page    int
	Mode    data.ViewMode
	Loading bool
	Err     error
	HasMore bool
	Seq     uint64
}

// Request asks the caller to fetch Page for Mode.
type Request struct {
	Seq  uint64
	Page int
	Mode data.ViewMode
}

// Result is the outcome of a Request.
type Result struct {
	Seq    uint64
	Images []data.Image
	Err    error
}

// New returns the initial state for mode together with the request for its
// first page.
func New(mode data.ViewMode) (State, *Request) {
	s := State{
		Page:    1,
		Mode:    mode,
		HasMore: true,
	}
	return s.begin()
}

func (s State) begin() (State, *Request) {
	s.Loading = true
	s.Err = nil
	s.Seq++
	return s, &Request{Seq: s.Seq, Page: s.Page, Mode: s.Mode}
}

// SwitchMode resets the gallery and requests page 1 in mode. It refetches
// even when mode is the current one.
func (s State) SwitchMode(mode data.ViewMode) (State, *Request) {
	s.Mode = mode
	s.Page = 1
	s.Images = nil
	s.Err = nil
	s.HasMore = true
	return s.begin()
}

// Next moves to the following page. It is a no-op in infinite mode and when
// the last page has been reached.
func (s State) Next() (State, *Request) {
	if !s.CanNext() {
		return s, nil
	}
	s.Page++
	return s.begin()
}

// Prev moves to the previous page, never below 1.
func (s State) Prev() (State, *Request) {
	if !s.CanPrev() {
		return s, nil
	}
	s.Page = max(1, s.Page-1)
	return s.begin()
}

// LoadMore requests the page after the last one loaded in infinite mode.
// Nothing happens while a fetch is pending or once the feed is exhausted.
// Every loaded page except the last is full, so the next page follows from
// the image count; a page that failed to load is asked for again.
func (s State) LoadMore() (State, *Request) {
	if s.Mode != data.InfiniteMode || !s.HasMore || s.Loading {
		return s, nil
	}
	s.Page = len(s.Images)/PageSize + 1
	return s.begin()
}

// Refresh refetches the current page. The infinite feed starts over.
func (s State) Refresh() (State, *Request) {
	if s.Mode == data.InfiniteMode {
		return s.SwitchMode(data.InfiniteMode)
	}
	return s.begin()
}

// Resolve applies the result of the latest request. Results from older
// requests are ignored.
func (s State) Resolve(r Result) State {
	if r.Seq != s.Seq || !s.Loading {
		return s
	}
	s.Loading = false
	if r.Err != nil {
		s.Err = r.Err
		return s
	}

	if s.Mode == data.InfiniteMode {
		s.Images = slices.Concat(s.Images, r.Images)
	} else {
		s.Images = slices.Clone(r.Images)
	}
	s.HasMore = len(r.Images) == PageSize
	return s
}

func (s State) CanPrev() bool {
	return s.Mode.Paginated() && s.Page > 1
}

func (s State) CanNext() bool {
	return s.Mode.Paginated() && s.HasMore
}

// Empty reports whether there is nothing to show and nothing on the way.
func (s State) Empty() bool {
	return len(s.Images) == 0 && !s.Loading && s.Err == nil
}
