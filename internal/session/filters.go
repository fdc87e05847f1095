package session

import "github.com/meufuturo/futuro/internal/model"

// UpdateFilters merges a partial filter change into the session. Any
// change other than the sort settings resets pagination to page 1.
// Every effective change schedules a debounced fetch.
func (s *Session) UpdateFilters(update model.FilterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	changed, narrowed := s.filters.Apply(update)
	if !changed {
		return
	}
	if narrowed {
		s.page = 1
	}

	s.scheduleLoadLocked()
}

// ClearFilters resets every filter to its default and goes back to page
// 1. Calling it twice in a row is a no-op the second time.
func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if !s.filters.HasActiveFilters() && s.page == 1 {
		return
	}
	s.filters = model.DefaultFilters()
	s.page = 1

	s.scheduleLoadLocked()
}

// Filters returns the current filter state.
func (s *Session) Filters() model.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// HasActiveFilters reports whether any filter differs from its default.
func (s *Session) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.HasActiveFilters()
}

// ActiveFiltersCount counts the filter groups differing from default.
func (s *Session) ActiveFiltersCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.ActiveFiltersCount()
}

// SetPage jumps to the given 1-indexed page and schedules a fetch.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if page < 1 {
		page = 1
	}
	if page == s.page {
		return
	}
	s.page = page

	s.scheduleLoadLocked()
}

// NextPage advances one page when the server reported a next page.
func (s *Session) NextPage() {
	s.mu.Lock()
	hasNext := s.pagination.HasNext
	page := s.page
	s.mu.Unlock()

	if hasNext {
		s.SetPage(page + 1)
	}
}

// PrevPage steps back one page when possible.
func (s *Session) PrevPage() {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()

	if page > 1 {
		s.SetPage(page - 1)
	}
}
