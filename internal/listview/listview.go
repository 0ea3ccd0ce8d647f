// Package listview turns a raw entity collection plus a set of named
// filters into a bounded page for rendering. Every table (products, sales,
// loans) instantiates one engine instead of re-deriving the logic.
package listview

import (
	"strings"
	"time"
)

// Sentinel is the filter value meaning "no restriction". An empty string
// behaves the same way.
const Sentinel = "all"

// Predicate decides whether an item matches a filter value. Predicates
// must treat missing fields as non-matching, never panic.
type Predicate[T any] func(item T, value string) bool

// Engine holds one table's view state: the full collection, active filter
// values, the search term, an optional date range, and the page window.
type Engine[T any] struct {
	items      []T
	predicates map[string]Predicate[T]
	filters    map[string]string

	search       string
	searchFields func(T) []string

	dateOf     func(T) time.Time
	start, end *time.Time

	page     int
	pageSize int
}

// New returns an engine with the given page size and no filters.
// A non-positive pageSize falls back to 10.
func New[T any](pageSize int) *Engine[T] {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Engine[T]{
		predicates: make(map[string]Predicate[T]),
		filters:    make(map[string]string),
		page:       1,
		pageSize:   pageSize,
	}
}

// Predicate registers a named filter predicate.
func (e *Engine[T]) Predicate(name string, p Predicate[T]) {
	e.predicates[name] = p
}

// SearchFields sets the string fields the search term matches against.
func (e *Engine[T]) SearchFields(fn func(T) []string) {
	e.searchFields = fn
}

// DateField enables date-range filtering using the given accessor.
func (e *Engine[T]) DateField(fn func(T) time.Time) {
	e.dateOf = fn
}

// SetItems replaces the collection. The page resets to 1 only when the new
// filtered length leaves it out of range.
func (e *Engine[T]) SetItems(items []T) {
	e.items = items
	e.reconcilePage()
}

// SetFilter sets a named filter value and restarts pagination at page 1.
func (e *Engine[T]) SetFilter(name, value string) {
	e.filters[name] = value
	e.page = 1
}

// Filter returns the current value of a named filter ("" when unset).
func (e *Engine[T]) Filter(name string) string { return e.filters[name] }

// SetSearch sets the search term and restarts pagination at page 1.
func (e *Engine[T]) SetSearch(term string) {
	e.search = term
	e.page = 1
}

// Search returns the current search term.
func (e *Engine[T]) Search() string { return e.search }

// SetDateRange sets the closed date interval. Either bound nil disables
// the date filter entirely. Restarts pagination at page 1.
func (e *Engine[T]) SetDateRange(start, end *time.Time) {
	e.start, e.end = start, end
	e.page = 1
}

// SetPage navigates to page n. Requests outside [1, TotalPages] are
// ignored — the pager only ever offers valid pages.
func (e *Engine[T]) SetPage(n int) {
	if n >= 1 && n <= e.TotalPages() {
		e.page = n
	}
}

// Page returns the current page (1-based).
func (e *Engine[T]) Page() int { return e.page }

// SetPageSize changes the window size and restarts pagination at page 1.
func (e *Engine[T]) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	e.pageSize = n
	e.page = 1
}

// PageSize returns the current window size.
func (e *Engine[T]) PageSize() int { return e.pageSize }

// Filtered returns the items matching the search term, every active
// filter, and the date range. Filters compose with logical AND.
func (e *Engine[T]) Filtered() []T {
	out := make([]T, 0, len(e.items))
	term := strings.ToLower(e.search)
	for _, item := range e.items {
		if !e.matchesSearch(item, term) {
			continue
		}
		if !e.matchesFilters(item) {
			continue
		}
		if !e.matchesDateRange(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// TotalPages is ceil(len(filtered)/pageSize), never below 1.
func (e *Engine[T]) TotalPages() int {
	n := (len(e.Filtered()) + e.pageSize - 1) / e.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Visible returns the current page window of the filtered collection.
// Out-of-range windows yield an empty slice, never a panic.
func (e *Engine[T]) Visible() []T {
	filtered := e.Filtered()
	lo := (e.page - 1) * e.pageSize
	if lo >= len(filtered) || lo < 0 {
		return nil
	}
	hi := lo + e.pageSize
	if hi > len(filtered) {
		hi = len(filtered)
	}
	return filtered[lo:hi]
}

func (e *Engine[T]) matchesSearch(item T, term string) bool {
	if term == "" || e.searchFields == nil {
		return true
	}
	for _, field := range e.searchFields(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) matchesFilters(item T) bool {
	for name, value := range e.filters {
		if value == "" || value == Sentinel {
			continue
		}
		p, ok := e.predicates[name]
		if !ok {
			continue
		}
		if !p(item, value) {
			return false
		}
	}
	return true
}

func (e *Engine[T]) matchesDateRange(item T) bool {
	if e.dateOf == nil || e.start == nil || e.end == nil {
		return true
	}
	day := truncate(e.dateOf(item))
	return !day.Before(truncate(*e.start)) && !day.After(truncate(*e.end))
}

// reconcilePage resets to page 1 whenever the current page fell out of
// [1, TotalPages]. Never clamps to the last page.
func (e *Engine[T]) reconcilePage() {
	if e.page < 1 || e.page > e.TotalPages() {
		e.page = 1
	}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
