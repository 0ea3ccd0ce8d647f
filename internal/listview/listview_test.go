package listview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name     string
	Category string
	Date     time.Time
}

func newTestEngine(items []item, pageSize int) *Engine[item] {
	e := New[item](pageSize)
	e.SearchFields(func(it item) []string { return []string{it.Name, it.Category} })
	e.Predicate("category", func(it item, value string) bool { return it.Category == value })
	e.DateField(func(it item) time.Time { return it.Date })
	e.SetItems(items)
	return e
}

func seedItems(n int) []item {
	items := make([]item, 0, n)
	for i := 0; i < n; i++ {
		category := "Grocery"
		if i%2 == 1 {
			category = "Dairy"
		}
		items = append(items, item{
			Name:     fmt.Sprintf("Item %02d", i),
			Category: category,
			Date:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		})
	}
	return items
}

func TestVisibleBoundedByPageSize(t *testing.T) {
	e := newTestEngine(seedItems(25), 10)

	assert.Len(t, e.Visible(), 10)
	assert.Equal(t, 3, e.TotalPages())

	e.SetPage(3)
	assert.Len(t, e.Visible(), 5, "last page holds the remainder")
}

func TestVisibleSubsetOfFiltered(t *testing.T) {
	e := newTestEngine(seedItems(25), 10)
	e.SetFilter("category", "Dairy")

	filtered := e.Filtered()
	for _, v := range e.Visible() {
		assert.Contains(t, filtered, v)
	}
	assert.LessOrEqual(t, len(e.Visible()), e.PageSize())
}

func TestFilterChangeResetsPage(t *testing.T) {
	e := newTestEngine(seedItems(50), 10)
	e.SetPage(4)
	require.Equal(t, 4, e.Page())

	e.SetFilter("category", "Dairy")
	assert.Equal(t, 1, e.Page())

	e.SetPage(2)
	e.SetSearch("Item")
	assert.Equal(t, 1, e.Page(), "search term change restarts pagination")
}

func TestPageSizeChangeResetsPage(t *testing.T) {
	e := newTestEngine(seedItems(50), 10)
	e.SetPage(5)

	e.SetPageSize(25)
	assert.Equal(t, 1, e.Page())
	assert.Equal(t, 2, e.TotalPages())
}

func TestTotalPagesAtLeastOne(t *testing.T) {
	e := newTestEngine(nil, 10)
	assert.Equal(t, 1, e.TotalPages())
	assert.Empty(t, e.Visible())

	e.SetFilter("category", "Nonexistent")
	assert.Equal(t, 1, e.TotalPages())
}

func TestShrinkingItemsResetsToFirstPage(t *testing.T) {
	e := newTestEngine(seedItems(50), 10)
	e.SetPage(5)

	// Collection shrinks under the engine (e.g. a refetch after deletes).
	e.SetItems(seedItems(12))
	assert.Equal(t, 1, e.Page(), "out-of-range page resets to 1, never clamps to last")
	assert.Len(t, e.Visible(), 10)
}

func TestSentinelAndEmptyFilterAreNoOps(t *testing.T) {
	items := seedItems(10)
	e := newTestEngine(items, 10)

	e.SetFilter("category", Sentinel)
	assert.Len(t, e.Filtered(), len(items))

	e.SetFilter("category", "")
	assert.Len(t, e.Filtered(), len(items))
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	e := newTestEngine(seedItems(10), 10)

	e.SetSearch("iTeM 03")
	require.Len(t, e.Filtered(), 1)
	assert.Equal(t, "Item 03", e.Filtered()[0].Name)

	e.SetSearch("dairy")
	assert.Len(t, e.Filtered(), 5, "search matches the category field too")
}

func TestFiltersComposeWithAND(t *testing.T) {
	e := newTestEngine(seedItems(10), 10)
	e.SetSearch("Item 0")
	e.SetFilter("category", "Dairy")

	for _, it := range e.Filtered() {
		assert.Equal(t, "Dairy", it.Category)
		assert.Contains(t, it.Name, "Item 0")
	}
	assert.Len(t, e.Filtered(), 5)
}

func TestDateRangeClosedInterval(t *testing.T) {
	e := newTestEngine(seedItems(10), 10)

	start := time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC) // times ignored, days compared
	end := time.Date(2025, 1, 5, 0, 0, 1, 0, time.UTC)
	e.SetDateRange(&start, &end)

	filtered := e.Filtered()
	require.Len(t, filtered, 3, "both bounds are inclusive")

	// One bound missing disables the date filter entirely.
	e.SetDateRange(&start, nil)
	assert.Len(t, e.Filtered(), 10)
}

func TestMissingFieldNeverMatches(t *testing.T) {
	items := []item{{Name: "Uncategorized"}, {Name: "Rice", Category: "Grocery"}}
	e := newTestEngine(items, 10)

	e.SetFilter("category", "Grocery")
	require.Len(t, e.Filtered(), 1)
	assert.Equal(t, "Rice", e.Filtered()[0].Name)
}

func TestSetPageIgnoresOutOfRange(t *testing.T) {
	e := newTestEngine(seedItems(15), 10)

	e.SetPage(99)
	assert.Equal(t, 1, e.Page())
	e.SetPage(0)
	assert.Equal(t, 1, e.Page())
	e.SetPage(2)
	assert.Equal(t, 2, e.Page())
}
