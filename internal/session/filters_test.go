package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meufuturo/futuro/internal/model"
)

func strPtr(s string) *string                      { return &s }
func typePtr(t model.TypeFilter) *model.TypeFilter { return &t }

func TestUpdateFilters_ResetsPageExceptForSort(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	s.SetPage(4)
	require.Eventually(t, func() bool { return client.listCallCount() >= 1 }, time.Second, 5*time.Millisecond)

	// narrowing change goes back to page 1
	s.UpdateFilters(model.FilterUpdate{Type: typePtr(model.FilterExpense)})
	require.Eventually(t, func() bool { return client.listCallCount() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, client.lastListCall().Page)

	s.SetPage(3)
	require.Eventually(t, func() bool { return client.listCallCount() >= 3 }, time.Second, 5*time.Millisecond)

	// sort-only change keeps the page
	sortBy := model.SortByAmount
	s.UpdateFilters(model.FilterUpdate{SortBy: &sortBy})
	require.Eventually(t, func() bool { return client.listCallCount() >= 4 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 3, client.lastListCall().Page)
}

func TestUpdateFilters_DebounceCoalescesBursts(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	// keystroke burst: only the trailing edge should fetch
	for _, q := range []string{"m", "me", "mer", "merc", "merca"} {
		s.UpdateFilters(model.FilterUpdate{Search: strPtr(q)})
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return client.listCallCount() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 1, client.listCallCount())
	assert.Equal(t, "merca", client.lastListCall().Filters.Search)
}

func TestClearFilters_Idempotent(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	s.UpdateFilters(model.FilterUpdate{Search: strPtr("luz"), Type: typePtr(model.FilterIncome)})
	assert.True(t, s.HasActiveFilters())
	assert.Equal(t, 2, s.ActiveFiltersCount())

	s.ClearFilters()
	first := s.Filters()
	s.ClearFilters()
	second := s.Filters()

	assert.Equal(t, first, second)
	assert.False(t, s.HasActiveFilters())
	assert.Equal(t, 0, s.ActiveFiltersCount())
}

func TestNextPrevPage_RespectBounds(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	// nothing loaded yet, so there is no next page to go to
	s.NextPage()
	s.PrevPage()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, client.listCallCount())
}

func TestUpdateFilters_NoOpDoesNotFetch(t *testing.T) {
	client := &fakeClient{}
	s := newTestSession(t, client)

	s.UpdateFilters(model.FilterUpdate{Type: typePtr(model.FilterAll)})
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, 0, client.listCallCount())
}
