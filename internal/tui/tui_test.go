package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/artic-table/internal/artic"
	"github.com/handiism/artic-table/internal/config"
	ihttp "github.com/handiism/artic-table/internal/http"
	"github.com/handiism/artic-table/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, total int) (Model, *testutil.FakeCatalog) {
	t.Helper()
	catalog := testutil.NewFakeCatalog(total)
	t.Cleanup(catalog.Close)

	settings := config.DefaultSettings()
	require.NoError(t, settings.Validate())
	fetcher := artic.NewFetcher(ihttp.NewClient("test", 5*time.Second), catalog.URL())

	m := NewModel(context.Background(), settings, fetcher)
	m = apply(t, m, m.startLoad()())
	return m, catalog
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// press sends a key and drops the returned command.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	return apply(t, m, msg)
}

// pressAndRun sends a key and, when it returns a page load or bulk
// selection command, runs it and feeds the result back.
func pressAndRun(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case loadDoneMsg, bulkDoneMsg:
		m = apply(t, m, out)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialLoad(t *testing.T) {
	m, catalog := newTestModel(t, 50)

	st := m.ctrl.State()
	assert.Len(t, st.Rows, 12)
	assert.Equal(t, 50, st.TotalRecords)
	assert.Equal(t, []int{1}, catalog.Pages())

	view := m.View()
	assert.Contains(t, view, "Artwork 1")
	assert.Contains(t, view, "page 1/5")
	assert.Contains(t, view, "rows 1–12 of 50")
}

func TestModel_Navigation(t *testing.T) {
	m, catalog := newTestModel(t, 50)

	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.ctrl.State().Page)
	assert.Contains(t, m.View(), "Artwork 13")

	m = pressAndRun(t, m, runes("h"))
	assert.Equal(t, 0, m.ctrl.State().Page)

	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, []int{1, 2, 1}, catalog.Pages(), "no load before the first page")
}

func TestModel_PageSizeCycle(t *testing.T) {
	m, catalog := newTestModel(t, 50)

	m = pressAndRun(t, m, runes("s"))

	st := m.ctrl.State()
	assert.Equal(t, 24, st.RowsPerPage)
	assert.Len(t, st.Rows, 24)
	reqs := catalog.Requests()
	assert.Equal(t, 24, reqs[len(reqs)-1].Limit)
}

func TestModel_ToggleRowAndPage(t *testing.T) {
	m, _ := newTestModel(t, 50)

	m = press(t, m, runes(" "))
	assert.True(t, m.ctrl.IsSelected(testutil.ID(0)))
	assert.Contains(t, m.View(), "1 selected")

	m = press(t, m, runes("a"))
	assert.Equal(t, 12, m.ctrl.State().Selected)

	m = press(t, m, runes("a"))
	assert.Equal(t, 0, m.ctrl.State().Selected)
}

func TestModel_BulkSelect(t *testing.T) {
	m, catalog := newTestModel(t, 50)
	catalog.ResetRequests()

	m = press(t, m, runes("n"))
	require.True(t, m.overlay)

	m = press(t, m, runes("2"))
	m = press(t, m, runes("x"))
	m = press(t, m, runes("5"))
	assert.Equal(t, "25", m.input.Value(), "non-digits are ignored")

	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.overlay, "overlay closes after commit")
	assert.False(t, m.bulkRunning)
	assert.Len(t, m.ctrl.SelectedIDs(), 25)
	assert.Equal(t, []int{1, 2, 3}, catalog.Pages())
}

func TestModel_BulkSelect_ClampedToTotal(t *testing.T) {
	m, _ := newTestModel(t, 30)

	m = press(t, m, runes("n"))
	m = press(t, m, runes("1000"))
	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Len(t, m.ctrl.SelectedIDs(), 30)
	assert.Equal(t, "30", m.input.Value())
}

func TestModel_BulkSelect_ZeroIsDisabled(t *testing.T) {
	m, catalog := newTestModel(t, 50)
	catalog.ResetRequests()

	m = press(t, m, runes("n"))
	m = press(t, m, runes("0"))
	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.overlay, "submit is disabled")
	assert.Empty(t, catalog.Requests())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlay)
}

func TestModel_LoadErrorShowsToast(t *testing.T) {
	m, catalog := newTestModel(t, 50)
	catalog.FailPage(2, http.StatusInternalServerError)

	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyRight})

	require.Len(t, m.toasts, 1)
	view := m.View()
	assert.Contains(t, view, "Failed to fetch artworks.")
	assert.Contains(t, view, "Artwork 1", "previous rows stay on screen")

	m = apply(t, m, toastExpiredMsg{ID: m.toasts[0].id})
	assert.Empty(t, m.toasts)
}

func TestModel_StaleLoadIgnored(t *testing.T) {
	m, _ := newTestModel(t, 50)

	stale := m.startLoad()
	m = pressAndRun(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = apply(t, m, stale())

	assert.Contains(t, m.View(), "Artwork 13")
	assert.NotContains(t, m.View(), "Artwork 1 ")
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t, 5)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = press(t, m, runes("n"))
	_, cmd = m.Update(runes("q"))
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd(), "q is ignored while typing")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input string
		limit int
		want  int
	}{
		{"", 50, 0},
		{"abc", 50, 0},
		{"-4", 50, 0},
		{"25", 50, 25},
		{"1000", 50, 50},
		{"1000", 0, 1000},
		{" 7 ", 50, 7},
	}

	for _, tt := range tests {
		if got := parseCount(tt.input, tt.limit); got != tt.want {
			t.Errorf("parseCount(%q, %d) = %d, want %d", tt.input, tt.limit, got, tt.want)
		}
	}
}

func TestColumnsFor(t *testing.T) {
	cols := columnsFor(0)
	require.Len(t, cols, 7)
	assert.Equal(t, "Title", cols[1].Title)
	assert.Equal(t, "Date End", cols[6].Title)

	for _, c := range columnsFor(30) {
		assert.Positive(t, c.Width)
	}
}
