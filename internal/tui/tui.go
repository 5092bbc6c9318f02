// Package tui provides a Bubble Tea terminal user interface for browsing the
// artwork catalog.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	bubbletable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/artic-table/internal/config"
	"github.com/handiism/artic-table/internal/model"
	"github.com/handiism/artic-table/internal/table"
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

// noteQueue collects controller notifications until Update drains them.
// It is shared by every copy of the Model.
type noteQueue struct {
	mu    sync.Mutex
	notes []table.Notification
}

func (q *noteQueue) push(n table.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notes = append(q.notes, n)
}

func (q *noteQueue) drain() []table.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	notes := q.notes
	q.notes = nil
	return notes
}

// toast is a notification on screen.
type toast struct {
	id   int
	note table.Notification
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctx      context.Context
	ctrl     *table.Controller
	settings *config.Settings

	grid    bubbletable.Model
	spinner spinner.Model
	input   textinput.Model
	help    help.Model
	keys    keyMap

	notes     *noteQueue
	toasts    []toast
	nextToast int

	// overlay is the "select first N" input surface.
	overlay     bool
	bulkRunning bool

	width  int
	height int
}

// NewModel creates a new TUI model backed by fetcher.
func NewModel(ctx context.Context, settings *config.Settings, fetcher table.Fetcher) Model {
	notes := &noteQueue{}

	ti := textinput.New()
	ti.Placeholder = "Select rows..."
	ti.CharLimit = 9
	ti.Width = 16

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	grid := bubbletable.New(
		bubbletable.WithColumns(columnsFor(0)),
		bubbletable.WithFocused(true),
		bubbletable.WithHeight(settings.PageSize+1),
	)
	styles := bubbletable.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#1B1B1B")).
		Background(lipgloss.Color("#A8DADC"))
	grid.SetStyles(styles)

	return Model{
		ctx:      ctx,
		ctrl:     table.NewController(fetcher, settings.PageSize, notes.push),
		settings: settings,
		grid:     grid,
		spinner:  sp,
		input:    ti,
		help:     help.New(),
		keys:     defaultKeyMap(),
		notes:    notes,
	}
}

// Init initializes the model and loads the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startLoad())
}

// Message types
type (
	// loadDoneMsg carries the outcome of a page load.
	loadDoneMsg struct {
		Result table.LoadResult
	}

	// bulkDoneMsg carries the outcome of a bulk selection.
	bulkDoneMsg struct {
		Result table.BulkResult
	}

	// toastExpiredMsg removes a toast.
	toastExpiredMsg struct {
		ID int
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.grid.SetColumns(columnsFor(msg.Width))
		m.grid.SetWidth(msg.Width)
		m.grid.SetHeight(max(msg.Height-12, 5))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.overlay) {
			return m, tea.Quit
		}
		if m.overlay {
			return m.updateOverlay(msg)
		}
		return m.updateTable(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case loadDoneMsg:
		prevFirst := m.firstRowID()
		if m.ctrl.ApplyLoad(msg.Result) {
			m.syncRows()
			if m.firstRowID() != prevFirst {
				m.grid.SetCursor(0)
			}
		}

	case bulkDoneMsg:
		m.ctrl.CommitBulkSelect(msg.Result)
		m.bulkRunning = false
		m.overlay = false
		m.input.Blur()
		m.syncRows()

	case toastExpiredMsg:
		for i, t := range m.toasts {
			if t.id == msg.ID {
				m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
				break
			}
		}
	}

	cmds = append(cmds, m.drainNotes()...)
	return m, tea.Batch(cmds...)
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.PrevPage):
		if m.ctrl.SetPage(st.Page - 1) {
			return m, m.startLoad()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.ctrl.SetPage(st.Page + 1) {
			return m, m.startLoad()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		if m.ctrl.SetRowsPerPage(m.settings.NextPageSize(st.RowsPerPage)) {
			return m, m.startLoad()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad()

	case key.Matches(msg, m.keys.ToggleRow):
		cursor := m.grid.Cursor()
		if cursor >= 0 && cursor < len(st.Rows) {
			m.ctrl.ToggleRow(st.Rows[cursor].ID)
			m.syncRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.TogglePage):
		m.ctrl.TogglePage()
		m.syncRows()
		return m, nil

	case key.Matches(msg, m.keys.SelectN):
		m.overlay = true
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.overlay = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.bulkRunning {
			return m, nil
		}
		n := parseCount(m.input.Value(), m.ctrl.State().TotalRecords)
		plan, ok := m.ctrl.PlanBulkSelect(n)
		if !ok {
			return m, nil
		}
		m.input.SetValue(strconv.Itoa(n))
		m.bulkRunning = true
		return m, m.runBulk(plan)
	}

	if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startLoad begins a load cycle and returns the command that fetches it.
func (m Model) startLoad() tea.Cmd {
	req := m.ctrl.BeginLoad()
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return loadDoneMsg{Result: ctrl.Load(ctx, req)}
	}
}

// runBulk runs a bulk selection off the UI goroutine.
func (m Model) runBulk(plan table.BulkPlan) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return bulkDoneMsg{Result: ctrl.RunBulkSelect(ctx, plan)}
	}
}

// drainNotes turns pending notifications into toasts and schedules their
// expiry.
func (m *Model) drainNotes() []tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.notes.drain() {
		m.nextToast++
		id := m.nextToast
		m.toasts = append(m.toasts, toast{id: id, note: n})
		cmds = append(cmds, tea.Tick(m.settings.NotificationTTL(), func(_ time.Time) tea.Msg {
			return toastExpiredMsg{ID: id}
		}))
	}
	return cmds
}

// syncRows copies the controller rows into the grid.
func (m *Model) syncRows() {
	st := m.ctrl.State()
	rows := make([]bubbletable.Row, len(st.Rows))
	for i, a := range st.Rows {
		box := uncheckedBox
		if m.ctrl.IsSelected(a.ID) {
			box = checkedBox
		}
		rows[i] = append(bubbletable.Row{box}, a.Cells()...)
	}
	m.grid.SetRows(rows)
	if c := m.grid.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.grid.SetCursor(len(rows) - 1)
	}
}

func (m Model) firstRowID() int {
	st := m.ctrl.State()
	if len(st.Rows) == 0 {
		return 0
	}
	return st.Rows[0].ID
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder
	st := m.ctrl.State()

	// Header
	b.WriteString(titleStyle.Render("Art Institute of Chicago · Artworks"))
	b.WriteString("\n")

	b.WriteString(m.grid.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewPager(st))
	b.WriteString("\n")

	if m.overlay {
		b.WriteString(m.viewOverlay(st))
		b.WriteString("\n")
	}

	b.WriteString(m.renderToasts())

	// Footer
	b.WriteString("\n")
	if m.overlay {
		b.WriteString(m.help.View(overlayKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

func (m Model) viewPager(st table.State) string {
	var b strings.Builder

	pages := st.PageCount()
	if st.Loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}

	if st.TotalRecords == 0 {
		b.WriteString(dimStyle.Render("No records"))
	} else {
		first := st.First() + 1
		last := min(st.First()+len(st.Rows), st.TotalRecords)
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("‹ page %d/%d ›", st.Page+1, pages)))
		b.WriteString(infoStyle.Render(fmt.Sprintf("  rows %d–%d of %d · %d per page", first, last, st.TotalRecords, st.RowsPerPage)))
	}

	if st.Selected > 0 {
		b.WriteString(selectedCountStyle.Render(fmt.Sprintf("  · %d selected", st.Selected)))
	}

	return b.String()
}

func (m Model) viewOverlay(st table.State) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Select first N rows"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	n := parseCount(m.input.Value(), st.TotalRecords)
	switch {
	case m.bulkRunning:
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" selecting..."))
	case n <= 0:
		b.WriteString(dimStyle.Render("[submit]"))
	default:
		b.WriteString(successStyle.Render(fmt.Sprintf("[submit] %d rows", n)))
	}

	return boxStyle.Render(b.String())
}

func (m Model) renderToasts() string {
	var b strings.Builder

	for _, t := range m.toasts {
		var (
			style  lipgloss.Style
			prefix string
		)
		switch t.note.Level {
		case table.LevelError:
			style = errorStyle
			prefix = "✗"
		default:
			style = infoStyle
			prefix = "›"
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s: %s", prefix, t.note.Summary, t.note.Detail)))
		b.WriteString("\n")
	}

	return b.String()
}

// columnsFor sizes the grid columns for a terminal width. A width of 0
// uses defaults for an 120-column terminal.
func columnsFor(width int) []bubbletable.Column {
	if width <= 0 {
		width = 120
	}

	const (
		checkbox = 3
		year     = 10
		// per-column padding of the default cell style
		padding = 2
	)
	flexible := width - checkbox - 2*year - len(model.Columns)*padding - padding
	if flexible < 40 {
		flexible = 40
	}

	return []bubbletable.Column{
		{Title: "", Width: checkbox},
		{Title: model.Columns[0], Width: flexible * 30 / 100},
		{Title: model.Columns[1], Width: flexible * 15 / 100},
		{Title: model.Columns[2], Width: flexible * 30 / 100},
		{Title: model.Columns[3], Width: flexible * 25 / 100},
		{Title: model.Columns[4], Width: year},
		{Title: model.Columns[5], Width: year},
	}
}

// parseCount reads the bulk selection count, clamped to [0, limit] when
// limit is known.
func parseCount(s string, limit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if limit > 0 && n > limit {
		return limit
	}
	return n
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Run starts the TUI application and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, settings *config.Settings, fetcher table.Fetcher) error {
	p := tea.NewProgram(NewModel(ctx, settings, fetcher), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
