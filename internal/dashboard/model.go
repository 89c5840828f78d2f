package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/book"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the dashboard TUI.
// It manages a two-pane layout with mode-based routing and focus management.
type Model struct {
	book       *book.Book
	windowDays int

	mode      Mode
	focus     Focus
	rightView RightView
	width     int
	height    int
	viewport  viewport.Model
	help      help.Model

	browseKeys  browseKeys
	confirmKeys confirmKeys
	browse      browseState
	confirm     confirmState
	status      string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithWindowDays sets the window used by the birthdays view.
func WithWindowDays(days int) ModelOption {
	return func(m *Model) {
		if days >= 0 {
			m.windowDays = days
		}
	}
}

// NewModel creates a dashboard Model over b in browse mode with left-pane focus.
func NewModel(b *book.Book, opts ...ModelOption) Model {
	m := Model{
		book:        b,
		windowDays:  book.DefaultWindowDays,
		mode:        ModeBrowse,
		focus:       PaneLeft,
		rightView:   ViewDetail,
		viewport:    viewport.New(0, 0),
		help:        help.New(),
		browseKeys:  BrowseKeyMap(),
		confirmKeys: ConfirmKeyMap(),
		browse:      newBrowseState(b.Names()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.refreshViewport()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		m.refreshViewport()
		return m, nil

	case ContactDeletedMsg:
		m.status = fmt.Sprintf("Deleted %s", msg.Name)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == ModeConfirm {
			return m.handleConfirmKey(msg)
		}
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

// handleBrowseKey processes keys while browsing contacts.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.browseKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.browseKeys.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil

	case key.Matches(msg, m.browseKeys.Birthdays):
		if m.rightView == ViewDetail {
			m.rightView = ViewBirthdays
		} else {
			m.rightView = ViewDetail
		}
		m.refreshViewport()
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.browseKeys.Delete):
		name := m.browse.SelectedName()
		if name == "" {
			return m, nil
		}
		cs := confirmState{name: name}
		if r, ok := m.book.Find(name); ok {
			cs.phones = len(r.Phones())
		}
		m.confirm = cs
		m.mode = ModeConfirm
		m.status = ""
		return m, nil

	case key.Matches(msg, m.browseKeys.Up, m.browseKeys.Down):
		if m.focus == PaneRight {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.browse = m.browse.Update(msg)
		m.refreshViewport()
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

// handleConfirmKey processes keys on the delete confirmation screen.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Confirm):
		name := m.confirm.name
		m.book.Delete(name)
		m.browse = m.browse.withNames(m.book.Names())
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		m.refreshViewport()
		return m, func() tea.Msg { return ContactDeletedMsg{Name: name} }

	case key.Matches(msg, m.confirmKeys.Cancel):
		m.mode = ModeBrowse
		m.confirm = confirmState{}
		return m, nil
	}
	return m, nil
}

// refreshViewport re-renders the right pane content into the viewport.
func (m *Model) refreshViewport() {
	today := m.book.Today()
	switch m.rightView {
	case ViewBirthdays:
		m.viewport.SetContent(renderBirthdays(m.book.UpcomingBirthdays(m.windowDays), today, m.windowDays))
	default:
		r, _ := m.book.Find(m.browse.SelectedName())
		m.viewport.SetContent(renderDetail(r, today, m.book.LeapDay()))
	}
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// SelectedName returns the contact under the cursor.
func (m Model) SelectedName() string {
	return m.browse.SelectedName()
}

// View renders the two-pane layout with help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.browse.View(contentHeight))
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	helpView := m.help.View(HelpBindings(m.mode, m.rightView))
	if m.status != "" {
		helpView += "  " + statusText.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// viewRight renders the right pane content based on mode.
func (m Model) viewRight() string {
	if m.mode == ModeConfirm {
		return m.confirm.View()
	}
	return m.viewport.View()
}
