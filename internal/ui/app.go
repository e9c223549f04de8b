package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/filter"
	"github.com/prizma-news/prizma/internal/format"
)

// biasStep is how far the [ and ] keys move the bias-max threshold.
const biasStep = 5

// App is the root Bubble Tea model.
//
// App does not load feeds itself; it receives documents via FeedLoaded
// messages produced by the injected loadFeed command. The loaded item slice
// is owned by the loader and never mutated here - every control change
// re-runs the pure filter/sort pass from scratch and re-renders everything.
type App struct {
	loadFeed func() tea.Cmd
	lang     format.Lang

	items       []feed.NewsItem
	lastUpdated string
	sources     []string

	query     filter.Query
	sourceIdx int // 0 = all sources, 1..len(sources) = sources[idx-1]
	visible   []feed.NewsItem

	search    textinput.Model
	searching bool

	cursor  int
	width   int
	height  int
	ready   bool
	loading bool
	failed  bool
}

// NewApp creates the viewer. loadFeed returns a Cmd that produces a
// FeedLoaded message; lang controls date formatting and the summary line.
func NewApp(loadFeed func() tea.Cmd, lang format.Lang) App {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.CharLimit = 120

	return App{
		loadFeed: loadFeed,
		lang:     lang,
		query:    filter.NewQuery(),
		search:   ti,
	}
}

// Init triggers the single startup load.
func (a App) Init() tea.Cmd {
	if a.loadFeed != nil {
		a.loading = true
		return a.loadFeed()
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.searching {
			return a.handleSearchKey(msg)
		}
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case FeedLoaded:
		a.loading = false
		if msg.Err != nil {
			// Load failures leave the viewer interactive with an empty
			// list and the fixed failure message in the summary line.
			a.failed = true
			a.items = []feed.NewsItem{}
			a.lastUpdated = ""
			a.sources = nil
		} else {
			a.failed = false
			a.items = msg.Doc.Items
			a.lastUpdated = msg.Doc.LastUpdated
			a.sources = filter.Sources(msg.Doc.Items)
			if a.sourceIdx > len(a.sources) {
				a.sourceIdx = 0
			}
		}
		a.refilter()
		return a, nil
	}

	return a, nil
}

// handleSearchKey routes keys while the search input is focused. Every
// keystroke re-runs the filter pass over the full item list.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searching = false
		a.search.Blur()
		return a, nil
	case "esc":
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.refilter()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.refilter()
	return a, cmd
}

// handleKey processes keyboard input outside of search mode.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return *a, tea.Quit

	case "/":
		a.searching = true
		return *a, a.search.Focus()

	case "esc":
		if a.search.Value() != "" {
			a.search.SetValue("")
			a.refilter()
		}
		return *a, nil

	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return *a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return *a, nil

	case "g", "home":
		a.cursor = 0
		return *a, nil

	case "G", "end":
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}
		return *a, nil

	case "s":
		a.sourceIdx = (a.sourceIdx + 1) % (len(a.sources) + 1)
		a.refilter()
		return *a, nil

	case "S":
		a.sourceIdx--
		if a.sourceIdx < 0 {
			a.sourceIdx = len(a.sources)
		}
		a.refilter()
		return *a, nil

	case "o":
		if a.query.Sort == filter.SortBias {
			a.query.Sort = filter.SortRecency
		} else {
			a.query.Sort = filter.SortBias
		}
		a.refilter()
		return *a, nil

	case "[":
		a.query.MaxBias = format.Clamp(a.query.MaxBias-biasStep, 0, 100)
		a.refilter()
		return *a, nil

	case "]":
		a.query.MaxBias = format.Clamp(a.query.MaxBias+biasStep, 0, 100)
		a.refilter()
		return *a, nil

	case "r":
		if a.loadFeed != nil {
			a.loading = true
			return *a, a.loadFeed()
		}
		return *a, nil
	}

	return *a, nil
}

// refilter re-runs the full filter/sort pass and clamps the cursor.
func (a *App) refilter() {
	a.query.Text = a.search.Value()
	if a.sourceIdx > 0 && a.sourceIdx <= len(a.sources) {
		a.query.Source = a.sources[a.sourceIdx-1]
	} else {
		a.query.Source = ""
	}
	a.visible = filter.Apply(a.items, a.query)
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	summary := a.renderSummary()
	controls := a.renderControls()
	status := a.renderStatusBar()

	var searchBar string
	if a.searching {
		searchBar = FilterBar.Width(a.width).Render(a.search.View())
	}

	chrome := lipgloss.Height(summary) + lipgloss.Height(controls) + lipgloss.Height(status)
	if searchBar != "" {
		chrome += lipgloss.Height(searchBar)
	}
	listHeight := a.height - chrome
	if listHeight < 3 {
		listHeight = 3
	}

	cards := RenderCards(a.visible, a.cursor, a.width, listHeight, a.lang)

	parts := []string{summary, controls}
	if searchBar != "" {
		parts = append(parts, searchBar)
	}
	parts = append(parts, cards, status)
	return strings.Join(parts, "\n")
}

// renderSummary builds the line above the list: shown count plus the
// last-updated timestamp, or the fixed failure message.
func (a App) renderSummary() string {
	if a.failed {
		return ErrorStyle.Render(feed.FailedMessage)
	}
	if a.loading {
		return SummaryStyle.Render("Loading...")
	}

	line := fmt.Sprintf("%d/%d items", len(a.visible), len(a.items))
	if updated := format.Date(a.lastUpdated, a.lang); updated != "" {
		line += " · updated " + updated
	}
	return SummaryStyle.Render(line)
}

// renderControls shows the current query, source, sort mode, and bias cap.
func (a App) renderControls() string {
	source := "all"
	if a.sourceIdx > 0 && a.sourceIdx <= len(a.sources) {
		source = a.sources[a.sourceIdx-1]
	}
	text := a.search.Value()
	if text == "" {
		text = "-"
	}

	return ControlsStyle.Render(fmt.Sprintf("query %s  source %s  sort %s  bias ≤ %s",
		ControlValue.Render(text),
		ControlValue.Render(source),
		ControlValue.Render(string(a.query.Sort)),
		ControlValue.Render(fmt.Sprintf("%.0f", a.query.MaxBias))))
}

// renderStatusBar renders the bottom bar with key hints.
func (a App) renderStatusBar() string {
	keys := []string{
		StatusBarKey.Render("/") + StatusBarText.Render(":search"),
		StatusBarKey.Render("s") + StatusBarText.Render(":source"),
		StatusBarKey.Render("o") + StatusBarText.Render(":sort"),
		StatusBarKey.Render("[ ]") + StatusBarText.Render(":bias"),
		StatusBarKey.Render("j/k") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("r") + StatusBarText.Render(":reload"),
		StatusBarKey.Render("q") + StatusBarText.Render(":quit"),
	}
	hints := strings.Join(keys, " ")

	position := ""
	if len(a.visible) > 0 {
		position = fmt.Sprintf(" %d/%d ", a.cursor+1, len(a.visible))
	}

	padding := a.width - lipgloss.Width(position) - lipgloss.Width(hints)
	if padding < 0 {
		padding = 0
	}
	return StatusBar.Width(a.width).Render(position + strings.Repeat(" ", padding) + hints)
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Visible returns the currently filtered items (for testing).
func (a App) Visible() []feed.NewsItem {
	return a.visible
}

// Query returns the active filter query (for testing).
func (a App) Query() filter.Query {
	return a.query
}
