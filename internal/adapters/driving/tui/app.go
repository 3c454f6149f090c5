// Package tui provides an interactive terminal view over the snapshot
// service: per-agency statistics, the document list and the historical
// series, refreshing automatically when the snapshot file changes.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driving"
)

// viewTab identifies the active tab.
type viewTab int

const (
	tabStatistics viewTab = iota
	tabDocuments
	tabHistorical
)

var tabNames = []string{"Statistics", "Documents", "Historical"}

// Messages.
type snapshotLoadedMsg struct {
	snapshot *domain.Snapshot
	history  []domain.HistoricalChange
}

type snapshotChangedMsg struct{}

type refreshDoneMsg struct{ err error }

type errMsg struct{ err error }

// App is the TUI model following the Elm architecture.
type App struct {
	ctx     context.Context
	service driving.SnapshotService
	styles  *Styles

	tab      viewTab
	snapshot *domain.Snapshot
	history  []domain.HistoricalChange
	tables   [3]table.Model

	watch   <-chan struct{}
	spinner spinner.Model
	loading bool
	err     error
	width   int
	height  int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application over the snapshot service.
func NewApp(ctx context.Context, service driving.SnapshotService) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	app := &App{
		ctx:     ctx,
		service: service,
		styles:  DefaultStyles(),
		spinner: sp,
		loading: true,
	}
	app.tables[tabStatistics] = newTable([]table.Column{
		{Title: "Agency", Width: 44},
		{Title: "Documents", Width: 10},
		{Title: "Checksum", Width: 14},
	})
	app.tables[tabDocuments] = newTable([]table.Column{
		{Title: "Title", Width: 40},
		{Title: "Agency", Width: 28},
		{Title: "Citation", Width: 18},
	})
	app.tables[tabHistorical] = newTable([]table.Column{
		{Title: "Date", Width: 17},
		{Title: "Agency", Width: 40},
		{Title: "Documents", Width: 10},
	})
	return app
}

func newTable(cols []table.Column) table.Model {
	t := table.New(table.WithColumns(cols), table.WithFocused(true))
	return t
}

// Init loads the snapshot and starts the file watch.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd(), a.watchCmd())
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for i := range a.tables {
			a.tables[i].SetHeight(max(4, a.height-7))
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "right":
			a.tab = (a.tab + 1) % 3
			return a, nil
		case "shift+tab", "left":
			a.tab = (a.tab + 2) % 3
			return a, nil
		case "1", "2", "3":
			n, _ := strconv.Atoi(msg.String())
			a.tab = viewTab(n - 1)
			return a, nil
		case "r":
			if !a.loading {
				a.loading = true
				a.err = nil
				return a, tea.Batch(a.spinner.Tick, a.refreshCmd())
			}
			return a, nil
		}

	case snapshotLoadedMsg:
		a.loading = false
		a.snapshot = msg.snapshot
		a.history = msg.history
		a.populateTables()
		return a, nil

	case snapshotChangedMsg:
		// Another process rewrote the snapshot file; reload and keep
		// listening.
		return a, tea.Batch(a.loadCmd(), a.watchCmd())

	case refreshDoneMsg:
		if msg.err != nil {
			a.loading = false
			a.err = msg.err
			return a, nil
		}
		return a, a.loadCmd()

	case errMsg:
		a.loading = false
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.tables[a.tab], cmd = a.tables[a.tab].Update(msg)
	return a, cmd
}

// View renders the active tab.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("regsnap"))
	b.WriteString("  ")
	for i, name := range tabNames {
		if viewTab(i) == a.tab {
			b.WriteString(a.styles.TabActive.Render(name))
		} else {
			b.WriteString(a.styles.Tab.Render(name))
		}
	}
	b.WriteString("\n\n")

	switch {
	case a.loading:
		b.WriteString(a.spinner.View() + " Loading…\n")
	case a.err != nil:
		b.WriteString(a.styles.Error.Render("Error: "+a.err.Error()) + "\n")
	case a.snapshot == nil && a.tab != tabHistorical:
		b.WriteString("No snapshot yet. Press r to fetch.\n")
	default:
		b.WriteString(a.tables[a.tab].View() + "\n")
		b.WriteString(a.styles.Status.Render(a.statusLine()) + "\n")
	}

	b.WriteString(a.styles.Help.Render("tab: switch • r: refresh • q: quit"))
	return b.String()
}

func (a *App) statusLine() string {
	switch a.tab {
	case tabHistorical:
		return fmt.Sprintf("%d historical entries", len(a.history))
	default:
		if a.snapshot == nil {
			return ""
		}
		return fmt.Sprintf("%d documents, %d agencies, fetched %s",
			len(a.snapshot.Documents), len(a.snapshot.Statistics),
			a.snapshot.FetchedAt.Format("2006-01-02 15:04:05"))
	}
}

func (a *App) populateTables() {
	var statRows []table.Row
	var docRows []table.Row
	if a.snapshot != nil {
		for _, stat := range a.snapshot.Statistics {
			statRows = append(statRows, table.Row{
				stat.AgencyName,
				strconv.Itoa(stat.DocumentCount),
				stat.Checksum[:12],
			})
		}
		for _, doc := range a.snapshot.Documents {
			title := doc.Title
			if title == "" {
				title = doc.DocumentNumber
			}
			docRows = append(docRows, table.Row{title, doc.AgencyName, doc.Citation})
		}
	}
	a.tables[tabStatistics].SetRows(statRows)
	a.tables[tabDocuments].SetRows(docRows)

	var histRows []table.Row
	for _, entry := range a.history {
		histRows = append(histRows, table.Row{
			entry.Date.Format("2006-01-02 15:04"),
			entry.AgencyName,
			strconv.Itoa(entry.DocumentCount),
		})
	}
	a.tables[tabHistorical].SetRows(histRows)
}

// loadCmd reads the current snapshot and history.
func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := a.service.Load(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		history, err := a.service.Historical(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return snapshotLoadedMsg{snapshot: snapshot, history: history}
	}
}

// refreshCmd triggers a full fetch-and-save.
func (a *App) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := a.service.Refresh(a.ctx, 0)
		return refreshDoneMsg{err: err}
	}
}

// watchCmd waits for one external snapshot change. Stores without
// change detection disable live refresh silently.
func (a *App) watchCmd() tea.Cmd {
	if a.watch == nil {
		ch, err := a.service.Watch(a.ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNotImplemented) {
				return nil
			}
			return func() tea.Msg { return errMsg{err} }
		}
		a.watch = ch
	}
	watch := a.watch
	return func() tea.Msg {
		if _, ok := <-watch; !ok {
			return nil
		}
		return snapshotChangedMsg{}
	}
}
