// Package tui provides the interactive Bubble Tea budget browser.
package tui

import (
	"fmt"

	"hbudget/internal/budget"
	"hbudget/internal/model"
	"hbudget/internal/storage"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the budget file has been read.
type DataLoadedMsg struct {
	Items      []model.BudgetItem
	Months     []model.BudgetItemsByMonth
	Categories []model.BudgetItemsByCategory
}

// LoadErrorMsg is sent when the budget file could not be read.
type LoadErrorMsg struct {
	Err error
}

const (
	tabLedger = iota
	tabMonths
	tabCategories
	tabCount
)

var tabNames = [tabCount]string{"Ledger", "Months", "Categories"}

// App is the root Bubble Tea model.
type App struct {
	budgetFile string

	items      []model.BudgetItem
	months     []model.BudgetItemsByMonth
	categories []model.BudgetItemsByCategory
	loaded     bool
	loadErr    error

	width     int
	height    int
	activeTab int
	scroll    int

	spinner spinner.Model
}

// NewApp builds the dashboard for the given budget file.
func NewApp(budgetFile string) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return &App{
		budgetFile: budgetFile,
		spinner:    sp,
	}
}

// Init starts the spinner and kicks off the data load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadData())
}

// loadData reads the budget file off the UI goroutine.
func (a *App) loadData() tea.Cmd {
	path := a.budgetFile
	return func() tea.Msg {
		store, err := storage.Open(path)
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		defer func() { _ = store.Close() }()

		cats, err := store.LoadCategories()
		if err != nil {
			return LoadErrorMsg{Err: err}
		}
		exps, err := store.LoadExpenses()
		if err != nil {
			return LoadErrorMsg{Err: err}
		}

		categories := budget.NewCategories()
		categories.Replace(cats)
		expenses := budget.NewExpenses()
		expenses.Replace(exps)
		b := budget.New(categories, expenses)

		return DataLoadedMsg{
			Items:      b.GetBudgetItems(nil, nil, false, 0),
			Months:     b.GetBudgetItemsByMonth(nil, nil, false, 0),
			Categories: b.GetBudgetItemsByCategory(nil, nil, false, 0),
		}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.items = msg.Items
		a.months = msg.Months
		a.categories = msg.Categories
		a.loaded = true
		return a, nil

	case LoadErrorMsg:
		a.loadErr = msg.Err
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % tabCount
			a.scroll = 0
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			a.scroll = 0
		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
			a.scroll = 0
		case "down", "j":
			a.scroll++
		case "up", "k":
			if a.scroll > 0 {
				a.scroll--
			}
		case "g":
			a.scroll = 0
		case "r":
			a.loaded = false
			return a, tea.Batch(a.spinner.Tick, a.loadData())
		}
	}

	return a, nil
}

// View renders the dashboard.
func (a *App) View() string {
	if !a.loaded {
		return fmt.Sprintf("\n  %s Loading budget...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Could not open %s: %v\n", a.budgetFile, a.loadErr))
	}

	var body string
	switch a.activeTab {
	case tabLedger:
		body = a.viewLedger()
	case tabMonths:
		body = a.viewMonths()
	case tabCategories:
		body = a.viewCategories()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewTabBar(),
		body,
		helpStyle.Render("  tab/1-3 switch · j/k scroll · r reload · q quit"),
	)
}
