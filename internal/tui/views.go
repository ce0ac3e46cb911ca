package tui

import (
	"fmt"
	"strings"

	"hbudget/internal/cli"

	"github.com/charmbracelet/lipgloss"
)

// Theme shared with the non-interactive reports.
var (
	colorAccent = cli.ColorAccent

	tabStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextMuted).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorAccent).
			Padding(0, 2).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.ColorTextDim)

	errorStyle = lipgloss.NewStyle().
			Foreground(cli.ColorRed)

	rowStyle = lipgloss.NewStyle().
			Foreground(cli.ColorText)

	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorYellow)
)

func (a *App) viewTabBar() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if i == a.activeTab {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

// visibleLines clips a rendered block to the terminal height, honoring
// the scroll offset.
func (a *App) visibleLines(lines []string) string {
	avail := a.height - 5 // tab bar + help line + margins
	if avail < 1 {
		avail = 1
	}

	offset := a.scroll
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	a.scroll = offset

	end := offset + avail
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func (a *App) viewLedger() string {
	if len(a.items) == 0 {
		return helpStyle.Render("  No budget items.")
	}

	lines := make([]string, 0, len(a.items)+1)
	lines = append(lines, groupStyle.Render(fmt.Sprintf("  %-12s %-18s %-30s %12s %12s",
		"Date", "Category", "Description", "Amount", "Balance")))
	for _, item := range a.items {
		lines = append(lines, rowStyle.Render(fmt.Sprintf("  %-12s %-18s %-30s %12s %12s",
			cli.FormatDate(item.Date),
			cli.Truncate(item.Category, 18),
			cli.Truncate(item.ShortDescription, 30),
			cli.FormatMoney(item.Amount),
			cli.FormatMoney(item.Balance),
		)))
	}
	return a.visibleLines(lines)
}

func (a *App) viewMonths() string {
	if len(a.months) == 0 {
		return helpStyle.Render("  No budget items.")
	}

	var lines []string
	for _, m := range a.months {
		lines = append(lines, groupStyle.Render(fmt.Sprintf("  %s  (total %s)", m.Month, cli.FormatMoney(m.Total))))
		for _, item := range m.Details {
			lines = append(lines, rowStyle.Render(fmt.Sprintf("    %-12s %-30s %12s",
				cli.FormatDate(item.Date),
				cli.Truncate(item.ShortDescription, 30),
				cli.FormatMoney(item.Amount),
			)))
		}
		lines = append(lines, "")
	}
	return a.visibleLines(lines)
}

func (a *App) viewCategories() string {
	if len(a.categories) == 0 {
		return helpStyle.Render("  No budget items.")
	}

	var lines []string
	for _, g := range a.categories {
		lines = append(lines, groupStyle.Render(fmt.Sprintf("  %s  (total %s)", g.Category, cli.FormatMoney(g.Total))))
		for _, item := range g.Details {
			lines = append(lines, rowStyle.Render(fmt.Sprintf("    %-12s %-30s %12s",
				cli.FormatDate(item.Date),
				cli.Truncate(item.ShortDescription, 30),
				cli.FormatMoney(item.Amount),
			)))
		}
		lines = append(lines, "")
	}
	return a.visibleLines(lines)
}
