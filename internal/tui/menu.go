package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
)

type menuChoice int

const (
	menuProfile menuChoice = iota
	menuAccount
	menuLanguage
	menuAppearance
	menuDebug
	menuSignOut
	menuQuit
)

// menuItems holds the message keys of each tile's label and description.
var menuItems = []struct {
	label string
	desc  string
}{
	{"profile", "name and email"},
	{"account", "email and password"},
	{"language", "english or arabic"},
	{"appearance", "theme and layout"},
	{"debug", "stored state"},
	{"sign out", "end session"},
	{"quit", "exit"},
}

const tileWidth = 22

// menuModel is the settings home: a grid of panel tiles laid out in the
// configured number of columns.
type menuModel struct {
	cursor  int
	columns int
	version string
	lang    i18n.Lang
	flash   flash
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// signOutMsg asks the root model to clear the loggedIn flag.
type signOutMsg struct{}

func newMenuModel(version string, l i18n.Lang, columns int) menuModel {
	if columns < 1 {
		columns = 1
	}
	return menuModel{version: version, lang: l, columns: columns}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		switch msg.String() {
		case "left", "h":
			return m.move(-1), nil
		case "right", "l":
			return m.move(1), nil
		}

		if key.Matches(msg, zstyle.KeyUp) {
			return m.move(-m.columns), nil
		}
		if key.Matches(msg, zstyle.KeyDown) {
			return m.move(m.columns), nil
		}
		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}

	case flashMsg:
		m.flash = m.flash.clear(msg)
		return m, nil
	}

	return m, nil
}

// move shifts the cursor by delta, staying on the grid.
func (m menuModel) move(delta int) menuModel {
	next := m.cursor + delta
	if next < 0 || next >= len(menuItems) {
		return m
	}
	m.cursor = next
	return m
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuProfile:
		return func() tea.Msg { return navigateMsg{view: viewProfile} }
	case menuAccount:
		return func() tea.Msg { return navigateMsg{view: viewAccount} }
	case menuLanguage:
		return func() tea.Msg { return navigateMsg{view: viewLanguage} }
	case menuAppearance:
		return func() tea.Msg { return navigateMsg{view: viewAppearance} }
	case menuDebug:
		return func() tea.Msg { return navigateMsg{view: viewDebug} }
	case menuSignOut:
		return func() tea.Msg { return signOutMsg{} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) tile(i int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(tileWidth).
		Padding(0, 1)

	label := i18n.T(m.lang, menuItems[i].label)
	if i == m.cursor {
		style = style.BorderForeground(accent)
		label = zstyle.Highlight.Render(label)
	}

	desc := zstyle.MutedText.Render(i18n.T(m.lang, menuItems[i].desc))
	return style.Render(label + "\n" + desc)
}

func (m menuModel) View() string {
	var rows []string
	for start := 0; start < len(menuItems); start += m.columns {
		end := min(start+m.columns, len(menuItems))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, m.tile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	grid := lipgloss.NewStyle().MarginLeft(2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s\n\n%s\n\n", ver, grid)
	s += m.flash.render()
	return s
}
