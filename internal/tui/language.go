package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zsettings/internal/i18n"
)

// changeLanguageMsg asks the root model to switch languages.
type changeLanguageMsg struct {
	lang i18n.Lang
}

// languageModel is an exclusive choice between the supported languages.
type languageModel struct {
	lang   i18n.Lang
	cursor int
	flash  flash
}

func newLanguageModel(l i18n.Lang) languageModel {
	m := languageModel{lang: l}
	for i, c := range i18n.Langs {
		if c == l {
			m.cursor = i
		}
	}
	return m
}

func (m languageModel) Update(msg tea.Msg) (languageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, zstyle.KeyQuit):
			return m, tea.Quit
		case key.Matches(msg, zstyle.KeyBack):
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		case key.Matches(msg, zstyle.KeyUp):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, zstyle.KeyDown):
			if m.cursor < len(i18n.Langs)-1 {
				m.cursor++
			}
		case key.Matches(msg, zstyle.KeyEnter), msg.String() == " ":
			return m.choose(i18n.Langs[m.cursor])
		}

	case flashMsg:
		m.flash = m.flash.clear(msg)
	}

	return m, nil
}

// choose emits a change only when l differs from the active language.
func (m languageModel) choose(l i18n.Lang) (languageModel, tea.Cmd) {
	if l == m.lang {
		return m, nil
	}
	return m, func() tea.Msg { return changeLanguageMsg{lang: l} }
}

func (m languageModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n", zstyle.Title.Render(i18n.T(m.lang, "language")))

	for i, l := range i18n.Langs {
		mark := "( )"
		if l == m.lang {
			mark = "(•)"
		}
		line := mark + " " + l.SelfName()
		if i == m.cursor {
			s += "  " + zstyle.Highlight.Render("> "+line) + "\n"
		} else {
			s += "    " + zstyle.MutedText.Render(line) + "\n"
		}
	}

	s += "\n" + m.flash.render()
	return s
}
