package tui

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

const flashTimeout = 2 * time.Second

// flashMsg clears the flash with the matching id after a timeout. A newer
// flash has a different id and survives an older tick.
type flashMsg struct{ id uint64 }

// flashSeq hands out flash ids.
var flashSeq atomic.Uint64

// flash is a transient notification shown under a form.
type flash struct {
	id   uint64
	text string
	err  bool
}

func okFlash(text string) flash  { return flash{id: flashSeq.Add(1), text: text} }
func errFlash(text string) flash { return flash{id: flashSeq.Add(1), text: text, err: true} }

// expire schedules the flashMsg that clears f.
func (f flash) expire() tea.Cmd {
	id := f.id
	return tea.Tick(flashTimeout, func(time.Time) tea.Msg {
		return flashMsg{id: id}
	})
}

// clear drops f when msg belongs to it.
func (f flash) clear(msg flashMsg) flash {
	if msg.id != f.id {
		return f
	}
	return flash{}
}

// render always returns a line so the layout does not shift.
func (f flash) render() string {
	if f.text == "" {
		return "\n"
	}
	if f.err {
		return "  " + zstyle.StatusErr.Render(f.text) + "\n"
	}
	return "  " + zstyle.StatusOK.Render(f.text) + "\n"
}

func newInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	return ti
}

// focusInput blurs every input and focuses inputs[i].
func focusInput(inputs []textinput.Model, i int) {
	for j := range inputs {
		inputs[j].Blur()
	}
	if i >= 0 && i < len(inputs) {
		inputs[i].Focus()
	}
}
