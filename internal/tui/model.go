// Package tui is the interactive terminal search client.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baechuer/real-time-ressys/services/destination-service/internal/searchclient"
)

// Searcher is the API the terminal client talks to.
type Searcher interface {
	searchclient.Fetcher
	Random(ctx context.Context) (searchclient.Suggestion, error)
}

type resultMsg searchclient.Result

type errMsg struct {
	query string
	err   error
}

type placeholderMsg struct {
	name string
}

const placeholderTimeout = 2 * time.Second

type Model struct {
	client  Searcher
	session *searchclient.Session
	events  chan tea.Msg
	styles  *Styles

	input  textinput.Model
	items  []searchclient.Suggestion
	cursor int
	open   bool
	err    error
	chosen *searchclient.Suggestion
}

func New(client Searcher, debounce time.Duration) *Model {
	ti := textinput.New()
	ti.Placeholder = "Where to?"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	m := &Model{
		client: client,
		events: make(chan tea.Msg, 1),
		styles: DefaultStyles(),
		input:  ti,
	}
	m.session = searchclient.NewSession(client,
		searchclient.WithDebounce(debounce),
		searchclient.OnResult(func(r searchclient.Result) { m.pushLatest(resultMsg(r)) }),
		searchclient.OnError(func(q string, err error) { m.pushLatest(errMsg{query: q, err: err}) }),
	)
	return m
}

// pushLatest replaces any undelivered event with msg. It never blocks.
func (m *Model) pushLatest(msg tea.Msg) {
	for {
		select {
		case m.events <- msg:
			return
		default:
		}
		select {
		case <-m.events:
		default:
		}
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *Model) loadPlaceholder() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), placeholderTimeout)
		defer cancel()
		c, err := m.client.Random(ctx)
		if err != nil || c.Name == "" {
			return nil
		}
		return placeholderMsg{name: c.Name}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent(), m.loadPlaceholder())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		// a result queued before enter or a later keystroke no longer
		// answers what is in the box
		if m.chosen != nil || msg.Query != m.input.Value() {
			return m, m.waitForEvent()
		}
		m.items = msg.Items
		m.cursor = 0
		m.open = m.input.Focused() && len(msg.Items) > 0
		m.err = nil
		return m, m.waitForEvent()

	case tea.FocusMsg:
		return m, m.setFocused(true)

	case tea.BlurMsg:
		return m, m.setFocused(false)

	case errMsg:
		m.err = msg.err
		return m, m.waitForEvent()

	case placeholderMsg:
		m.input.Placeholder = "Try " + msg.name
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyCtrlC:
		m.session.Close()
		return m, tea.Quit

	case tea.KeyEsc:
		if m.open {
			m.open = false
			return m, nil
		}
		m.session.Close()
		return m, tea.Quit

	case tea.KeyTab:
		return m, m.setFocused(!m.input.Focused())

	case tea.KeyUp:
		if m.open && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.open && m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case tea.KeyEnter:
		if !m.open || len(m.items) == 0 {
			return m, nil
		}
		c := m.items[m.cursor]
		m.session.Select(c)
		m.input.SetValue(c.Name)
		m.input.CursorEnd()
		m.items = nil
		m.open = false
		m.chosen = &c
		return m, nil
	}

	if !m.input.Focused() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.chosen = nil
		m.session.Type(after)
	}
	return m, cmd
}

// setFocused hides the list while the input is blurred and shows the kept
// items again on refocus.
func (m *Model) setFocused(focused bool) tea.Cmd {
	m.session.SetFocused(focused)
	var cmd tea.Cmd
	if focused {
		cmd = m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.open = focused && m.chosen == nil && len(m.items) > 0
	return cmd
}

func (m *Model) View() string {
	sections := []string{
		m.styles.Title.Render("Where are you going?"),
		m.styles.Input.Render(m.input.View()),
	}

	if m.open && len(m.items) > 0 {
		lines := make([]string, 0, len(m.items))
		for i, c := range m.items {
			line := c.Flag + " " + c.Name + " " + m.styles.Muted.Render(c.Country)
			if i == m.cursor {
				lines = append(lines, m.styles.Selected.Render(line))
			} else {
				lines = append(lines, m.styles.Item.Render(line))
			}
		}
		sections = append(sections, m.styles.List.Render(strings.Join(lines, "\n")))
	}

	if m.chosen != nil {
		sections = append(sections, m.chosen.Flag+" "+m.chosen.Name+", "+m.chosen.Country)
	}

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render("error: "+m.err.Error()))
	}

	sections = append(sections, m.styles.Muted.Render("↑/↓ move • enter select • tab focus • esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Chosen is the city picked with enter, if any.
func (m *Model) Chosen() *searchclient.Suggestion {
	return m.chosen
}

// Close releases the session's timer and any request in flight.
func (m *Model) Close() {
	m.session.Close()
}
