package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shellprobe/knownfolders"
	"github.com/shellprobe/knownfolders/owner"
	"github.com/shellprobe/knownfolders/query"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2D7D9A")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2D7D9A"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	err      error
	svc      knownfolders.Service
	opts     knownfolders.Options
	records  []knownfolders.Record
	visible  []int
	filter   textinput.Model
	selected int
	state    browseState
}

type browseState int

const (
	stateList browseState = iota
	stateFilter
	stateDetail
)

type loadedMsg struct {
	err     error
	records []knownfolders.Record
}

func newBrowseModel(svc knownfolders.Service, opts knownfolders.Options) *browseModel {
	filter := textinput.New()
	filter.Placeholder = "filter by name"
	filter.Prompt = "/ "
	filter.Width = 40
	return &browseModel{
		svc:    svc,
		opts:   opts,
		filter: filter,
		state:  stateList,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadRecords
}

// loadRecords runs the whole enumeration under a session scoped to
// this one message.
func (m *browseModel) loadRecords() tea.Msg {
	sess, err := owner.OpenSession(m.svc)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer sess.Close()

	records, err := query.Enumerate(sess, m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return loadedMsg{records: records}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "enter", "esc":
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.filter.Blur()
				m.state = stateList
				m.applyFilter()
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateList {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateList:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateList
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.applyFilter()
	}

	return m, nil
}

func (m *browseModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, r := range m.records {
		if needle == "" || strings.Contains(strings.ToLower(r.Name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.records == nil {
		return "Loading known folders..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Known Folders"))
	b.WriteString(fmt.Sprintf("  %d registered, %d shown\n\n", len(m.records), len(m.visible)))

	if m.state == stateDetail {
		r := m.records[m.visible[m.selected]]
		b.WriteString(nameStyle.Render(r.Name))
		b.WriteString("\n\n")
		if r.Err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("path unavailable: %v", r.Err)))
		} else {
			b.WriteString(pathStyle.Render(r.Path))
		}
		b.WriteString(fmt.Sprintf("\n\nquery options: %#08x\n\n", uint32(m.opts)))
		b.WriteString(helpStyle.Render("enter/esc back • q quit"))
		return b.String()
	}

	if m.state == stateFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	for pos, i := range m.visible {
		r := m.records[i]
		item := pathStyle.Render(r.Path)
		if r.Err != nil {
			item = errorStyle.Render("[unavailable]")
		}
		line := nameStyle.Render(r.Name) + "  " + item
		if pos == m.selected && m.state == stateList {
			b.WriteString(selectedStyle.Render("> "))
			b.WriteString(line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter detail • / filter • q quit"))

	return b.String()
}

func browse(svc knownfolders.Service, opts knownfolders.Options) error {
	p := tea.NewProgram(newBrowseModel(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
