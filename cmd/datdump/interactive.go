package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/datcodec/dat"
	"github.com/wippyai/datcodec/transcoder"
)

const pageSize = 20

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateRows modelState = iota
	stateDetail
	stateJump
)

type interactiveModel struct {
	err      error
	tbl      *dat.Table
	session  *transcoder.Session
	layout   *transcoder.RecordLayout
	records  map[int]*transcoder.Record
	filename string
	table    string
	jump     textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(filename, table string, tbl *dat.Table, s *transcoder.Session, l *transcoder.RecordLayout) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "row number"
	ti.Prompt = "go to: "
	ti.Width = 20

	return &interactiveModel{
		tbl:      tbl,
		session:  s,
		layout:   l,
		records:  make(map[int]*transcoder.Record),
		filename: filename,
		table:    table,
		jump:     ti,
		state:    stateRows,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

// record decodes row i once and keeps it for redraws.
func (m *interactiveModel) record(i int) (*transcoder.Record, error) {
	if rec, ok := m.records[i]; ok {
		return rec, nil
	}
	rec, err := m.tbl.Row(m.session, m.layout, i)
	if err != nil {
		return nil, err
	}
	m.records[i] = rec
	return rec, nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateJump {
		switch key.String() {
		case "enter":
			if n, err := strconv.Atoi(strings.TrimSpace(m.jump.Value())); err == nil {
				m.moveTo(n)
			}
			m.jump.Blur()
			m.jump.SetValue("")
			m.state = stateRows
			return m, nil
		case "esc":
			m.jump.Blur()
			m.jump.SetValue("")
			m.state = stateRows
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.moveTo(m.selected - 1)

	case "down", "j":
		m.moveTo(m.selected + 1)

	case "pgup":
		m.moveTo(m.selected - pageSize)

	case "pgdown":
		m.moveTo(m.selected + pageSize)

	case "g":
		if m.state == stateRows {
			m.state = stateJump
			return m, m.jump.Focus()
		}

	case "enter":
		if m.state == stateRows && m.tbl.RowCount() > 0 {
			m.state = stateDetail
		}

	case "esc":
		m.state = stateRows
		m.err = nil
	}

	return m, nil
}

func (m *interactiveModel) moveTo(i int) {
	m.selected = max(0, min(i, m.tbl.RowCount()-1))
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("datdump"))
	fmt.Fprintf(&b, " %s  %s  %d rows x %d bytes\n\n",
		m.filename, fieldStyle.Render(m.table), m.tbl.RowCount(), m.tbl.RowWidth())

	switch m.state {
	case stateRows, stateJump:
		start := max(0, min(m.selected-pageSize/2, m.tbl.RowCount()-pageSize))
		end := min(start+pageSize, m.tbl.RowCount())
		for i := start; i < end; i++ {
			line := fmt.Sprintf("%6d  %s", i, m.summary(i))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateJump {
			b.WriteString(m.jump.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter jump • esc cancel"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • pgup/pgdown page • g go to row • enter details • q quit"))
		}

	case stateDetail:
		fmt.Fprintf(&b, "Row %d\n\n", m.selected)
		rec, err := m.record(m.selected)
		if err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		} else {
			for i, f := range rec.Fields {
				lf := m.layout.Fields()[i]
				var val strings.Builder
				if err := transcoder.Format(&val, f.Value); err != nil {
					val.WriteString(err.Error())
				}
				fmt.Fprintf(&b, "%s %s  %s",
					fieldStyle.Render(f.Name), typeStyle.Render(lf.Schema), val.String())
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ previous/next row • esc back • q quit"))
	}

	return b.String()
}

// summary renders row i on one line.
func (m *interactiveModel) summary(i int) string {
	rec, err := m.record(i)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	parts := make([]string, len(rec.Fields))
	for j, f := range rec.Fields {
		parts[j] = f.Name + "=" + shortValue(f.Value)
	}
	return strings.Join(parts, " ")
}

func shortValue(v transcoder.Value) string {
	switch vv := v.(type) {
	case *transcoder.Scalar:
		return fmt.Sprint(vv.Raw)
	case *transcoder.Str:
		return strconv.Quote(vv.Text)
	case *transcoder.Ptr:
		return shortValue(vv.Ref)
	case *transcoder.List:
		return "[" + strconv.Itoa(vv.Count) + "]"
	default:
		return "?"
	}
}

func runInteractive(filename, table string, tbl *dat.Table, s *transcoder.Session, l *transcoder.RecordLayout) error {
	p := tea.NewProgram(newInteractiveModel(filename, table, tbl, s, l), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
